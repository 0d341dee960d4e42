package grammar

// Status describes where a derivation currently stands. All states besides
// STATUS_RUNNING are terminal, the driver never leaves them again.
type Status string

const (
	STATUS_RUNNING           Status = "Running"
	STATUS_SUCCEEDED         Status = "Succeeded"
	STATUS_STUCK             Status = "StuckFailed"
	STATUS_RESOURCE_EXCEEDED Status = "ResourceExceeded"
)

// Workspace is the mutable pool of in-progress objects for one derivation
// attempt. It is exclusively owned by the caller driving the derivation,
// concurrent access to a single workspace is not supported.
type Workspace struct {
	Items       []*SyntacticObject
	MemoryLimit int
	StepCount   int
	Status      Status
}

func NewWorkspace(memoryLimit int) *Workspace {
	return &Workspace{
		MemoryLimit: memoryLimit,
		Status:      STATUS_RUNNING,
	}
}

// AddLex inserts a fresh leaf object built from the given lexical item
func (w *Workspace) AddLex(item LexItem) {
	w.Items = append(w.Items, FromLex(item))
}

// IsSuccessful tells if exactly one object remains and it is complete
func (w *Workspace) IsSuccessful() bool {
	return len(w.Items) == 1 && w.Items[0].IsComplete()
}

// MemoryUsage is an approximate node count over all items, not exact
// byte accounting. It only exists to bound pathological derivations.
func (w *Workspace) MemoryUsage() int {
	usage := 0
	for _, obj := range w.Items {
		usage += obj.Size()
	}
	return usage
}
