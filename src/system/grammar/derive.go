package grammar

import (
	"errors"
	"strings"

	"github.com/voodooEntity/minigram/src/system/archivist"
)

const (
	// DEFAULT_MEMORY_LIMIT bounds the approximate node count per workspace
	DEFAULT_MEMORY_LIMIT = 4096
	// DEFAULT_MAX_STEPS bounds the derivation loop
	DEFAULT_MAX_STEPS = 100
)

// Driver runs the derivation control loop over a workspace. It holds no
// state between derivations besides its logger, every workspace passed in
// is exclusively owned by the current call.
type Driver struct {
	log *archivist.Archivist
}

func NewDriver(logger *archivist.Archivist) *Driver {
	return &Driver{
		log: logger,
	}
}

// Step applies a single operation to the workspace. Merge is always tried
// before Move, the first mergeable pair respectively the first movable item
// wins. The memory guard trips before any operation is attempted.
func (d *Driver) Step(workspace *Workspace) error {
	if len(workspace.Items) == 0 {
		return ErrEmptyWorkspace
	}

	workspace.StepCount++

	if workspace.MemoryUsage() > workspace.MemoryLimit {
		workspace.Status = STATUS_RESOURCE_EXCEEDED
		d.log.Debug(archivist.DEBUG_LEVEL_TRACE, "derivation STEP memory guard tripped usage=", workspace.MemoryUsage(), " limit=", workspace.MemoryLimit)
		return ErrMemoryLimitExceeded
	}

	pairs := FindMergeablePairs(workspace)
	if len(pairs) > 0 {
		i, j := pairs[0][0], pairs[0][1]
		hi, lo := i, j
		if hi < lo {
			hi, lo = lo, hi
		}
		// remove the higher index first so the lower one stays valid.
		// The selector side of the pair (i) always becomes the LEFT merge
		// operand regardless of which index was removed first.
		first := workspace.Items[hi]
		workspace.Items = append(workspace.Items[:hi], workspace.Items[hi+1:]...)
		second := workspace.Items[lo]
		workspace.Items = append(workspace.Items[:lo], workspace.Items[lo+1:]...)

		a, b := first, second
		if i == lo {
			a, b = second, first
		}

		merged, err := Merge(a, b)
		if err != nil {
			return err
		}
		workspace.Items = append(workspace.Items, merged)
		d.log.Debug(archivist.DEBUG_LEVEL_TRACE, "derivation STEP merge i=", i, " j=", j, " label=", merged.Label, " items=", len(workspace.Items))
		return nil
	}

	for idx, obj := range workspace.Items {
		moved, err := Move(obj)
		if err == nil {
			workspace.Items[idx] = moved
			d.log.Debug(archivist.DEBUG_LEVEL_TRACE, "derivation STEP move idx=", idx, " label=", moved.Label)
			return nil
		}
	}

	return ErrNoValidOperations
}

// Derive loops Step up to maxSteps times until the workspace holds exactly
// one complete object. A stuck workspace (no operation applies) breaks the
// loop without erroring mid-flight, any other failure propagates.
func (d *Driver) Derive(workspace *Workspace, maxSteps int) (*SyntacticObject, error) {
	for i := 0; i < maxSteps; i++ {
		if workspace.IsSuccessful() {
			workspace.Status = STATUS_SUCCEEDED
			d.log.Debug(archivist.DEBUG_LEVEL_TRACE, "derivation DERIVE succeeded steps=", workspace.StepCount)
			return workspace.Items[0], nil
		}
		if err := d.Step(workspace); err != nil {
			if errors.Is(err, ErrNoValidOperations) {
				// derivation is stuck, not erroring
				workspace.Status = STATUS_STUCK
				break
			}
			return nil, err
		}
	}

	if workspace.IsSuccessful() {
		workspace.Status = STATUS_SUCCEEDED
		d.log.Debug(archivist.DEBUG_LEVEL_TRACE, "derivation DERIVE succeeded steps=", workspace.StepCount)
		return workspace.Items[0], nil
	}
	if workspace.Status == STATUS_RUNNING {
		// loop ran out of step budget without getting stuck
		workspace.Status = STATUS_RESOURCE_EXCEEDED
	}
	d.log.Debug(archivist.DEBUG_LEVEL_TRACE, "derivation DERIVE failed status=", workspace.Status, " items=", len(workspace.Items))
	return nil, ErrNoValidOperations
}

// Seed tokenizes the sentence on whitespace, resolves every token against
// the given ordered lexicon (first surface form match wins) and loads the
// resulting leaves into a fresh workspace with the default memory limit.
func (d *Driver) Seed(sentence string, lexicon []LexItem) (*Workspace, error) {
	workspace := NewWorkspace(DEFAULT_MEMORY_LIMIT)
	for _, token := range strings.Fields(sentence) {
		found := false
		for _, item := range lexicon {
			if item.Phon == token {
				workspace.AddLex(item)
				found = true
				break
			}
		}
		if !found {
			return nil, &UnknownTokenError{Token: token}
		}
	}
	return workspace, nil
}

// ParseSentence is the top level entry point: seed a workspace from the
// sentence and run a full bounded derivation on it.
func (d *Driver) ParseSentence(sentence string, lexicon []LexItem) (*SyntacticObject, error) {
	workspace, err := d.Seed(sentence, lexicon)
	if err != nil {
		return nil, err
	}
	return d.Derive(workspace, DEFAULT_MAX_STEPS)
}
