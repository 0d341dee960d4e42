package grammar

import "strconv"

// Category is the closed set of labels a syntactic object can carry.
type Category string

const (
	// --- Standard Linguistic Categories ---
	CAT_N  Category = "N"
	CAT_V  Category = "V"
	CAT_D  Category = "D"
	CAT_C  Category = "C"
	CAT_S  Category = "S"
	CAT_NP Category = "NP"
	CAT_VP Category = "VP"
	CAT_DP Category = "DP"
	CAT_CP Category = "CP"

	// --- Operational Telemetry Categories ---
	CAT_EVENT   Category = "Event"
	CAT_COMMAND Category = "Command"
	CAT_STATE   Category = "State"
	CAT_CONTEXT Category = "Context"
)

type FeatureKind int

const (
	FEATURE_CAT FeatureKind = iota + 1 // basic category feature
	FEATURE_SEL                        // selector, requires merge with category
	FEATURE_POS                        // positive, triggers movement
	FEATURE_NEG                        // negative, target for movement
	FEATURE_CTX                        // free-form context tag
)

// Feature is a sealed tagged value. Only the field matching the Kind is
// meaningful, the constructors below are the only intended way to build one.
type Feature struct {
	Kind  FeatureKind
	Cat   Category
	Index uint8
	Label string
}

func Cat(category Category) Feature {
	return Feature{Kind: FEATURE_CAT, Cat: category}
}

func Sel(category Category) Feature {
	return Feature{Kind: FEATURE_SEL, Cat: category}
}

func Pos(index uint8) Feature {
	return Feature{Kind: FEATURE_POS, Index: index}
}

func Neg(index uint8) Feature {
	return Feature{Kind: FEATURE_NEG, Index: index}
}

func Ctx(label string) Feature {
	return Feature{Kind: FEATURE_CTX, Label: label}
}

// IsPositive tells if the feature triggers movement
func (f Feature) IsPositive() bool {
	return f.Kind == FEATURE_POS
}

// IsNegative tells if the feature marks a movement target
func (f Feature) IsNegative() bool {
	return f.Kind == FEATURE_NEG
}

// MovementIndex returns the movement index for both movement kinds,
// second return is false for any non movement feature
func (f Feature) MovementIndex() (uint8, bool) {
	if f.Kind == FEATURE_POS || f.Kind == FEATURE_NEG {
		return f.Index, true
	}
	return 0, false
}

// String renders the compact notation also used in lexicon files,
// e.g. "cat:D" "sel:N" "pos:1" "neg:1" "ctx:DRIVE"
func (f Feature) String() string {
	switch f.Kind {
	case FEATURE_CAT:
		return "cat:" + string(f.Cat)
	case FEATURE_SEL:
		return "sel:" + string(f.Cat)
	case FEATURE_POS:
		return "pos:" + strconv.Itoa(int(f.Index))
	case FEATURE_NEG:
		return "neg:" + strconv.Itoa(int(f.Index))
	case FEATURE_CTX:
		return "ctx:" + f.Label
	}
	return ""
}
