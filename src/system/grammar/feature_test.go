package grammar

import "testing"

func Test_Feature_MovementPredicates(t *testing.T) {
	posFeat := Pos(1)
	negFeat := Neg(1)

	if !posFeat.IsPositive() {
		t.Fatalf("expected Pos(1) to be positive")
	}
	if posFeat.IsNegative() {
		t.Fatalf("expected Pos(1) not to be negative")
	}
	if negFeat.IsPositive() {
		t.Fatalf("expected Neg(1) not to be positive")
	}
	if !negFeat.IsNegative() {
		t.Fatalf("expected Neg(1) to be negative")
	}

	if idx, ok := posFeat.MovementIndex(); !ok || idx != 1 {
		t.Fatalf("expected movement index 1 for Pos(1), got %d ok=%v", idx, ok)
	}
	if idx, ok := negFeat.MovementIndex(); !ok || idx != 1 {
		t.Fatalf("expected movement index 1 for Neg(1), got %d ok=%v", idx, ok)
	}
	if _, ok := Cat(CAT_N).MovementIndex(); ok {
		t.Fatalf("expected no movement index for category feature")
	}
	if _, ok := Ctx("DRIVE").MovementIndex(); ok {
		t.Fatalf("expected no movement index for context feature")
	}
}

func Test_Feature_Notation(t *testing.T) {
	cases := []struct {
		feat Feature
		want string
	}{
		{Cat(CAT_D), "cat:D"},
		{Sel(CAT_N), "sel:N"},
		{Pos(1), "pos:1"},
		{Neg(7), "neg:7"},
		{Ctx("DRIVE"), "ctx:DRIVE"},
	}
	for _, c := range cases {
		if got := c.feat.String(); got != c.want {
			t.Fatalf("expected notation %q, got %q", c.want, got)
		}
	}
}

func Test_FromLex_DefaultsToNoun(t *testing.T) {
	// no category feature at all, the documented fallback applies
	obj := FromLex(NewLexItem("gizmo", Sel(CAT_N)))
	if obj.Label != CAT_N {
		t.Fatalf("expected default label N, got %s", obj.Label)
	}

	obj = FromLex(NewLexItem("the", Cat(CAT_D), Sel(CAT_N)))
	if obj.Label != CAT_D {
		t.Fatalf("expected label D, got %s", obj.Label)
	}
	if len(obj.Features) != 2 {
		t.Fatalf("expected full feature bundle on leaf, got %d features", len(obj.Features))
	}
	if obj.Phon != "the" {
		t.Fatalf("expected phon to carry over, got %q", obj.Phon)
	}
}

func Test_Linearize(t *testing.T) {
	left := FromLex(NewLexItem("the", Cat(CAT_D)))
	right := FromLex(NewLexItem("student", Cat(CAT_N)))
	parent := Internal(CAT_D, nil, []*SyntacticObject{left, right})

	if got := parent.Linearize(); got != "the student" {
		t.Fatalf("expected linearization 'the student', got %q", got)
	}
	if got := left.Linearize(); got != "the" {
		t.Fatalf("expected leaf linearization 'the', got %q", got)
	}
}

func Test_Clone_IsIndependent(t *testing.T) {
	leaf := FromLex(NewLexItem("student", Cat(CAT_N), Neg(1)))
	parent := Internal(CAT_D, []Feature{Cat(CAT_D)}, []*SyntacticObject{leaf})

	clone := parent.Clone()
	clone.Children[0].Features = clone.Children[0].Features[:1]
	clone.Features[0] = Cat(CAT_V)

	if len(parent.Children[0].Features) != 2 {
		t.Fatalf("clone mutation leaked into original child features")
	}
	if parent.Features[0].Cat != CAT_D {
		t.Fatalf("clone mutation leaked into original features")
	}
}
