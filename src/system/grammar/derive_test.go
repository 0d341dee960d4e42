package grammar

import (
	"errors"
	"io"
	"log"
	"reflect"
	"testing"

	"github.com/voodooEntity/minigram/src/system/archivist"
)

func testDriver() *Driver {
	logger := archivist.New(&archivist.Config{Logger: log.New(io.Discard, "", 0)})
	return NewDriver(logger)
}

func testLexicon() []LexItem {
	return []LexItem{
		NewLexItem("the", Cat(CAT_D), Sel(CAT_N)),
		NewLexItem("a", Cat(CAT_D), Sel(CAT_N)),
		NewLexItem("student", Cat(CAT_N)),
		NewLexItem("tutor", Cat(CAT_N)),
		NewLexItem("left", Cat(CAT_V)),
	}
}

func Test_Step_EmptyWorkspace(t *testing.T) {
	driver := testDriver()
	workspace := NewWorkspace(DEFAULT_MEMORY_LIMIT)

	if err := driver.Step(workspace); !errors.Is(err, ErrEmptyWorkspace) {
		t.Fatalf("expected empty workspace error, got %v", err)
	}
}

func Test_Step_MemoryGuardTripsBeforeOperations(t *testing.T) {
	driver := testDriver()
	workspace := NewWorkspace(1)
	workspace.AddLex(NewLexItem("the", Cat(CAT_D), Sel(CAT_N)))
	workspace.AddLex(NewLexItem("student", Cat(CAT_N)))

	err := driver.Step(workspace)
	if !errors.Is(err, ErrMemoryLimitExceeded) {
		t.Fatalf("expected memory limit error, got %v", err)
	}
	if workspace.Status != STATUS_RESOURCE_EXCEEDED {
		t.Fatalf("expected resource exceeded status, got %s", workspace.Status)
	}
	// nothing was merged, both leaves are still there
	if len(workspace.Items) != 2 {
		t.Fatalf("expected untouched items, got %d", len(workspace.Items))
	}
	if workspace.StepCount != 1 {
		t.Fatalf("expected step counter incremented, got %d", workspace.StepCount)
	}
}

func Test_Step_FormsDeterminerPhrase(t *testing.T) {
	driver := testDriver()
	workspace := NewWorkspace(DEFAULT_MEMORY_LIMIT)
	workspace.AddLex(NewLexItem("the", Cat(CAT_D), Sel(CAT_N)))
	workspace.AddLex(NewLexItem("student", Cat(CAT_N)))

	if err := driver.Step(workspace); err != nil {
		t.Fatalf("expected DP forming step to succeed, got %v", err)
	}
	if len(workspace.Items) != 1 {
		t.Fatalf("expected workspace size 2 -> 1, got %d items", len(workspace.Items))
	}
	dp := workspace.Items[0]
	if dp.Label != CAT_D {
		t.Fatalf("expected DP labeled by the selector side, got %s", dp.Label)
	}
	if got := dp.Linearize(); got != "the student" {
		t.Fatalf("expected linearization 'the student', got %q", got)
	}
	if len(dp.Features) != 1 || dp.Features[0] != Cat(CAT_D) {
		t.Fatalf("expected only Cat(D) to survive, got %+v", dp.Features)
	}
}

func Test_Step_StuckWorkspace(t *testing.T) {
	driver := testDriver()
	workspace := NewWorkspace(DEFAULT_MEMORY_LIMIT)
	workspace.AddLex(NewLexItem("student", Cat(CAT_N)))
	workspace.AddLex(NewLexItem("left", Cat(CAT_V)))

	if err := driver.Step(workspace); !errors.Is(err, ErrNoValidOperations) {
		t.Fatalf("expected no valid operations, got %v", err)
	}
}

func Test_Step_AppliesMoveWhenNoMergeExists(t *testing.T) {
	driver := testDriver()
	workspace := NewWorkspace(DEFAULT_MEMORY_LIMIT)
	leaf := FromLex(NewLexItem("student", Cat(CAT_N), Neg(1)))
	workspace.Items = append(workspace.Items, Internal(CAT_V, []Feature{Pos(1), Cat(CAT_V)}, []*SyntacticObject{leaf}))

	if err := driver.Step(workspace); err != nil {
		t.Fatalf("expected move step to succeed, got %v", err)
	}
	if len(workspace.Items) != 1 {
		t.Fatalf("expected in-place replacement, got %d items", len(workspace.Items))
	}
	if len(workspace.Items[0].Children) != 2 {
		t.Fatalf("expected moved structure with two children")
	}
}

func Test_Derive_ClosesSentence(t *testing.T) {
	// lexicon designed to fully check off every feature: the determiner
	// only selects, so the final merge leaves an empty bundle
	lexicon := []LexItem{
		NewLexItem("the", Sel(CAT_N), Sel(CAT_V)),
		NewLexItem("student", Cat(CAT_N)),
		NewLexItem("left", Cat(CAT_V)),
	}

	driver := testDriver()
	workspace, err := driver.Seed("the student left", lexicon)
	if err != nil {
		t.Fatalf("expected seeding to succeed, got %v", err)
	}

	obj, err := driver.Derive(workspace, DEFAULT_MAX_STEPS)
	if err != nil {
		t.Fatalf("expected derivation to succeed, got %v", err)
	}
	if len(workspace.Items) != 1 {
		t.Fatalf("expected exactly one object left, got %d", len(workspace.Items))
	}
	if !obj.IsComplete() {
		t.Fatalf("expected complete object, remaining features %+v", obj.Features)
	}
	if got := obj.Linearize(); got != "the student left" {
		t.Fatalf("expected linearization 'the student left', got %q", got)
	}
	if workspace.Status != STATUS_SUCCEEDED {
		t.Fatalf("expected succeeded status, got %s", workspace.Status)
	}
}

func Test_Derive_StuckIsNotAnInternalError(t *testing.T) {
	driver := testDriver()
	workspace, err := driver.Seed("the student left", testLexicon())
	if err != nil {
		t.Fatalf("expected seeding to succeed, got %v", err)
	}

	// the DP forms but 'left' carries no selector, the derivation sticks
	// at two incomplete objects
	_, err = driver.Derive(workspace, DEFAULT_MAX_STEPS)
	if !errors.Is(err, ErrNoValidOperations) {
		t.Fatalf("expected no valid operations, got %v", err)
	}
	if workspace.Status != STATUS_STUCK {
		t.Fatalf("expected stuck status, got %s", workspace.Status)
	}
	if len(workspace.Items) != 2 {
		t.Fatalf("expected DP + verb left over, got %d items", len(workspace.Items))
	}
}

func Test_Derive_StepBudget(t *testing.T) {
	// displacement keeps applying because the copied target leaves its
	// negative twin behind, so the stacked positives never run out in
	// the granted budget
	driver := testDriver()
	workspace := NewWorkspace(DEFAULT_MEMORY_LIMIT)
	leaf := FromLex(NewLexItem("student", Cat(CAT_N), Neg(1)))
	workspace.Items = append(workspace.Items, Internal(CAT_V, []Feature{Pos(1), Pos(1), Pos(1), Pos(1)}, []*SyntacticObject{leaf}))

	_, err := driver.Derive(workspace, 3)
	if !errors.Is(err, ErrNoValidOperations) {
		t.Fatalf("expected failed derivation, got %v", err)
	}
	if workspace.Status != STATUS_RESOURCE_EXCEEDED {
		t.Fatalf("expected resource exceeded after budget exhaustion, got %s", workspace.Status)
	}
}

func Test_Seed_UnknownToken(t *testing.T) {
	driver := testDriver()
	_, err := driver.Seed("the gorp left", testLexicon())
	if !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("expected unknown token error, got %v", err)
	}
	var unknownErr *UnknownTokenError
	if !errors.As(err, &unknownErr) || unknownErr.Token != "gorp" {
		t.Fatalf("expected offending token 'gorp', got %v", err)
	}
}

func Test_ParseSentence_Deterministic(t *testing.T) {
	driver := testDriver()
	lexicon := []LexItem{
		NewLexItem("the", Sel(CAT_N), Sel(CAT_V)),
		NewLexItem("student", Cat(CAT_N)),
		NewLexItem("left", Cat(CAT_V)),
	}

	first, err := driver.ParseSentence("the student left", lexicon)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	second, err := driver.ParseSentence("the student left", lexicon)
	if err != nil {
		t.Fatalf("expected second parse to succeed, got %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected structurally identical results across runs")
	}
	if first.Linearize() != second.Linearize() {
		t.Fatalf("expected identical linearizations")
	}
}
