// Package minigram implements a minimalist-grammar derivation engine:
// lexical items enter a workspace as leaf objects, the driver repeatedly
// merges and moves them until a single complete structure remains or the
// derivation fails. The facade in this file wires the engine components
// together, everything below lives in src/system/.
package minigram

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/voodooEntity/minigram/src/system/api"
	"github.com/voodooEntity/minigram/src/system/archivist"
	"github.com/voodooEntity/minigram/src/system/bridge"
	"github.com/voodooEntity/minigram/src/system/grammar"
	"github.com/voodooEntity/minigram/src/system/interfaces"
	"github.com/voodooEntity/minigram/src/system/lexicon"
	"github.com/voodooEntity/minigram/src/system/memory"
	"github.com/voodooEntity/minigram/src/system/pattern"
)

// Settings configures a new engine instance. Only Ident has a hard
// default, everything else falls back to sane zero-value behaviour.
type Settings struct {
	Ident      string
	LogLevel   int
	DebugLevel int
	Logger     interfaces.LoggerInterface
	History    bool
}

// Minigram is the engine facade. It owns the memory store holding the
// lexicons and, when history is enabled, the outcome of every derivation.
type Minigram struct {
	log            *archivist.Archivist
	memory         *memory.Store
	driver         *grammar.Driver
	validator      *bridge.LogValidator
	history        bool
	defaultLexicon string
}

func New(settings Settings) *Minigram {
	if settings.Ident == "" {
		settings.Ident = "minigram"
	}
	logger := archivist.New(&archivist.Config{
		Logger:     settings.Logger,
		LogLevel:   settings.LogLevel,
		DebugLevel: settings.DebugLevel,
	})

	m := &Minigram{
		log:            logger,
		memory:         memory.NewStore(settings.Ident, logger),
		driver:         grammar.NewDriver(logger),
		validator:      bridge.NewLogValidator(logger),
		history:        settings.History,
		defaultLexicon: lexicon.LEXICON_LINGUISTIC,
	}

	// the built-in lexicons are always available, the store is fresh at
	// this point so registration cannot collide
	_ = m.RegisterLexicon(lexicon.Linguistic())
	_ = m.RegisterLexicon(lexicon.MissionOps())

	logger.Info("minigram instance created ident=", settings.Ident)
	return m
}

// RegisterLexicon memorizes a lexicon under its own name. Names are
// unique per instance, registering an already known name fails.
func (m *Minigram) RegisterLexicon(lex lexicon.Lexicon) error {
	return m.memory.MemorizeLexicon(lex)
}

// LoadLexiconFile reads a yaml lexicon file and memorizes it, returning
// the lexicon name declared in the file. A file declaring an already
// registered name is refused.
func (m *Minigram) LoadLexiconFile(path string) (string, error) {
	lex, err := lexicon.LoadFile(path)
	if err != nil {
		return "", err
	}
	if err := m.RegisterLexicon(lex); err != nil {
		return "", err
	}
	return lex.Name, nil
}

// SetDefaultLexicon switches the lexicon ParseSentence resolves against
func (m *Minigram) SetDefaultLexicon(name string) error {
	if _, ok := m.memory.RetrieveLexicon(name); !ok {
		return fmt.Errorf("unknown lexicon %s: %w", name, grammar.ErrInvalidOperation)
	}
	m.defaultLexicon = name
	return nil
}

// Lexicons lists all memorized lexicon names
func (m *Minigram) Lexicons() []string {
	return m.memory.ListLexicons()
}

// ParseSentence derives the sentence against the default lexicon
func (m *Minigram) ParseSentence(sentence string) (*grammar.SyntacticObject, error) {
	return m.ParseSentenceWith(sentence, m.defaultLexicon)
}

// ParseSentenceWith derives the sentence against a named lexicon. When
// history is enabled the outcome is recorded in the memory store either
// way, success or failure.
func (m *Minigram) ParseSentenceWith(sentence string, lexiconName string) (*grammar.SyntacticObject, error) {
	lex, ok := m.memory.RetrieveLexicon(lexiconName)
	if !ok {
		return nil, fmt.Errorf("unknown lexicon %s: %w", lexiconName, grammar.ErrInvalidOperation)
	}

	workspace, err := m.driver.Seed(sentence, lex.Items)
	if err != nil {
		return nil, err
	}

	obj, err := m.driver.Derive(workspace, grammar.DEFAULT_MAX_STEPS)

	if m.history {
		record := memory.DerivationRecord{
			RunID:    uuid.NewString(),
			Sentence: sentence,
			Lexicon:  lexiconName,
			Status:   string(workspace.Status),
			Steps:    workspace.StepCount,
		}
		if err != nil {
			record.Result = err.Error()
		} else {
			record.Result = obj.Linearize()
		}
		m.memory.RecordDerivation(record)
	}

	return obj, err
}

// GeneratePattern renders the named test pattern at size n
func (m *Minigram) GeneratePattern(name string, n int) (string, error) {
	return pattern.Generate(name, n)
}

// CanGenerate tells if the named pattern is producible at size n
func (m *Minigram) CanGenerate(name string, n int) bool {
	return pattern.CanGenerate(name, n)
}

// ValidateMissionLog runs the windowed grammaticality check over a
// sequence of event names, returning one explanation per anomaly
func (m *Minigram) ValidateMissionLog(events []string) []string {
	return m.validator.Validate(events)
}

// ValidateTelemetrySequence is the legacy numeric anomaly check
func (m *Minigram) ValidateTelemetrySequence(sequence []float64) bool {
	return bridge.ValidateTelemetrySequence(sequence)
}

// Derivations returns the recorded derivation history
func (m *Minigram) Derivations() []memory.DerivationRecord {
	return m.memory.Derivations()
}

// ServeAPI blocks serving the engine over HTTP on the given address
func (m *Minigram) ServeAPI(addr string) error {
	return api.New(addr, m.memory, m.log).ListenAndServe()
}
