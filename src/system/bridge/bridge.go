// Package bridge exposes the two host-facing checks: a legacy numeric
// telemetry threshold check and a windowed grammaticality check over event
// sequences. The log validator only consumes leaf construction and
// CanMerge, it never runs the full derivation driver — its job is to
// enumerate anomalies, not to halt on the first one.
package bridge

import (
	"fmt"

	"github.com/voodooEntity/minigram/src/system/archivist"
	"github.com/voodooEntity/minigram/src/system/grammar"
	"github.com/voodooEntity/minigram/src/system/lexicon"
)

// ValidateTelemetrySequence is the legacy anomaly check kept for backward
// compatibility: a sequence is nominal as long as no value exceeds 10.0.
func ValidateTelemetrySequence(sequence []float64) bool {
	for _, value := range sequence {
		if value > 10.0 {
			return false
		}
	}
	return true
}

// LogValidator checks event sequences against a command/state lexicon
type LogValidator struct {
	lex Lexicon
	log *archivist.Archivist
}

// Lexicon is the narrow lookup surface the validator needs
type Lexicon interface {
	Lookup(phon string) (grammar.LexItem, bool)
}

// NewLogValidator builds a validator over the mission operations grammar
func NewLogValidator(logger *archivist.Archivist) *LogValidator {
	return &LogValidator{
		lex: lexicon.MissionOps(),
		log: logger,
	}
}

// NewLogValidatorWith builds a validator over a caller supplied lexicon
func NewLogValidatorWith(lex Lexicon, logger *archivist.Archivist) *LogValidator {
	return &LogValidator{
		lex: lex,
		log: logger,
	}
}

// Validate slides a 2-event window over the log and collects a readable
// explanation for every pair that is ungrammatical or contains unknown
// events. An empty result means the sequence is clean.
func (v *LogValidator) Validate(log []string) []string {
	var anomalies []string

	for i := 0; i+1 < len(log); i++ {
		prevEvent := log[i]
		currentEvent := log[i+1]

		prevItem, prevKnown := v.lex.Lookup(prevEvent)
		currentItem, currentKnown := v.lex.Lookup(currentEvent)

		if !prevKnown || !currentKnown {
			anomalies = append(anomalies, fmt.Sprintf(
				"Anomaly Detected: Unknown event(s) in sequence ['%s', '%s'].",
				prevEvent, currentEvent,
			))
			continue
		}

		prevObj := grammar.FromLex(prevItem)
		currentObj := grammar.FromLex(currentItem)

		// the core check: can the first event grammatically select the second
		if !grammar.CanMerge(prevObj, currentObj) {
			v.log.Debug(archivist.DEBUG_LEVEL_TRACE, "bridge VALIDATE mismatch prev=", prevEvent, " current=", currentEvent)
			anomalies = append(anomalies, fmt.Sprintf(
				"Anomaly Detected: Ungrammatical sequence '%s' followed by '%s'. This violates operational rules.",
				prevEvent, currentEvent,
			))
		}
	}

	return anomalies
}
