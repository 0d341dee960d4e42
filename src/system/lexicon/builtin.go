package lexicon

import "github.com/voodooEntity/minigram/src/system/grammar"

// Built-in lexicon names as registered by the facade
const (
	LEXICON_LINGUISTIC  = "linguistic"
	LEXICON_MISSION_OPS = "mission-ops"
)

// Linguistic is the standard test lexicon for recursive sentence patterns
func Linguistic() Lexicon {
	return NewBuilder(LEXICON_LINGUISTIC).
		Add("the", grammar.Cat(grammar.CAT_D), grammar.Sel(grammar.CAT_N)).
		Add("a", grammar.Cat(grammar.CAT_D), grammar.Sel(grammar.CAT_N)).
		Add("student", grammar.Cat(grammar.CAT_N)).
		Add("tutor", grammar.Cat(grammar.CAT_N)).
		Add("teacher", grammar.Cat(grammar.CAT_N)).
		Add("who", grammar.Cat(grammar.CAT_C), grammar.Sel(grammar.CAT_S)).
		Add("that", grammar.Cat(grammar.CAT_C), grammar.Sel(grammar.CAT_S)).
		Add("said", grammar.Cat(grammar.CAT_V), grammar.Sel(grammar.CAT_DP), grammar.Pos(1)).
		Add("thinks", grammar.Cat(grammar.CAT_V), grammar.Sel(grammar.CAT_DP)).
		Add("left", grammar.Cat(grammar.CAT_V)).
		Add("smiled", grammar.Cat(grammar.CAT_V)).
		Add("arrived", grammar.Cat(grammar.CAT_V)).
		Build()
}

// MissionOps is the grammar of space operations used by the mission log
// validator. Commands select a state, states may chain further states.
// VOLTAGE_SPIKE is a terminal state on purpose, it cannot select another.
func MissionOps() Lexicon {
	return NewBuilder(LEXICON_MISSION_OPS).
		Add("MOTOR_CMD_START", grammar.Cat(grammar.CAT_COMMAND), grammar.Sel(grammar.CAT_STATE)).
		Add("MOTOR_CMD_STOP", grammar.Cat(grammar.CAT_COMMAND), grammar.Sel(grammar.CAT_STATE)).
		Add("INSTRUMENT_PWR_ON", grammar.Cat(grammar.CAT_COMMAND), grammar.Sel(grammar.CAT_STATE)).
		Add("INSTRUMENT_PWR_OFF", grammar.Cat(grammar.CAT_COMMAND), grammar.Sel(grammar.CAT_STATE)).
		Add("VOLTAGE_SPIKE", grammar.Cat(grammar.CAT_STATE)).
		Add("CURRENT_DRAW", grammar.Cat(grammar.CAT_STATE), grammar.Sel(grammar.CAT_STATE)).
		Add("WHEEL_RPM", grammar.Cat(grammar.CAT_STATE), grammar.Sel(grammar.CAT_STATE)).
		Add("TEMP_MOTOR", grammar.Cat(grammar.CAT_STATE), grammar.Sel(grammar.CAT_STATE)).
		Add("TEMP_INSTRUMENT", grammar.Cat(grammar.CAT_STATE), grammar.Sel(grammar.CAT_STATE)).
		Add("SPECTROMETER_READ", grammar.Cat(grammar.CAT_STATE), grammar.Sel(grammar.CAT_STATE)).
		Build()
}
