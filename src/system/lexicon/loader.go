package lexicon

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/voodooEntity/minigram/src/system/grammar"
	"gopkg.in/yaml.v3"
)

// File layout for lexicon yaml files:
//
//	name: english-basic
//	items:
//	  - phon: the
//	    features: ["cat:D", "sel:N"]
//	  - phon: student
//	    features: ["cat:N"]
type lexiconFile struct {
	Name  string     `yaml:"name"`
	Items []itemFile `yaml:"items"`
}

type itemFile struct {
	Phon     string   `yaml:"phon"`
	Features []string `yaml:"features"`
}

var categoryByLabel = map[string]grammar.Category{
	"N":       grammar.CAT_N,
	"V":       grammar.CAT_V,
	"D":       grammar.CAT_D,
	"C":       grammar.CAT_C,
	"S":       grammar.CAT_S,
	"NP":      grammar.CAT_NP,
	"VP":      grammar.CAT_VP,
	"DP":      grammar.CAT_DP,
	"CP":      grammar.CAT_CP,
	"Event":   grammar.CAT_EVENT,
	"Command": grammar.CAT_COMMAND,
	"State":   grammar.CAT_STATE,
	"Context": grammar.CAT_CONTEXT,
}

// LoadFile reads a lexicon from a yaml file, preserving item order
func LoadFile(path string) (Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("reading lexicon file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes yaml lexicon data
func Parse(raw []byte) (Lexicon, error) {
	var file lexiconFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Lexicon{}, fmt.Errorf("decoding lexicon yaml: %w", err)
	}
	if file.Name == "" {
		return Lexicon{}, fmt.Errorf("lexicon file is missing a name")
	}

	builder := NewBuilder(file.Name)
	for _, item := range file.Items {
		if item.Phon == "" {
			return Lexicon{}, fmt.Errorf("lexicon %s contains an item without phon", file.Name)
		}
		feats := make([]grammar.Feature, 0, len(item.Features))
		for _, notation := range item.Features {
			feat, err := ParseFeature(notation)
			if err != nil {
				return Lexicon{}, fmt.Errorf("item %s: %w", item.Phon, err)
			}
			feats = append(feats, feat)
		}
		builder.Add(item.Phon, feats...)
	}
	return builder.Build(), nil
}

// ParseFeature decodes the compact "kind:value" notation emitted by
// grammar.Feature.String
func ParseFeature(notation string) (grammar.Feature, error) {
	kind, value, found := strings.Cut(notation, ":")
	if !found {
		return grammar.Feature{}, fmt.Errorf("invalid feature notation %q", notation)
	}
	switch kind {
	case "cat", "sel":
		category, ok := categoryByLabel[value]
		if !ok {
			return grammar.Feature{}, fmt.Errorf("unknown category %q in feature %q", value, notation)
		}
		if kind == "cat" {
			return grammar.Cat(category), nil
		}
		return grammar.Sel(category), nil
	case "pos", "neg":
		index, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return grammar.Feature{}, fmt.Errorf("invalid movement index in feature %q", notation)
		}
		if kind == "pos" {
			return grammar.Pos(uint8(index)), nil
		}
		return grammar.Neg(uint8(index)), nil
	case "ctx":
		return grammar.Ctx(value), nil
	}
	return grammar.Feature{}, fmt.Errorf("unknown feature kind %q in %q", kind, notation)
}
