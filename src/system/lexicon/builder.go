package lexicon

import "github.com/voodooEntity/minigram/src/system/grammar"

// Lexicon is a named, ordered set of lexical items. Order matters: surface
// form resolution always returns the first match, duplicates are allowed.
type Lexicon struct {
	Name  string
	Items []grammar.LexItem
}

// Lookup resolves a surface form to its first matching item
func (l Lexicon) Lookup(phon string) (grammar.LexItem, bool) {
	for _, item := range l.Items {
		if item.Phon == phon {
			return item, true
		}
	}
	return grammar.LexItem{}, false
}

// Builder assembles a lexicon fluently:
//
//	lex := lexicon.NewBuilder("demo").
//		Add("the", grammar.Cat(grammar.CAT_D), grammar.Sel(grammar.CAT_N)).
//		Add("student", grammar.Cat(grammar.CAT_N)).
//		Build()
type Builder struct {
	name  string
	items []grammar.LexItem
}

func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
	}
}

func (b *Builder) Add(phon string, feats ...grammar.Feature) *Builder {
	b.items = append(b.items, grammar.NewLexItem(phon, feats...))
	return b
}

func (b *Builder) Build() Lexicon {
	items := make([]grammar.LexItem, len(b.items))
	copy(items, b.items)
	return Lexicon{
		Name:  b.name,
		Items: items,
	}
}
