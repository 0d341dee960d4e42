package grammar

// LexItem pairs a surface form with its feature bundle. Treated as
// immutable once constructed, the engine never writes back into it.
type LexItem struct {
	Phon  string
	Feats []Feature
}

func NewLexItem(phon string, feats ...Feature) LexItem {
	bundle := make([]Feature, len(feats))
	copy(bundle, feats)
	return LexItem{
		Phon:  phon,
		Feats: bundle,
	}
}
