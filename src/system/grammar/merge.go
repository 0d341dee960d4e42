package grammar

// Merge joins two objects when a's selector is satisfied by b's category.
// Only the FIRST selector feature of a is inspected, so an object carrying
// its selectors in the "wrong" order will not merge even if a later
// selector would match. CanMerge deliberately checks wider than this, see
// the note there.
//
// On success the result is labeled like a, carries a's features minus that
// one selector concatenated with b's features minus the one checked
// category, and owns [a, b] as children in that order.
func Merge(a *SyntacticObject, b *SyntacticObject) (*SyntacticObject, error) {
	selIdx := -1
	for idx, feat := range a.Features {
		if feat.Kind == FEATURE_SEL {
			selIdx = idx
			break
		}
	}
	if selIdx == -1 {
		return nil, ErrFeatureMismatch
	}

	catIdx := -1
	for idx, feat := range b.Features {
		if feat.Kind == FEATURE_CAT {
			catIdx = idx
			break
		}
	}
	if catIdx == -1 || b.Features[catIdx].Cat != a.Features[selIdx].Cat {
		return nil, ErrFeatureMismatch
	}

	// exactly one selector and one category get checked off,
	// every other feature survives into the new object
	features := make([]Feature, 0, len(a.Features)+len(b.Features)-2)
	for idx, feat := range a.Features {
		if idx != selIdx {
			features = append(features, feat)
		}
	}
	for idx, feat := range b.Features {
		if idx != catIdx {
			features = append(features, feat)
		}
	}

	return Internal(a.Label, features, []*SyntacticObject{a, b}), nil
}

// CanMerge tells if ANY selector of a is matched by ANY category of b.
// This is wider than what Merge executes (first selector only). The
// asymmetry is kept on purpose for compatibility with the established
// derivation behaviour, do not unify the two without revisiting every
// call site of FindMergeablePairs.
func CanMerge(a *SyntacticObject, b *SyntacticObject) bool {
	for _, feat := range a.Features {
		if feat.Kind != FEATURE_SEL {
			continue
		}
		for _, bFeat := range b.Features {
			if bFeat.Kind == FEATURE_CAT && bFeat.Cat == feat.Cat {
				return true
			}
		}
	}
	return false
}

// FindMergeablePairs enumerates all ordered index pairs i != j over the
// workspace items where CanMerge holds, ascending by i then j.
func FindMergeablePairs(workspace *Workspace) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(workspace.Items); i++ {
		for j := 0; j < len(workspace.Items); j++ {
			if i != j && CanMerge(workspace.Items[i], workspace.Items[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}
