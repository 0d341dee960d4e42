package grammar

// Move relocates an embedded constituent carrying a matching negative
// movement feature to the edge of obj. The first positive feature on obj
// picks the index, the target is the first node found in a pre-order walk
// of obj's own tree.
//
// Note this is copy-and-adjoin, not excise-and-reattach: the target is
// cloned to the edge with its negative feature checked off while the
// original stays embedded untouched inside obj, which becomes the second
// child of the new root.
func Move(obj *SyntacticObject) (*SyntacticObject, error) {
	posIdx := -1
	for idx, feat := range obj.Features {
		if feat.IsPositive() {
			posIdx = idx
			break
		}
	}
	if posIdx == -1 {
		return nil, ErrNoValidOperations
	}
	movementIdx, _ := obj.Features[posIdx].MovementIndex()

	target := rFindMovementTarget(obj, movementIdx)
	if target == nil {
		return nil, ErrNoValidOperations
	}

	moved := target.Clone()
	moved.Features = removeFirstNegative(moved.Features, movementIdx)

	// check off exactly the one triggering positive feature
	features := make([]Feature, 0, len(obj.Features)-1)
	for idx, feat := range obj.Features {
		if idx != posIdx {
			features = append(features, feat)
		}
	}

	return Internal(obj.Label, features, []*SyntacticObject{moved, obj}), nil
}

// rFindMovementTarget walks the tree pre-order (self before children) and
// returns the first node carrying a negative feature with the given index
func rFindMovementTarget(obj *SyntacticObject, movementIdx uint8) *SyntacticObject {
	for _, feat := range obj.Features {
		if feat.IsNegative() && feat.Index == movementIdx {
			return obj
		}
	}
	for _, child := range obj.Children {
		if hit := rFindMovementTarget(child, movementIdx); hit != nil {
			return hit
		}
	}
	return nil
}

func removeFirstNegative(features []Feature, movementIdx uint8) []Feature {
	for idx, feat := range features {
		if feat.IsNegative() && feat.Index == movementIdx {
			return append(features[:idx], features[idx+1:]...)
		}
	}
	return features
}
