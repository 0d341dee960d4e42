package grammar

import "strings"

// SyntacticObject is a labeled tree node under construction. Features holds
// the unchecked remainder, an empty bundle means the object is complete.
// Every node exclusively owns its children, there is no sharing between
// trees and no back references.
type SyntacticObject struct {
	Label    Category
	Features []Feature
	Children []*SyntacticObject
	Phon     string
}

// FromLex builds a leaf object from a lexical item. The label is taken from
// the first Cat feature in the bundle, items without any category default
// to CAT_N. That fallback is intentionally permissive, not an error path.
func FromLex(item LexItem) *SyntacticObject {
	label := CAT_N
	for _, feat := range item.Feats {
		if feat.Kind == FEATURE_CAT {
			label = feat.Cat
			break
		}
	}
	features := make([]Feature, len(item.Feats))
	copy(features, item.Feats)
	return &SyntacticObject{
		Label:    label,
		Features: features,
		Phon:     item.Phon,
	}
}

// Internal builds a non-leaf node, ownership of the children transfers
// to the new node.
func Internal(label Category, features []Feature, children []*SyntacticObject) *SyntacticObject {
	return &SyntacticObject{
		Label:    label,
		Features: features,
		Children: children,
	}
}

// IsComplete tells if no unchecked features remain
func (o *SyntacticObject) IsComplete() bool {
	return len(o.Features) == 0
}

// Linearize yields the terminal tokens left to right, space joined.
// Pure, only used for output rendering.
func (o *SyntacticObject) Linearize() string {
	if len(o.Children) == 0 {
		return o.Phon
	}
	parts := make([]string, 0, len(o.Children))
	for _, child := range o.Children {
		parts = append(parts, child.Linearize())
	}
	return strings.Join(parts, " ")
}

// Size counts the nodes of the subtree including the node itself,
// used by the workspace memory estimate.
func (o *SyntacticObject) Size() int {
	size := 1
	for _, child := range o.Children {
		size += child.Size()
	}
	return size
}

// Clone creates a fully independent deep copy of the subtree so that
// caller-side mutations never leak across structures.
func (o *SyntacticObject) Clone() *SyntacticObject {
	features := make([]Feature, len(o.Features))
	copy(features, o.Features)
	dst := &SyntacticObject{
		Label:    o.Label,
		Features: features,
		Phon:     o.Phon,
	}
	if len(o.Children) > 0 {
		dst.Children = make([]*SyntacticObject, 0, len(o.Children))
		for _, child := range o.Children {
			dst.Children = append(dst.Children, child.Clone())
		}
	}
	return dst
}
