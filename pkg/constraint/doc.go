// Package constraint provides anchor-based layout constraints, an engine that
// tracks which constraints are active, and named constraint sets.
//
// A constraint relates an [Anchor] (an item plus an [Attribute]) either to a
// constant or to another anchor plus a constant offset:
//
//	icon.width == 40
//	content.left == row.left + 16
//	icon.width >= 12
//
// The [Engine] holds the active constraints of one view hierarchy and answers
// the questions the layout pass asks: what size an item is pinned to and
// which edges are attached to which anchors. It detects required constraints
// that cannot hold together and reports them through the errors package.
//
// # Constraint Sets
//
// Components own their constraints in named [Set] values. Rebuilding a set
// with [Set.Replace] always deactivates the previous members before the new
// ones are activated, so repeated reconfiguration never accumulates
// duplicate or conflicting constraints:
//
//	s.contentPins = constraint.NewSet(engine, "content-pins")
//	s.contentPins.Replace(
//	    constraint.Equal(content.Anchor(constraint.AttrTop), row.Anchor(constraint.AttrTop), insets.Top),
//	    ...
//	)
package constraint
