package view

import (
	"github.com/go-drift/rowkit/pkg/constraint"
	"github.com/go-drift/rowkit/pkg/errors"
	"github.com/go-drift/rowkit/pkg/graphics"
)

// SetNeedsLayout marks v and every ancestor as needing layout.
func (v *View) SetNeedsLayout() {
	for n := v; n != nil; n = n.parent {
		n.needsLayout = true
	}
}

// NeedsLayout reports whether v is waiting for a layout pass.
func (v *View) NeedsLayout() bool {
	return v.needsLayout
}

// LayoutIfNeeded synchronously lays out v's subtree if v is marked.
// Panics raised by LayoutSubviews overrides are recovered and reported.
func (v *View) LayoutIfNeeded() {
	defer errors.Recover("view.LayoutIfNeeded")
	if !v.needsLayout {
		return
	}
	v.layout()
}

// SizeToFit gives v the requested width and its fitting height, keeping
// its origin, then lays it out.
func (v *View) SizeToFit(width float64) {
	height := FittingSize(v.Self()).Height
	v.SetFrame(graphics.RectFromLTWH(v.frame.Left, v.frame.Top, width, height))
	v.LayoutIfNeeded()
}

// LayoutObserver is implemented by nodes that need their subtree's
// resolved frames. DidLayoutSubviews runs after every descendant has been
// laid out in the same pass.
type LayoutObserver interface {
	DidLayoutSubviews()
}

// layout runs LayoutSubviews on v and then on every descendant. Marks made
// while the pass runs are absorbed by it.
func (v *View) layout() {
	self := v.Self()
	self.LayoutSubviews()
	for _, child := range v.subviews {
		child.Base().layout()
	}
	if o, ok := self.(LayoutObserver); ok {
		o.DidLayoutSubviews()
	}
	v.needsLayout = false
}

// LayoutSubviews positions each subview from the constraints that attach it
// to v. An axis pinned at both ends stretches between the pins unless the
// child's size on that axis is fixed; otherwise the child keeps its fitting
// size at whichever edge or center it is pinned to, or at the origin.
func (v *View) LayoutSubviews() {
	for _, child := range v.subviews {
		child.Base().SetFrame(v.childFrame(child))
	}
}

func (v *View) childFrame(child Node) graphics.Rect {
	fit := FittingSize(child)
	b := v.Bounds()
	x, w := v.resolveAxis(child, fit.Width, b.Width(), constraint.AttrLeft, constraint.AttrRight, constraint.AttrCenterX, constraint.AttrWidth)
	y, h := v.resolveAxis(child, fit.Height, b.Height(), constraint.AttrTop, constraint.AttrBottom, constraint.AttrCenterY, constraint.AttrHeight)
	return graphics.RectFromLTWH(x, y, w, h)
}

func (v *View) resolveAxis(child Node, fit, extent float64, lead, trail, center, dim constraint.Attribute) (origin, length float64) {
	l, hasLead := v.pin(child, lead)
	t, hasTrail := v.pin(child, trail)
	switch {
	case hasLead && hasTrail && !v.engine.HasDimension(child, dim):
		return l, extent - l + t
	case hasLead:
		return l, fit
	case hasTrail:
		return extent + t - fit, fit
	}
	if c, ok := v.pin(child, center); ok {
		return (extent-fit)/2 + c, fit
	}
	return 0, fit
}

// pin returns the offset of child.attr from v.attr when the two are bound
// by an equality.
func (v *View) pin(child Node, attr constraint.Attribute) (float64, bool) {
	c, ok := v.engine.Pin(child, attr, v.Anchor(attr))
	if !ok {
		return 0, false
	}
	return c.Constant, true
}

func (v *View) edgePins(child Node, lead, trail constraint.Attribute) (l, t float64, ok bool) {
	l, okLead := v.pin(child, lead)
	t, okTrail := v.pin(child, trail)
	return l, t, okLead && okTrail
}
