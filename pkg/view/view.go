package view

import (
	"github.com/samber/lo"

	"github.com/go-drift/rowkit/pkg/constraint"
	"github.com/go-drift/rowkit/pkg/graphics"
)

// Node is implemented by every element of a view hierarchy.
type Node interface {
	constraint.Item
	// Base returns the embedded base view.
	Base() *View
	// IntrinsicContentSize returns the size the node's content needs,
	// before constant size constraints are applied.
	IntrinsicContentSize() graphics.Size
	// LayoutSubviews positions the node's subviews within its bounds.
	LayoutSubviews()
}

// subviewRemover is implemented by containers that track subviews beyond
// the plain child list.
type subviewRemover interface {
	subviewRemoved(child Node)
}

// Axis is a layout direction.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Placeholder is the animated loading state drawn over a view's content.
type Placeholder struct {
	Base      graphics.Color
	Highlight graphics.Color
	// Phase is the shimmer position in [0, 1].
	Phase float64
}

// View is the base node of a hierarchy. It can be used directly as a plain
// container or embedded by other node types.
type View struct {
	name        string
	engine      *constraint.Engine
	self        Node
	parent      *View
	subviews    []Node
	frame       graphics.Rect
	hidden      bool
	needsLayout bool

	cornerRadius    float64
	backgroundColor graphics.Color
	borderColor     graphics.Color
	borderWidth     float64
	clipsToBounds   bool

	hugging     [2]constraint.Priority
	compression [2]constraint.Priority

	skeletonable bool
	placeholder  *Placeholder
}

// New returns a plain container view. A nil engine gives the view an engine
// of its own.
func New(name string, engine *constraint.Engine) *View {
	v := &View{}
	v.Init(name, engine)
	v.SetSelf(v)
	return v
}

// Init prepares an embedded View. Node types call it from their
// constructors before SetSelf.
func (v *View) Init(name string, engine *constraint.Engine) {
	if engine == nil {
		engine = constraint.NewEngine()
	}
	v.name = name
	v.engine = engine
	v.needsLayout = true
	v.hugging = [2]constraint.Priority{constraint.PriorityDefaultLow, constraint.PriorityDefaultLow}
	v.compression = [2]constraint.Priority{constraint.PriorityDefaultHigh, constraint.PriorityDefaultHigh}
}

// SetSelf registers the concrete node for method dispatch and constraint
// identity.
func (v *View) SetSelf(self Node) {
	v.self = self
}

// Self returns the concrete node registered via SetSelf.
func (v *View) Self() Node {
	if v.self == nil {
		return v
	}
	return v.self
}

// Base returns v.
func (v *View) Base() *View {
	return v
}

// DebugName returns the view's name.
func (v *View) DebugName() string {
	return v.name
}

// Engine returns the constraint engine the view's hierarchy uses.
func (v *View) Engine() *constraint.Engine {
	return v.engine
}

// Anchor returns the anchor for attr on this view.
func (v *View) Anchor(attr constraint.Attribute) constraint.Anchor {
	return constraint.Anchor{Item: v.Self(), Attribute: attr}
}

// Superview returns the parent node, or nil.
func (v *View) Superview() Node {
	if v.parent == nil {
		return nil
	}
	return v.parent.Self()
}

// Subviews returns a copy of the child list, back to front.
func (v *View) Subviews() []Node {
	return append([]Node(nil), v.subviews...)
}

// SubviewCount returns the number of children.
func (v *View) SubviewCount() int {
	return len(v.subviews)
}

// Contains reports whether child is a direct subview of v.
func (v *View) Contains(child Node) bool {
	return lo.Contains(v.subviews, child)
}

// IsAncestorOf reports whether n is v or sits anywhere below it.
func (v *View) IsAncestorOf(n Node) bool {
	for b := n.Base(); b != nil; b = b.parent {
		if b == v {
			return true
		}
	}
	return false
}

// AddSubview adds child as the frontmost subview, detaching it from any
// previous parent first.
func (v *View) AddSubview(child Node) {
	if child == nil {
		return
	}
	cv := child.Base()
	if cv.parent != nil {
		cv.RemoveFromSuperview()
	}
	cv.parent = v
	v.subviews = append(v.subviews, child)
	cv.SetNeedsLayout()
}

// RemoveFromSuperview detaches v from its parent. It is a no-op for a
// detached view.
func (v *View) RemoveFromSuperview() {
	parent := v.parent
	if parent == nil {
		return
	}
	self := v.Self()
	if remover, ok := parent.Self().(subviewRemover); ok {
		remover.subviewRemoved(self)
	}
	parent.subviews = lo.Without(parent.subviews, self)
	v.parent = nil
	parent.SetNeedsLayout()
}

// Frame returns the view's rectangle in its parent's coordinates.
func (v *View) Frame() graphics.Rect {
	return v.frame
}

// SetFrame sets the frame. A size change marks the view for layout.
func (v *View) SetFrame(frame graphics.Rect) {
	if v.frame.Size() != frame.Size() {
		v.SetNeedsLayout()
	}
	v.frame = frame
}

// Bounds returns the view's rectangle in its own coordinates.
func (v *View) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, v.frame.Width(), v.frame.Height())
}

// IsHidden reports whether the view is hidden.
func (v *View) IsHidden() bool {
	return v.hidden
}

// SetHidden shows or hides the view. Hidden arranged subviews take no
// space in their stack.
func (v *View) SetHidden(hidden bool) {
	if v.hidden == hidden {
		return
	}
	v.hidden = hidden
	if v.parent != nil {
		v.parent.SetNeedsLayout()
	}
}

// CornerRadius returns the corner radius.
func (v *View) CornerRadius() float64 {
	return v.cornerRadius
}

// SetCornerRadius sets the corner radius used when drawing the view.
func (v *View) SetCornerRadius(r float64) {
	v.cornerRadius = r
}

// BackgroundColor returns the fill color.
func (v *View) BackgroundColor() graphics.Color {
	return v.backgroundColor
}

// SetBackgroundColor sets the fill color.
func (v *View) SetBackgroundColor(c graphics.Color) {
	v.backgroundColor = c
}

// Border returns the border color and width.
func (v *View) Border() (graphics.Color, float64) {
	return v.borderColor, v.borderWidth
}

// SetBorder sets the border color and width.
func (v *View) SetBorder(c graphics.Color, width float64) {
	v.borderColor = c
	v.borderWidth = width
}

// ClipsToBounds reports whether content is clipped to the bounds.
func (v *View) ClipsToBounds() bool {
	return v.clipsToBounds
}

// SetClipsToBounds sets whether content is clipped to the bounds.
func (v *View) SetClipsToBounds(clips bool) {
	v.clipsToBounds = clips
}

// ContentHuggingPriority returns how strongly the view resists growing
// past its fitting size along axis.
func (v *View) ContentHuggingPriority(axis Axis) constraint.Priority {
	return v.hugging[axis]
}

// SetContentHuggingPriority sets the hugging priority for axis.
func (v *View) SetContentHuggingPriority(p constraint.Priority, axis Axis) {
	v.hugging[axis] = p
}

// CompressionResistancePriority returns how strongly the view resists
// shrinking below its fitting size along axis.
func (v *View) CompressionResistancePriority(axis Axis) constraint.Priority {
	return v.compression[axis]
}

// SetCompressionResistancePriority sets the compression resistance for axis.
func (v *View) SetCompressionResistancePriority(p constraint.Priority, axis Axis) {
	v.compression[axis] = p
}

// IsSkeletonable reports whether the view takes part in loading
// placeholders.
func (v *View) IsSkeletonable() bool {
	return v.skeletonable
}

// SetSkeletonable marks the view as able to show a loading placeholder.
func (v *View) SetSkeletonable(s bool) {
	v.skeletonable = s
}

// Placeholder returns the active loading placeholder, or nil.
func (v *View) Placeholder() *Placeholder {
	return v.placeholder
}

// SetPlaceholder installs or (with nil) removes the loading placeholder.
func (v *View) SetPlaceholder(p *Placeholder) {
	v.placeholder = p
}

// IntrinsicContentSize returns the size needed by subviews attached to both
// opposite edges of v. A container with no such subviews needs no space.
func (v *View) IntrinsicContentSize() graphics.Size {
	var size graphics.Size
	for _, child := range v.subviews {
		fit := FittingSize(child)
		if l, r, ok := v.edgePins(child, constraint.AttrLeft, constraint.AttrRight); ok {
			size.Width = max(size.Width, fit.Width+l-r)
		}
		if t, b, ok := v.edgePins(child, constraint.AttrTop, constraint.AttrBottom); ok {
			size.Height = max(size.Height, fit.Height+t-b)
		}
	}
	return size
}

// FittingSize returns the size n takes when nothing stretches it: its
// intrinsic content size with active constant size constraints applied.
func FittingSize(n Node) graphics.Size {
	natural := n.IntrinsicContentSize()
	engine := n.Base().engine
	return graphics.Size{
		Width:  engine.ResolveDimension(n, constraint.AttrWidth, natural.Width),
		Height: engine.ResolveDimension(n, constraint.AttrHeight, natural.Height),
	}
}

// FillConstraints returns the four edge equalities that make child fill
// parent.
func FillConstraints(child, parent Node) []*constraint.Constraint {
	c, p := child.Base(), parent.Base()
	return []*constraint.Constraint{
		constraint.Equal(c.Anchor(constraint.AttrTop), p.Anchor(constraint.AttrTop), 0),
		constraint.Equal(c.Anchor(constraint.AttrLeft), p.Anchor(constraint.AttrLeft), 0),
		constraint.Equal(c.Anchor(constraint.AttrBottom), p.Anchor(constraint.AttrBottom), 0),
		constraint.Equal(c.Anchor(constraint.AttrRight), p.Anchor(constraint.AttrRight), 0),
	}
}
