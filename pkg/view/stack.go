package view

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/go-drift/rowkit/pkg/constraint"
	"github.com/go-drift/rowkit/pkg/graphics"
)

// Alignment controls how arranged subviews are placed across the stack axis.
type Alignment int

const (
	// AlignmentFill stretches arranged subviews across the stack.
	AlignmentFill Alignment = iota
	// AlignmentLeading places arranged subviews at the left (vertical stacks)
	// or top (horizontal stacks).
	AlignmentLeading
	// AlignmentCenter centers arranged subviews across the stack.
	AlignmentCenter
	// AlignmentTrailing places arranged subviews at the right or bottom.
	AlignmentTrailing
)

// String returns a human-readable representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignmentFill:
		return "fill"
	case AlignmentLeading:
		return "leading"
	case AlignmentCenter:
		return "center"
	case AlignmentTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// StackView lays out its arranged subviews in a line.
//
// Arranged subviews are a subset of subviews. Along the axis each one gets
// its fitting size, separated by Spacing; leftover or missing space goes to
// the flexible subview with the lowest hugging (when growing) or compression
// resistance (when shrinking) priority. Hidden arranged subviews take no
// space. Across the axis, a subview pinned to both edges of the stack
// stretches between its pins; the rest follow Alignment.
type StackView struct {
	View
	axis      Axis
	alignment Alignment
	spacing   float64
	arranged  []Node
}

// NewStackView returns an empty stack laid out along axis.
func NewStackView(name string, engine *constraint.Engine, axis Axis) *StackView {
	s := &StackView{axis: axis}
	s.Init(name, engine)
	s.SetSelf(s)
	return s
}

// Axis returns the stack direction.
func (s *StackView) Axis() Axis {
	return s.axis
}

// SetAxis sets the stack direction.
func (s *StackView) SetAxis(axis Axis) {
	if s.axis == axis {
		return
	}
	s.axis = axis
	s.SetNeedsLayout()
}

// Alignment returns the cross-axis alignment.
func (s *StackView) Alignment() Alignment {
	return s.alignment
}

// SetAlignment sets the cross-axis alignment.
func (s *StackView) SetAlignment(a Alignment) {
	if s.alignment == a {
		return
	}
	s.alignment = a
	s.SetNeedsLayout()
}

// Spacing returns the gap between adjacent arranged subviews.
func (s *StackView) Spacing() float64 {
	return s.spacing
}

// SetSpacing sets the gap between adjacent arranged subviews.
func (s *StackView) SetSpacing(spacing float64) {
	if s.spacing == spacing {
		return
	}
	s.spacing = spacing
	s.SetNeedsLayout()
}

// ArrangedSubviews returns a copy of the arranged subviews in order.
func (s *StackView) ArrangedSubviews() []Node {
	return append([]Node(nil), s.arranged...)
}

// IsArranged reports whether child is an arranged subview.
func (s *StackView) IsArranged(child Node) bool {
	return lo.Contains(s.arranged, child)
}

// AddArrangedSubview appends child to the arranged subviews, adding it as a
// subview if needed. A child that is already arranged moves to the end.
func (s *StackView) AddArrangedSubview(child Node) {
	s.InsertArrangedSubview(child, len(s.arranged))
}

// InsertArrangedSubview inserts child at index (clamped to the valid range).
// A child that is already arranged is moved, never duplicated.
func (s *StackView) InsertArrangedSubview(child Node, index int) {
	if child == nil {
		return
	}
	s.arranged = lo.Without(s.arranged, child)
	if !s.Contains(child) {
		s.AddSubview(child)
	}
	index = max(0, min(index, len(s.arranged)))
	s.arranged = slices.Insert(s.arranged, index, child)
	s.SetNeedsLayout()
}

// RemoveArrangedSubview stops arranging child. The child stays a subview.
func (s *StackView) RemoveArrangedSubview(child Node) {
	if !s.IsArranged(child) {
		return
	}
	s.arranged = lo.Without(s.arranged, child)
	s.SetNeedsLayout()
}

func (s *StackView) subviewRemoved(child Node) {
	s.arranged = lo.Without(s.arranged, child)
}

func (s *StackView) visibleArranged() []Node {
	return lo.Filter(s.arranged, func(n Node, _ int) bool { return !n.Base().IsHidden() })
}

// IntrinsicContentSize returns the summed fitting sizes of the visible
// arranged subviews plus spacing along the axis, and the largest fitting
// size across it.
func (s *StackView) IntrinsicContentSize() graphics.Size {
	var main, cross float64
	for i, child := range s.visibleArranged() {
		m, c := s.split(FittingSize(child))
		main += m
		if i > 0 {
			main += s.spacing
		}
		cross = max(cross, c)
	}
	return s.join(main, cross)
}

// LayoutSubviews positions arranged subviews along the axis and any other
// subviews from their constraints.
func (s *StackView) LayoutSubviews() {
	for _, child := range s.subviews {
		if !s.IsArranged(child) {
			child.Base().SetFrame(s.childFrame(child))
		}
	}

	items := s.visibleArranged()
	if len(items) == 0 {
		return
	}
	mainExtent, crossExtent := s.split(s.Bounds().Size())
	lengths := make([]float64, len(items))
	crosses := make([]float64, len(items))
	total := s.spacing * float64(len(items)-1)
	for i, child := range items {
		lengths[i], crosses[i] = s.split(FittingSize(child))
		total += lengths[i]
	}
	if extra := mainExtent - total; !graphics.FloatEqual(extra, 0) {
		if i := s.flexibleIndex(items, extra > 0); i >= 0 {
			lengths[i] = max(0, lengths[i]+extra)
		}
	}

	pos := 0.0
	for i, child := range items {
		crossOrigin, crossLength := s.crossPlacement(child, crosses[i], crossExtent)
		if s.axis == AxisHorizontal {
			child.Base().SetFrame(graphics.RectFromLTWH(pos, crossOrigin, lengths[i], crossLength))
		} else {
			child.Base().SetFrame(graphics.RectFromLTWH(crossOrigin, pos, crossLength, lengths[i]))
		}
		pos += lengths[i] + s.spacing
	}
}

// flexibleIndex picks the arranged subview that absorbs extra (growing) or
// missing space. Subviews with a fixed size along the axis never flex.
func (s *StackView) flexibleIndex(items []Node, growing bool) int {
	dim := s.mainDimension()
	best := -1
	var bestPriority constraint.Priority
	for i, child := range items {
		if s.engine.HasDimension(child, dim) {
			continue
		}
		p := child.Base().CompressionResistancePriority(s.axis)
		if growing {
			p = child.Base().ContentHuggingPriority(s.axis)
		}
		if best < 0 || p < bestPriority {
			best, bestPriority = i, p
		}
	}
	return best
}

func (s *StackView) crossPlacement(child Node, fit, extent float64) (origin, length float64) {
	lead, trail, dim := constraint.AttrTop, constraint.AttrBottom, constraint.AttrHeight
	if s.axis == AxisVertical {
		lead, trail, dim = constraint.AttrLeft, constraint.AttrRight, constraint.AttrWidth
	}
	fixed := s.engine.HasDimension(child, dim)
	if l, t, ok := s.edgePins(child, lead, trail); ok && !fixed {
		return l, extent - l + t
	}
	switch s.alignment {
	case AlignmentLeading:
		return 0, fit
	case AlignmentCenter:
		return (extent - fit) / 2, fit
	case AlignmentTrailing:
		return extent - fit, fit
	default:
		if fixed {
			return 0, fit
		}
		return 0, extent
	}
}

func (s *StackView) mainDimension() constraint.Attribute {
	if s.axis == AxisVertical {
		return constraint.AttrHeight
	}
	return constraint.AttrWidth
}

// split returns a size as (along axis, across axis).
func (s *StackView) split(size graphics.Size) (main, cross float64) {
	if s.axis == AxisVertical {
		return size.Height, size.Width
	}
	return size.Width, size.Height
}

func (s *StackView) join(main, cross float64) graphics.Size {
	if s.axis == AxisVertical {
		return graphics.Size{Width: cross, Height: main}
	}
	return graphics.Size{Width: main, Height: cross}
}
