package rowview

import (
	"fmt"

	"github.com/go-drift/rowkit/pkg/graphics"
)

type cornerKind int

const (
	cornerCircle cornerKind = iota
	cornerRounded
)

// CornerStyle is the corner treatment of the left accessory slot. The zero
// value is Circle.
type CornerStyle struct {
	kind   cornerKind
	radius float64
}

// Circle rounds the slot into a circle: the radius is half the slot's
// resolved width.
func Circle() CornerStyle {
	return CornerStyle{kind: cornerCircle}
}

// RoundedRect rounds the slot's corners with a fixed radius.
func RoundedRect(radius float64) CornerStyle {
	return CornerStyle{kind: cornerRounded, radius: radius}
}

// IsCircle reports whether s is Circle.
func (s CornerStyle) IsCircle() bool {
	return s.kind == cornerCircle
}

// FixedRadius returns the radius of a RoundedRect style.
func (s CornerStyle) FixedRadius() (float64, bool) {
	return s.radius, s.kind == cornerRounded
}

// Resolve returns the corner radius for a slot with the given bounds.
func (s CornerStyle) Resolve(bounds graphics.Rect) float64 {
	switch s.kind {
	case cornerCircle:
		return bounds.Width() / 2
	case cornerRounded:
		return s.radius
	default:
		panic(fmt.Sprintf("rowview: unknown corner style %d", s.kind))
	}
}

// String returns "circle" or "rounded(r)".
func (s CornerStyle) String() string {
	if s.kind == cornerRounded {
		return fmt.Sprintf("rounded(%g)", s.radius)
	}
	return "circle"
}

// TextOrder is the vertical order of the title and subtitle labels.
type TextOrder int

const (
	TitleFirst TextOrder = iota
	SubtitleFirst
)

// String returns a human-readable representation of the order.
func (o TextOrder) String() string {
	switch o {
	case TitleFirst:
		return "title_first"
	case SubtitleFirst:
		return "subtitle_first"
	default:
		return fmt.Sprintf("TextOrder(%d)", int(o))
	}
}

// Layout constants.
const (
	DefaultSpacing       = 12.0
	TextualSpacing       = 4.0
	LabelSpacing         = 4.0
	DividerThickness     = 0.5
	TitleFontSize        = graphics.DefaultFontSize
	SubtitleFontSize     = 13.0
	RightIconFloor       = 12.0
	DefaultLeftIconSide  = 40.0
	DefaultRightIconSide = 24.0
)

// DefaultContentInsets are the insets between the row and its content
// stack.
var DefaultContentInsets = graphics.EdgeInsets{Top: 8, Left: 16, Bottom: 8, Right: 16}
