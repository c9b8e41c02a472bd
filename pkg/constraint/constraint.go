package constraint

import (
	"fmt"
	"strconv"
)

// Attribute is a geometric property of an item that constraints can bind.
type Attribute int

const (
	AttrLeft Attribute = iota
	AttrRight
	AttrTop
	AttrBottom
	AttrWidth
	AttrHeight
	AttrCenterX
	AttrCenterY
)

// String returns a human-readable representation of the attribute.
func (a Attribute) String() string {
	switch a {
	case AttrLeft:
		return "left"
	case AttrRight:
		return "right"
	case AttrTop:
		return "top"
	case AttrBottom:
		return "bottom"
	case AttrWidth:
		return "width"
	case AttrHeight:
		return "height"
	case AttrCenterX:
		return "centerX"
	case AttrCenterY:
		return "centerY"
	default:
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
}

// IsDimension reports whether a is width or height.
func (a Attribute) IsDimension() bool {
	return a == AttrWidth || a == AttrHeight
}

// Relation is the comparison between the two sides of a constraint.
type Relation int

const (
	RelationEqual Relation = iota
	RelationGreaterOrEqual
	RelationLessOrEqual
)

// String returns the relation operator.
func (r Relation) String() string {
	switch r {
	case RelationEqual:
		return "=="
	case RelationGreaterOrEqual:
		return ">="
	case RelationLessOrEqual:
		return "<="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Priority orders constraints when they disagree. Only Required constraints
// take part in conflict detection.
type Priority float64

const (
	PriorityRequired    Priority = 1000
	PriorityDefaultHigh Priority = 750
	PriorityDefaultLow  Priority = 250
)

// Item is anything that exposes layout anchors. Views implement it.
type Item interface {
	DebugName() string
}

// Anchor names one attribute of one item.
type Anchor struct {
	Item      Item
	Attribute Attribute
}

// String returns "name.attribute".
func (a Anchor) String() string {
	name := "<nil>"
	if a.Item != nil {
		name = a.Item.DebugName()
	}
	return name + "." + a.Attribute.String()
}

// Constraint relates First to either a constant (Second == nil) or to
// Second plus Constant.
type Constraint struct {
	First    Anchor
	Relation Relation
	Second   *Anchor
	Constant float64
	Priority Priority

	active bool
	seq    uint64
}

// Equal returns first == second + constant.
func Equal(first, second Anchor, constant float64) *Constraint {
	return &Constraint{First: first, Relation: RelationEqual, Second: &second, Constant: constant, Priority: PriorityRequired}
}

// EqualConstant returns first == constant.
func EqualConstant(first Anchor, constant float64) *Constraint {
	return &Constraint{First: first, Relation: RelationEqual, Constant: constant, Priority: PriorityRequired}
}

// AtLeastConstant returns first >= constant.
func AtLeastConstant(first Anchor, constant float64) *Constraint {
	return &Constraint{First: first, Relation: RelationGreaterOrEqual, Constant: constant, Priority: PriorityRequired}
}

// AtMostConstant returns first <= constant.
func AtMostConstant(first Anchor, constant float64) *Constraint {
	return &Constraint{First: first, Relation: RelationLessOrEqual, Constant: constant, Priority: PriorityRequired}
}

// WithPriority sets the priority and returns c for chaining. It must be
// called before the constraint is activated.
func (c *Constraint) WithPriority(p Priority) *Constraint {
	c.Priority = p
	return c
}

// IsActive reports whether c is currently active in an engine.
func (c *Constraint) IsActive() bool {
	return c.active
}

// IsConstant reports whether c binds its first anchor to a constant.
func (c *Constraint) IsConstant() bool {
	return c.Second == nil
}

// String renders the constraint in equation form.
func (c *Constraint) String() string {
	if c.Second == nil {
		return fmt.Sprintf("%s %s %s", c.First, c.Relation, formatFloat(c.Constant))
	}
	switch {
	case c.Constant > 0:
		return fmt.Sprintf("%s %s %s + %s", c.First, c.Relation, *c.Second, formatFloat(c.Constant))
	case c.Constant < 0:
		return fmt.Sprintf("%s %s %s - %s", c.First, c.Relation, *c.Second, formatFloat(-c.Constant))
	default:
		return fmt.Sprintf("%s %s %s", c.First, c.Relation, *c.Second)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
