package constraint

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/go-drift/rowkit/pkg/errors"
	"github.com/go-drift/rowkit/pkg/graphics"
)

type key struct {
	item Item
	attr Attribute
}

// Engine tracks the active constraints of one view hierarchy.
//
// The engine is not safe for concurrent use; like the views it serves, it is
// owned by the UI thread.
type Engine struct {
	byKey          map[key][]*Constraint
	seq            uint64
	count          int
	listeners      map[int]func(changed []*Constraint)
	nextListenerID int
}

// NewEngine returns an empty engine.
func NewEngine() *Engine {
	return &Engine{
		byKey:     make(map[key][]*Constraint),
		listeners: make(map[int]func(changed []*Constraint)),
	}
}

// Activate makes each constraint active. Constraints that are already
// active are ignored. Required constraints that cannot hold together with
// an active one are still activated and reported as a ConflictError; the
// layout pass then resolves them deterministically (see ResolveDimension).
func (e *Engine) Activate(cs ...*Constraint) {
	var changed []*Constraint
	for _, c := range cs {
		if c == nil || c.active || c.First.Item == nil {
			continue
		}
		k := key{c.First.Item, c.First.Attribute}
		if existing := e.conflicting(k, c); existing != nil {
			errors.Report(&errors.Error{
				Op:   "constraint.Engine.Activate",
				Kind: errors.KindLayout,
				Err: &errors.ConflictError{
					Item:      c.First.Item.DebugName(),
					Attribute: c.First.Attribute.String(),
					Existing:  existing.String(),
					Incoming:  c.String(),
				},
			})
		}
		e.seq++
		c.seq = e.seq
		c.active = true
		e.byKey[k] = append(e.byKey[k], c)
		e.count++
		changed = append(changed, c)
	}
	if len(changed) > 0 {
		e.notify(changed)
	}
}

// Deactivate removes each constraint from the engine. Inactive constraints
// are ignored.
func (e *Engine) Deactivate(cs ...*Constraint) {
	var changed []*Constraint
	for _, c := range cs {
		if c == nil || !c.active {
			continue
		}
		k := key{c.First.Item, c.First.Attribute}
		remaining := lo.Without(e.byKey[k], c)
		if len(remaining) == 0 {
			delete(e.byKey, k)
		} else {
			e.byKey[k] = remaining
		}
		c.active = false
		e.count--
		changed = append(changed, c)
	}
	if len(changed) > 0 {
		e.notify(changed)
	}
}

// ActiveCount returns the number of active constraints.
func (e *Engine) ActiveCount() int {
	return e.count
}

// Constraints returns the active constraints whose first anchor is
// item.attr, in activation order.
func (e *Engine) Constraints(item Item, attr Attribute) []*Constraint {
	return append([]*Constraint(nil), e.byKey[key{item, attr}]...)
}

// Involving returns every active constraint that references item on either
// side, in activation order.
func (e *Engine) Involving(item Item) []*Constraint {
	var out []*Constraint
	for _, cs := range e.byKey {
		out = append(out, lo.Filter(cs, func(c *Constraint, _ int) bool {
			return c.First.Item == item || (c.Second != nil && c.Second.Item == item)
		})...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Pin returns the most recently activated required equality that attaches
// item.attr to target.
func (e *Engine) Pin(item Item, attr Attribute, target Anchor) (*Constraint, bool) {
	cs := e.byKey[key{item, attr}]
	for i := len(cs) - 1; i >= 0; i-- {
		c := cs[i]
		if c.Relation == RelationEqual && c.Second != nil && *c.Second == target && c.Priority >= PriorityRequired {
			return c, true
		}
	}
	return nil, false
}

// ResolveDimension returns the width or height the active constant
// constraints give item, starting from natural when none applies.
//
// The highest-priority equality wins, latest activation breaking ties.
// Inequalities then clamp the value; when a ceiling and a floor disagree
// the floor wins.
func (e *Engine) ResolveDimension(item Item, attr Attribute, natural float64) float64 {
	cs := lo.Filter(e.byKey[key{item, attr}], func(c *Constraint, _ int) bool {
		return c.IsConstant()
	})
	v := natural
	var best *Constraint
	for _, c := range cs {
		if c.Relation != RelationEqual {
			continue
		}
		if best == nil || c.Priority >= best.Priority {
			best = c
		}
	}
	if best != nil {
		v = best.Constant
	}
	floor, ceiling := math.Inf(-1), math.Inf(1)
	for _, c := range cs {
		switch c.Relation {
		case RelationGreaterOrEqual:
			floor = math.Max(floor, c.Constant)
		case RelationLessOrEqual:
			ceiling = math.Min(ceiling, c.Constant)
		}
	}
	v = math.Min(v, ceiling)
	v = math.Max(v, floor)
	return v
}

// HasDimension reports whether item.attr is fixed by an active constant
// equality.
func (e *Engine) HasDimension(item Item, attr Attribute) bool {
	return lo.ContainsBy(e.byKey[key{item, attr}], func(c *Constraint) bool {
		return c.IsConstant() && c.Relation == RelationEqual
	})
}

// AddListener registers fn to run after every Activate or Deactivate call
// that changed the active set, with the constraints that call changed.
// Returns an unsubscribe function.
func (e *Engine) AddListener(fn func(changed []*Constraint)) func() {
	id := e.nextListenerID
	e.nextListenerID++
	e.listeners[id] = fn
	return func() {
		delete(e.listeners, id)
	}
}

func (e *Engine) notify(changed []*Constraint) {
	for _, fn := range e.listeners {
		fn(changed)
	}
}

// conflicting returns an active required constraint that cannot hold
// together with c, or nil.
func (e *Engine) conflicting(k key, c *Constraint) *Constraint {
	if c.Priority < PriorityRequired {
		return nil
	}
	for _, other := range e.byKey[k] {
		if other.Priority < PriorityRequired {
			continue
		}
		if c.IsConstant() != other.IsConstant() {
			continue
		}
		if !c.IsConstant() {
			if c.Relation == RelationEqual && other.Relation == RelationEqual &&
				*c.Second == *other.Second && !graphics.FloatEqual(c.Constant, other.Constant) {
				return other
			}
			continue
		}
		if !compatible(c, other) {
			return other
		}
	}
	return nil
}

// compatible reports whether two constant constraints on the same anchor
// admit a common value.
func compatible(a, b *Constraint) bool {
	floor, ceiling := math.Inf(-1), math.Inf(1)
	for _, c := range []*Constraint{a, b} {
		switch c.Relation {
		case RelationEqual:
			floor = math.Max(floor, c.Constant)
			ceiling = math.Min(ceiling, c.Constant)
		case RelationGreaterOrEqual:
			floor = math.Max(floor, c.Constant)
		case RelationLessOrEqual:
			ceiling = math.Min(ceiling, c.Constant)
		}
	}
	return floor <= ceiling || graphics.FloatEqual(floor, ceiling)
}
