package constraint

import "github.com/samber/lo"

// Set is a named group of constraints owned by one component and always
// replaced as a unit.
type Set struct {
	name        string
	engine      *Engine
	constraints []*Constraint
}

// NewSet returns an empty set bound to engine.
func NewSet(engine *Engine, name string) *Set {
	return &Set{name: name, engine: engine}
}

// Name returns the set's name.
func (s *Set) Name() string {
	return s.name
}

// Replace deactivates the current members and then activates cs as the new
// members. The old members are fully released before any new one is
// activated.
func (s *Set) Replace(cs ...*Constraint) {
	s.Release()
	s.constraints = lo.Filter(cs, func(c *Constraint, _ int) bool { return c != nil })
	s.engine.Activate(s.constraints...)
}

// Release deactivates and forgets every member.
func (s *Set) Release() {
	s.engine.Deactivate(s.constraints...)
	s.constraints = nil
}

// Constraints returns a copy of the current members.
func (s *Set) Constraints() []*Constraint {
	return append([]*Constraint(nil), s.constraints...)
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.constraints)
}

// ActiveCount returns the number of members that are active.
func (s *Set) ActiveCount() int {
	return lo.CountBy(s.constraints, func(c *Constraint) bool { return c.IsActive() })
}
