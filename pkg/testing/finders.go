package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/rowkit/pkg/view"
)

// Finder locates nodes in a view tree.
type Finder interface {
	// Evaluate returns all matching nodes under root, depth-first pre-order.
	Evaluate(root view.Node) []view.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []view.Node
	finder Finder
}

// Find evaluates f against root.
func Find(root view.Node, f Finder) FinderResult {
	return FinderResult{nodes: f.Evaluate(root), finder: f}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() view.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.describe()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() view.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) view.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.describe()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []view.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists reports whether at least one node matched.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

type predicateFinder struct {
	fn   func(view.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root view.Node) []view.Node {
	var out []view.Node
	view.Walk(root, func(n view.Node, _ int) bool {
		if f.fn(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByName matches nodes with the given debug name.
func ByName(name string) Finder {
	return &predicateFinder{
		fn:   func(n view.Node) bool { return n.DebugName() == name },
		desc: fmt.Sprintf("ByName(%q)", name),
	}
}

// ByType matches nodes of concrete type T.
func ByType[T view.Node]() Finder {
	t := reflect.TypeFor[T]()
	return &predicateFinder{
		fn:   func(n view.Node) bool { return reflect.TypeOf(n) == t },
		desc: fmt.Sprintf("ByType(%s)", t),
	}
}

// ByText matches labels whose text equals text exactly.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(n view.Node) bool {
			l, ok := n.(*view.Label)
			return ok && l.Text() == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByPredicate matches nodes satisfying fn.
func ByPredicate(fn func(view.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root view.Node) []view.Node {
	var out []view.Node
	seen := make(map[view.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range ancestor.Base().Subviews() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					out = append(out, match)
				}
			}
		}
	}
	return out
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant matches nodes satisfying matching that sit strictly below a
// node matching of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}
