package view

import (
	"fmt"
	"strings"
)

// Walk visits n and its descendants depth-first, front to back. Returning
// false from fn skips the node's subtree.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Base().subviews {
		walk(child, depth+1, fn)
	}
}

// Find returns the first node named name in n's subtree.
func Find(n Node, name string) Node {
	var found Node
	Walk(n, func(node Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.DebugName() == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// Describe renders n's subtree, one node per line, with frames and the
// properties that matter for layout.
func Describe(n Node) string {
	var sb strings.Builder
	Walk(n, func(node Node, depth int) bool {
		v := node.Base()
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(node.DebugName())
		if d := details(node); d != "" {
			sb.WriteString(" [")
			sb.WriteString(d)
			sb.WriteString("]")
		}
		sb.WriteString(" ")
		sb.WriteString(v.frame.String())
		if v.cornerRadius != 0 {
			fmt.Fprintf(&sb, " radius=%g", v.cornerRadius)
		}
		if v.hidden {
			sb.WriteString(" hidden")
		}
		if v.placeholder != nil {
			sb.WriteString(" placeholder")
		}
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}

func details(n Node) string {
	switch v := n.(type) {
	case *StackView:
		names := make([]string, 0, len(v.arranged))
		for _, a := range v.arranged {
			names = append(names, a.DebugName())
		}
		return fmt.Sprintf("stack %s spacing=%g arranged=%s", v.axis, v.spacing, strings.Join(names, ","))
	case *Label:
		return fmt.Sprintf("label %q %s", v.text, v.font)
	case *ImageView:
		if v.image == nil {
			return "image <nil>"
		}
		return fmt.Sprintf("image %s %s", v.image.Name, v.image.Size)
	}
	return ""
}
