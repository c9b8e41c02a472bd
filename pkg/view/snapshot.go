package view

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
)

// Snapshot is a serializable capture of a laid out view tree.
type Snapshot struct {
	Root *SnapshotNode `json:"root"`
	// Constraints is the number of active constraints in the tree's engine.
	Constraints int `json:"constraints"`
}

// SnapshotNode is one view in a Snapshot. Frame is left, top, width,
// height rounded to two decimals.
type SnapshotNode struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Frame    [4]float64      `json:"frame"`
	Props    map[string]any  `json:"props,omitempty"`
	Children []*SnapshotNode `json:"children,omitempty"`
}

// Capture records n's subtree as it was last laid out.
func Capture(n Node) *Snapshot {
	return &Snapshot{
		Root:        captureNode(n),
		Constraints: n.Base().engine.ActiveCount(),
	}
}

// JSON returns the snapshot as indented JSON.
func (s *Snapshot) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func captureNode(n Node) *SnapshotNode {
	v := n.Base()
	f := v.frame
	node := &SnapshotNode{
		Name:  n.DebugName(),
		Type:  typeName(n),
		Frame: [4]float64{round2(f.Left), round2(f.Top), round2(f.Width()), round2(f.Height())},
	}
	if props := captureProps(n); len(props) > 0 {
		node.Props = props
	}
	for _, child := range v.subviews {
		node.Children = append(node.Children, captureNode(child))
	}
	return node
}

func typeName(n Node) string {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func captureProps(n Node) map[string]any {
	v := n.Base()
	props := make(map[string]any)
	if v.hidden {
		props["hidden"] = true
	}
	if v.cornerRadius != 0 {
		props["cornerRadius"] = round2(v.cornerRadius)
	}
	if v.placeholder != nil {
		props["placeholder"] = true
	}
	switch x := n.(type) {
	case *StackView:
		props["axis"] = x.axis.String()
		props["spacing"] = round2(x.spacing)
		names := make([]string, len(x.arranged))
		for i, a := range x.arranged {
			names[i] = a.DebugName()
		}
		props["arranged"] = names
	case *Label:
		props["text"] = x.text
		props["font"] = x.font.String()
		props["color"] = x.textColor.Hex()
	case *ImageView:
		if x.image != nil {
			props["image"] = x.image.Name
		}
		props["contentMode"] = x.contentMode.String()
	}
	return props
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
