// node_test.go

package scene

import (
	"math"
	"testing"
)

func TestNodeAttributesKeepOrder(t *testing.T) {
	n := NewNode("rect")
	n.SetAttr("x", 1.5).SetAttr("y", 0).SetAttr("width", 10).SetAttr("x", 2.25)

	got := n.Attrs()
	want := []string{"x", "y", "width"}
	if len(got) != len(want) {
		t.Fatalf("Attrs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Attrs() = %v, want %v", got, want)
		}
	}
	if v, _ := n.Attr("x"); v != "2.25" {
		t.Errorf("x = %q, want 2.25", v)
	}
	if n.AttrFloat("width") != 10 {
		t.Errorf("AttrFloat(width) = %v", n.AttrFloat("width"))
	}
	if n.AttrFloat("missing") != 0 {
		t.Error("missing attribute should read as 0")
	}

	n.RemoveAttr("y")
	if _, ok := n.Attr("y"); ok {
		t.Error("y still set after RemoveAttr")
	}
}

func TestNodeStyle(t *testing.T) {
	n := NewNode("text")
	n.SetStyle("fill", "red").SetStyle("opacity", 0).SetStyle("stroke-width", 1.5)
	if got := n.StyleString(); got != "fill: red; opacity: 0; stroke-width: 1.5" {
		t.Errorf("StyleString() = %q", got)
	}
	n.SetStyle("fill", "")
	if n.Style("fill") != "" {
		t.Error("empty value should remove the property")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{460, "460"},
		{0.3, "0.3"},
		{1.0 / 3, "0.3333333333333333"},
		{-2.5, "-2.5"},
		{1e21, "1000000000000000000000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := Translate(3, -0.5); got != "translate(3,-0.5)" {
		t.Errorf("Translate = %q", got)
	}
}

func TestFindAndWalk(t *testing.T) {
	root := NewNode("svg")
	g := root.Append("g").SetAttr("id", "a")
	g.Append("circle").SetAttr("class", "dot")
	g.Append("circle").SetAttr("class", "dot")
	root.Append("g").SetAttr("id", "b").Append("circle")

	if root.Find("b") == nil || root.Find("nope") != nil {
		t.Error("Find by id")
	}
	if n := len(root.FindAll("circle")); n != 3 {
		t.Errorf("FindAll(circle) = %d, want 3", n)
	}
	if n := len(root.FindClass("dot")); n != 2 {
		t.Errorf("FindClass(dot) = %d, want 2", n)
	}
	if g.Children[0].Parent() != g {
		t.Error("parent link")
	}

	visited := 0
	root.Walk(func(n *Node) bool {
		visited++
		return n.ID() != "a"
	})
	if visited != 2 {
		t.Errorf("walk visited %d nodes before stopping, want 2", visited)
	}

	g.Clear()
	if len(g.Children) != 0 || len(root.FindAll("circle")) != 1 {
		t.Error("Clear left children behind")
	}
}

func TestSceneIDsAreScoped(t *testing.T) {
	a, b := New(), New()
	if a.Scope() == "" || a.Scope() == b.Scope() {
		t.Errorf("scopes %q and %q should be distinct and non-empty", a.Scope(), b.Scope())
	}
	fixed := New(WithScope("x"))
	if got := fixed.ID("dataArea"); got != "tracker-x-dataArea" {
		t.Errorf("ID = %q", got)
	}
	if fixed.Canvas.Tag != "div" {
		t.Errorf("canvas tag = %q", fixed.Canvas.Tag)
	}
}

func TestTooltipOffset(t *testing.T) {
	tip := Size{Width: 90, Height: 45}
	if x, y := TooltipOffset(100, 200, 460, tip); math.Abs(x-217) > 1e-9 || y != 155 {
		t.Errorf("left half: (%v, %v)", x, y)
	}
	if x, y := TooltipOffset(300, 200, 460, tip); x != 300 || y != 155 {
		t.Errorf("right half: (%v, %v)", x, y)
	}
}
