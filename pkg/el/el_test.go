package el

import (
	"reflect"
	"testing"
)

func TestCreateElementArgs(t *testing.T) {
	got := Div(
		ID("root"),
		Class("one", "two"),
		nil,
		"hello",
		Span("child"),
		[]*VNode{B("bold"), nil},
		[]Attr{Data("x", "1"), {}},
	)

	if got.Kind != KindElement || got.Tag != "div" {
		t.Fatalf("unexpected node: %#v", got)
	}
	wantProps := Props{
		"id":     "root",
		"class":  "one two",
		"data-x": "1",
	}
	if !reflect.DeepEqual(got.Props, wantProps) {
		t.Errorf("props = %#v, want %#v", got.Props, wantProps)
	}
	if len(got.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(got.Children))
	}
	if got.Children[0].Kind != KindText || got.Children[0].Text != "hello" {
		t.Errorf("first child should be text %q, got %#v", "hello", got.Children[0])
	}
	if got.Children[1].Tag != "span" || got.Children[2].Tag != "b" {
		t.Errorf("unexpected child tags: %q, %q", got.Children[1].Tag, got.Children[2].Tag)
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") {
		t.Errorf("br should be void")
	}
	if !IsVoidElement("input") {
		t.Errorf("input should be void")
	}
	if IsVoidElement("div") {
		t.Errorf("div should not be void")
	}
}

func TestFragmentGroupsChildren(t *testing.T) {
	frag := Fragment(Div(), "text", nil, []*VNode{Span()})
	if frag.Kind != KindFragment {
		t.Fatalf("kind = %v, want Fragment", frag.Kind)
	}
	if len(frag.Children) != 3 {
		t.Errorf("children = %d, want 3", len(frag.Children))
	}
}

func TestConditionalHelpers(t *testing.T) {
	node := Div()
	if If(false, node) != nil {
		t.Errorf("If(false) should be nil")
	}
	if If(true, node) != node {
		t.Errorf("If(true) should return node")
	}
	if IfElse(false, nil, node) != node {
		t.Errorf("IfElse(false) should return second node")
	}

	called := false
	if When(false, func() *VNode { called = true; return node }) != nil || called {
		t.Errorf("When(false) must not call fn")
	}
}

func TestConditionalAttrs(t *testing.T) {
	if a := ClassIf(false, "hidden"); !a.IsEmpty() {
		t.Errorf("ClassIf(false) should be empty, got %#v", a)
	}
	if a := AttrIf(true, ID("x")); a.Key != "id" {
		t.Errorf("AttrIf(true) lost the attribute: %#v", a)
	}
}

func TestDatastarAttrs(t *testing.T) {
	cases := []struct {
		attr Attr
		key  string
		val  string
	}{
		{DataStore(`{"input":"datastar"}`), "data-store", `{"input":"datastar"}`},
		{DataModel("input"), "data-model", "input"},
		{DataText("$output"), "data-text", "$output"},
		{DataShow("$_show"), "data-show", "$_show"},
		{DataOnClick("$$get('/get')"), "data-on-click", "$$get('/get')"},
		{DataOnLoad("$$get('/feed')"), "data-on-load", "$$get('/feed')"},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.key {
			t.Errorf("key = %q, want %q", tc.attr.Key, tc.key)
		}
		if tc.attr.Value != tc.val {
			t.Errorf("%s value = %v, want %q", tc.key, tc.attr.Value, tc.val)
		}
	}
}
