package el

import (
	"strings"
	"testing"
)

func mustRender(t *testing.T, node *VNode) string {
	t.Helper()
	html, err := Render(node)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return html
}

func TestRenderElement(t *testing.T) {
	cases := []struct {
		name string
		node *VNode
		want string
	}{
		{
			name: "simple element",
			node: Div(ID("single_target"), B(Text("2026-08-29 12:00:00"))),
			want: `<div id="single_target"><b>2026-08-29 12:00:00</b></div>`,
		},
		{
			name: "attributes sorted",
			node: Span(TitleAttr("t"), ID("a"), Class("c")),
			want: `<span class="c" id="a" title="t"></span>`,
		},
		{
			name: "void element has no closing tag",
			node: Input(Type("text"), Placeholder("Send to server...")),
			want: `<input placeholder="Send to server..." type="text">`,
		},
		{
			name: "boolean attributes render by presence",
			node: Button(Disabled(), Text("go")),
			want: `<button disabled>go</button>`,
		},
		{
			name: "fragment has no wrapper",
			node: Fragment(Div(ID("a")), Div(ID("b"))),
			want: `<div id="a"></div><div id="b"></div>`,
		},
		{
			name: "raw passes through",
			node: Div(Raw("<b>unescaped</b>")),
			want: `<div><b>unescaped</b></div>`,
		},
		{
			name: "nil node renders nothing",
			node: Div(If(false, Span())),
			want: `<div></div>`,
		},
		{
			name: "numeric attribute",
			node: Img(Src("/x.png"), Width(10), Height(20)),
			want: `<img height="20" src="/x.png" width="10">`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mustRender(t, tc.node); got != tc.want {
				t.Errorf("render mismatch:\n got: %s\nwant: %s", got, tc.want)
			}
		})
	}
}

func TestRenderEscapesText(t *testing.T) {
	got := mustRender(t, Div(Text(`<script>alert("xss")&'</script>`)))
	want := `<div>&lt;script&gt;alert(&quot;xss&quot;)&amp;&#39;&lt;/script&gt;</div>`
	if got != want {
		t.Errorf("text escaping mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderEscapesAttributes(t *testing.T) {
	got := mustRender(t, Div(DataStore(`{"input":"a<b"}`)))
	want := `<div data-store="{&quot;input&quot;:&quot;a&lt;b&quot;}"></div>`
	if got != want {
		t.Errorf("attr escaping mismatch:\n got: %s\nwant: %s", got, want)
	}

	if !strings.Contains(mustRender(t, Div(TitleAttr("a\nb"))), "&#10;") {
		t.Errorf("newline in attribute should be escaped")
	}
}

func TestRenderPageAddsDoctype(t *testing.T) {
	got, err := RenderPage(Html(Head(Title("t")), Body()))
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	want := "<!DOCTYPE html>\n<html><head><title>t</title></head><body></body></html>"
	if got != want {
		t.Errorf("page mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	node := Main(ID("main"), Class("container"), DataStore(`{"a":1}`))
	first := mustRender(t, node)
	for i := 0; i < 10; i++ {
		if got := mustRender(t, node); got != first {
			t.Fatalf("render not deterministic: %s vs %s", got, first)
		}
	}
}
