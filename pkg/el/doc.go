// Package el builds HTML fragments declaratively.
//
// Elements are composed as plain Go expressions and rendered to strings
// for use as Datastar fragment payloads or full pages:
//
//	node := el.Div(el.ID("single_target"),
//	    el.B(el.Text(now)),
//	)
//	html, err := el.Render(node)
//
// Text nodes and attribute values are escaped; use Raw only for trusted
// markup. Attribute output is sorted, so rendering is deterministic.
//
// The Data* helpers cover the Datastar binding attributes (data-store,
// data-model, data-text, data-show, data-on-*).
package el
