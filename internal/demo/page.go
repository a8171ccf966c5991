package demo

import (
	"encoding/json"

	"github.com/datastar-go/datastar/pkg/el"
)

// TimeFormat is the timestamp layout used in fragments and signals.
const TimeFormat = "2006-01-02 15:04:05"

const (
	datastarCDN = "https://cdn.jsdelivr.net/npm/@sudodevnull/datastar"
	waterCSS    = "https://cdn.jsdelivr.net/npm/water.css@2/out/water.css"
)

// InitialStore is the client store the index page boots with.
func InitialStore() map[string]any {
	return map[string]any{
		"input":        "datastar",
		"output":       "",
		"_show":        false,
		"message":      "",
		"send":         "",
		"update_store": "",
	}
}

// IndexPage builds the demo page. The store is serialised into the
// data-store attribute of the main element.
func IndexPage(store map[string]any) *el.VNode {
	storeJSON, err := json.Marshal(store)
	if err != nil {
		storeJSON = []byte("{}")
	}

	return el.Html(el.Lang("en"),
		el.Head(
			el.Title(el.Text("Go SSE with Datastar")),
			el.Meta(el.Charset("UTF-8")),
			el.Meta(el.Name("viewport"), el.Content("width=device-width, initial-scale=1.0")),
			el.Script(el.Type("module"), el.Defer_(), el.Src(datastarCDN)),
			el.LinkEl(el.Rel("stylesheet"), el.Href(waterCSS)),
		),
		el.Body(
			el.H2(el.Text("Go + Datastar Example")),
			el.Main(el.Class("container"), el.ID("main"), el.DataStore(string(storeJSON)),
				el.Hr(),

				el.Input(el.Type("text"), el.Placeholder("Send to server..."), el.DataModel("input")),
				el.Button(el.DataOnClick("$$get('/get')"), el.Text("Send State Roundtrip")),
				el.Div(el.ID("output"), el.DataText("$output")),
				el.Hr(),

				el.Button(el.DataOnClick("$$get('/target')"), el.Text("Target single HTML Element")),
				el.Div(el.ID("single_target")),
				el.Hr(),

				el.Button(el.DataOnClick("$$get('/multi-target')"), el.Text("Target multiple HTML Element")),
				el.Div(el.ID("target_1")),
				el.Div(el.ID("target_2")),
				el.Div(el.ID("target_3")),
				el.Hr(),

				el.Button(el.DataOnClick("$$get('/update-store')"), el.Text("Update `data-store` only")),
				el.Div(el.ID("update_store"), el.DataText("'Data-store variable: update_store=' + $update_store")),
				el.Hr(),

				el.Button(el.DataOnClick("$_show=!$_show"), el.Text("Toggle Show Feed")),
				el.Div(el.DataShow("$_show"),
					el.Button(el.DataOnClick("$$get('/toggle')"), el.Text("Toggle Feed from server")),
					el.Span(el.Text("Feed from server: "), el.Span(el.DataText("$send ? 'Active' : 'Inactive'"))),
					el.Div(el.ID("feeds"),
						el.StyleAttr("border: 1px solid red; max-height: 300px; overflow:auto;"),
						el.DataOnLoad("$$get('/feed')"),
						el.Div(el.ID("feed")),
					),
				),
				el.Hr(),
			),
		),
	)
}
