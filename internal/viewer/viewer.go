// Package viewer renders standalone HTML pages that display a converted
// model through the model-viewer custom element.
package viewer

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed model_viewer.html.tmpl
var pageTemplate string

var page = template.Must(template.New("model-viewer").Parse(pageTemplate))

// Data carries everything the page needs. URLs must be absolute so the
// page keeps working when embedded cross-origin.
type Data struct {
	GlbURL    string
	UsdzURL   string
	ModelName string
}

// Render produces a self-contained viewer page. UsdzURL may be empty, in
// which case the ios-src attribute is omitted.
func Render(data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render viewer: %w", err)
	}
	return buf.Bytes(), nil
}
