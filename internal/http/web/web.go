// README: Embedded HTML templates for the form and result pages.
package web

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var files embed.FS

// Template names rendered by the page handlers.
const (
	FormPage   = "form"
	ResultPage = "result"
)

var funcs = template.FuncMap{
	// stars returns five flags, true for each filled star.
	"stars": func(n int) []bool {
		out := make([]bool, 5)
		for i := range out {
			out[i] = i < n
		}
		return out
	},
	// lines splits multi-line activity text into list items.
	"lines": func(s string) []string {
		var out []string
		for _, l := range strings.Split(s, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				out = append(out, l)
			}
		}
		return out
	},
}

// Templates parses every embedded page together with the shared layout.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}
