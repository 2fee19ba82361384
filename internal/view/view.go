// Package view renders the book list page.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"bookshelf/internal/book"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"rating": func(v *float64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', 1, 64)
	},
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"join": strings.Join,
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("index.html").Funcs(funcs).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the page into a buffer first so a template error never leaves a
// half-written response.
func (r *Renderer) Render(w io.Writer, page book.Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
