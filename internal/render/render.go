// Package render loads the HTML templates once at startup and executes
// them per request.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"
)

var funcMap = template.FuncMap{
	"FormatDateTime": FormatDateTime,
}

// FormatDateTime formats a timestamp for display on the meme pages.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("January 2, 2006 at 3:04 PM")
}

// Renderer holds the parsed template set.
type Renderer struct {
	templates *template.Template
}

// New parses every *.html template under dir.
func New(dir string) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcMap).ParseGlob(dir + "/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Page executes the named template with data and writes it with the given
// status code. The template runs into a buffer first so a render failure
// becomes a clean 500 instead of a half-written page.
func (r *Renderer) Page(w http.ResponseWriter, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
