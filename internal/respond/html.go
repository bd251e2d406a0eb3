package respond

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
)

// WriteHTML executes the named template and writes the result with status.
// The template is rendered before anything is sent, so a template error
// leaves w untouched and the caller can still write an error response.
func WriteHTML(w http.ResponseWriter, status int, tmpl *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
