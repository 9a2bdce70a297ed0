// Package web renders server-side views with Go templates. Templates are
// parsed once at startup and looked up by view key at request time.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ErrViewNotFound is returned when rendering an unregistered view.
var ErrViewNotFound = errors.New("view not found")

// ViewDef binds a view key to its template file and default title.
type ViewDef struct {
	Key      string
	Template string
	Title    string
}

// PageData is passed to every template. BasePath enables portable URL
// generation via {{ .BasePath }}.
type PageData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds one parsed template per view, each a clone of the
// shared layouts.
type TemplateSet struct {
	views    map[string]*template.Template
	titles   map[string]string
	basePath string
}

// NewTemplateSet parses the layouts matching layoutGlob and clones them for
// each view found under viewSubdir. Any parse failure fails the whole set.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef, funcs template.FuncMap) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(funcs).ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	ts := &TemplateSet{
		views:    make(map[string]*template.Template, len(views)),
		titles:   make(map[string]string, len(views)),
		basePath: basePath,
	}

	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Key, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", v.Template, err)
		}
		ts.views[v.Key] = t
		ts.titles[v.Key] = v.Title
	}

	return ts, nil
}

// Has reports whether key is a registered view.
func (ts *TemplateSet) Has(key string) bool {
	_, ok := ts.views[key]
	return ok
}

// Render executes the layout of the view registered under key and writes it
// with status. Output is buffered so nothing is written when execution
// fails. An empty data.Title takes the view's default title.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout, key string, data PageData) error {
	t, ok := ts.views[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrViewNotFound, key)
	}

	if data.Title == "" {
		data.Title = ts.titles[key]
	}
	data.BasePath = ts.basePath

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("render %s: %w", key, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
