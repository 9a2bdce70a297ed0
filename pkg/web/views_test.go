package web_test

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/admin-shell/pkg/web"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/shell.html": {Data: []byte(
			`{{ define "shell" }}<title>{{ .Title }}</title><base href="{{ .BasePath }}">{{ template "content" . }}{{ end }}`,
		)},
		"views/welcome.html": {Data: []byte(`{{ define "content" }}welcome {{ upper .Data }}{{ end }}`)},
		"views/broken.html":  {Data: []byte(`{{ define "content" }}{{ .Data.Missing }}{{ end }}`)},
	}
}

func newSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	views := []web.ViewDef{
		{Key: "views/welcome/index", Template: "welcome.html", Title: "Welcome"},
		{Key: "views/broken", Template: "broken.html", Title: "Broken"},
	}
	funcs := template.FuncMap{"upper": strings.ToUpper}

	ts, err := web.NewTemplateSet(testFS(), testFS(), "layouts/*.html", "views", "/", views, funcs)
	if err != nil {
		t.Fatalf("NewTemplateSet() = %v", err)
	}
	return ts
}

func TestTemplateSet_Render(t *testing.T) {
	ts := newSet(t)

	w := httptest.NewRecorder()
	err := ts.Render(w, http.StatusOK, "shell", "views/welcome/index", web.PageData{Data: "admin"})
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}

	if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	want := `<title>Welcome</title><base href="/">welcome ADMIN`
	if got := w.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestTemplateSet_RenderStatus(t *testing.T) {
	ts := newSet(t)

	w := httptest.NewRecorder()
	if err := ts.Render(w, http.StatusNotFound, "shell", "views/welcome/index", web.PageData{Title: "Missing"}); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<title>Missing</title>") {
		t.Errorf("explicit title not used: %s", w.Body)
	}
}

func TestTemplateSet_UnknownView(t *testing.T) {
	ts := newSet(t)

	if ts.Has("views/nope") {
		t.Error("Has(views/nope) = true")
	}

	err := ts.Render(httptest.NewRecorder(), http.StatusOK, "shell", "views/nope", web.PageData{})
	if !errors.Is(err, web.ErrViewNotFound) {
		t.Errorf("Render() = %v, want ErrViewNotFound", err)
	}
}

func TestTemplateSet_ExecutionFailureWritesNothing(t *testing.T) {
	ts := newSet(t)

	w := httptest.NewRecorder()
	err := ts.Render(w, http.StatusOK, "shell", "views/broken", web.PageData{Data: 42})
	if err == nil {
		t.Fatal("Render() = nil, want execution error")
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body)
	}
}

func TestNewTemplateSet_MissingTemplate(t *testing.T) {
	views := []web.ViewDef{{Key: "x", Template: "absent.html"}}
	if _, err := web.NewTemplateSet(testFS(), testFS(), "layouts/*.html", "views", "/", views, nil); err == nil {
		t.Error("NewTemplateSet() = nil, want parse error")
	}
}
