package route_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/JaimeStill/admin-shell/pkg/route"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		pattern  string
		chi      string
		params   []string
		catchAll bool
	}{
		{"/", "/", nil, false},
		{"/login", "/login", nil, false},
		{"/user/:id", "/user/{id}", []string{"id"}, false},
		{`/user/:id(\d+)`, `/user/{id:\d+}`, []string{"id"}, false},
		{"/user-:id/edit", "/user-{id}/edit", []string{"id"}, false},
		{"/redirect/:path(.*)", "/redirect/*", []string{"path"}, true},
		{"/files/:rest*", "/files/*", []string{"rest"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := route.Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile() = %v", err)
			}
			if p.Chi() != tt.chi {
				t.Errorf("Chi() = %q, want %q", p.Chi(), tt.chi)
			}
			if !slices.Equal(p.Params(), tt.params) {
				t.Errorf("Params() = %v, want %v", p.Params(), tt.params)
			}
			if p.CatchAll() != tt.catchAll {
				t.Errorf("CatchAll() = %v, want %v", p.CatchAll(), tt.catchAll)
			}
		})
	}
}

func TestCompile_Key(t *testing.T) {
	p, err := route.Compile("/redirect/:path(.*)")
	if err != nil {
		t.Fatalf("Compile() = %v", err)
	}

	if p.Key("path") != "*" {
		t.Errorf("Key(path) = %q, want *", p.Key("path"))
	}
}

func TestCompile_Rejects(t *testing.T) {
	patterns := []string{
		"",
		"login",
		"/user/:id?",
		"/user/:ids+",
		"/:path(.*)/tail",
		"/x-:path(.*)",
		"/a/:id/:id",
		"/a/:(x)",
		"/a/:id(x",
		"/a/:id(a/b)",
		"/a/{id}",
	}

	for _, pattern := range patterns {
		if _, err := route.Compile(pattern); !errors.Is(err, route.ErrInvalidPattern) {
			t.Errorf("Compile(%q) = %v, want ErrInvalidPattern", pattern, err)
		}
	}
}

func TestPattern_Shape(t *testing.T) {
	a, _ := route.Compile("/items/:id")
	b, _ := route.Compile("/items/:key")
	c, _ := route.Compile("/items/:id([0-9]+)")
	d, _ := route.Compile("/redirect/:path(.*)")

	if a.Shape() != b.Shape() {
		t.Errorf("Shape() differs for equivalent patterns: %q, %q", a.Shape(), b.Shape())
	}
	if a.Shape() == c.Shape() {
		t.Errorf("Shape() equal for constrained pattern: %q", c.Shape())
	}
	if c.Shape() != "/items/{:[0-9]+}" {
		t.Errorf("Shape() = %q", c.Shape())
	}
	if d.Shape() != "/redirect/*" {
		t.Errorf("Shape() = %q", d.Shape())
	}
}
