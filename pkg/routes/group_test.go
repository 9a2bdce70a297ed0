package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/JaimeStill/admin-shell/pkg/routes"
)

func text(s string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(s + r.PathValue("id")))
	}
}

func testGroup() routes.Group {
	return routes.Group{
		Prefix: "/async-routes",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: text("list")},
			{Method: "GET", Pattern: "/{id}", Handler: text("find:")},
		},
		Children: []routes.Group{
			{
				Prefix: "/tree",
				Routes: []routes.Route{{Method: "GET", Pattern: "", Handler: text("tree")}},
			},
		},
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, testGroup())

	tests := []struct {
		path string
		want string
	}{
		{"/async-routes", "list"},
		{"/async-routes/42", "find:42"},
		{"/async-routes/tree", "tree"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", string(body), tt.want)
			}
		})
	}
}

func TestRegister_MethodMismatch(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, testGroup())

	req := httptest.NewRequest(http.MethodDelete, "/async-routes", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestGroup_Patterns(t *testing.T) {
	want := []string{
		"GET /async-routes",
		"GET /async-routes/{id}",
		"GET /async-routes/tree",
	}
	if got := testGroup().Patterns(); !slices.Equal(got, want) {
		t.Errorf("Patterns() = %v, want %v", got, want)
	}
}
