package asyncroutes_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/admin-shell/internal/asyncroutes"
	"github.com/JaimeStill/admin-shell/pkg/pagination"
	"github.com/JaimeStill/admin-shell/pkg/route"
	"github.com/JaimeStill/admin-shell/pkg/routes"
)

var pageConfig = pagination.Config{DefaultPageSize: 2, MaxPageSize: 10}

type fakeSystem struct {
	records []asyncroutes.Record
	err     error
	page    pagination.PageRequest
}

func (f *fakeSystem) Tree(ctx context.Context) ([]route.Route, error) {
	if f.err != nil {
		return nil, f.err
	}
	return asyncroutes.BuildTree(f.records), nil
}

func (f *fakeSystem) List(ctx context.Context) ([]asyncroutes.Record, error) {
	return f.records, f.err
}

func (f *fakeSystem) Search(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[asyncroutes.Record], error) {
	if f.err != nil {
		return nil, f.err
	}
	f.page = page

	var matched []asyncroutes.Record
	for _, r := range f.records {
		if page.Search == nil || strings.Contains(r.Path, *page.Search) || strings.Contains(r.Name, *page.Search) {
			matched = append(matched, r)
		}
	}

	start := min(page.Offset(), len(matched))
	end := min(start+page.PageSize, len(matched))
	result := pagination.NewPageResult(matched[start:end], len(matched), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeSystem) Find(ctx context.Context, id uuid.UUID) (*asyncroutes.Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, asyncroutes.ErrNotFound
}

func (f *fakeSystem) Create(ctx context.Context, cmd asyncroutes.CreateCommand) (*asyncroutes.Record, error) {
	if err := cmd.Validate(""); err != nil {
		return nil, err
	}
	rec := asyncroutes.Record{
		ID:        uuid.New(),
		ParentID:  cmd.ParentID,
		Path:      cmd.Path,
		Name:      cmd.Name,
		Component: cmd.Component,
		Meta:      cmd.Meta,
		CreatedAt: time.Now(),
	}
	f.records = append(f.records, rec)
	return &rec, nil
}

func (f *fakeSystem) Delete(ctx context.Context, id uuid.UUID) error {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return asyncroutes.ErrNotFound
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRecords() []asyncroutes.Record {
	permission := uuid.New()
	system := uuid.New()
	return []asyncroutes.Record{
		{ID: permission, Path: "/permission", Meta: route.Meta{Title: "Permission", Rank: 10, ShowLink: true}},
		{ID: uuid.New(), ParentID: &permission, Path: "/permission/page/index", Name: "PermissionPage", Meta: route.Meta{Title: "Page", ShowLink: true}},
		{ID: uuid.New(), ParentID: &system, Path: "/system/role/index", Name: "SystemRole", Meta: route.Meta{Title: "Role", ShowLink: true}},
		{ID: system, Path: "/system", Meta: route.Meta{Title: "System", Rank: 20, ShowLink: true}},
	}
}

func newMux(h *asyncroutes.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, h.Routes())
	mux.HandleFunc("GET /get-async-routes", h.GetAsyncRoutes)
	return mux
}

func TestBuildTree(t *testing.T) {
	tree := asyncroutes.BuildTree(sampleRecords())

	if len(tree) != 2 {
		t.Fatalf("roots = %d, want 2", len(tree))
	}
	if tree[0].Path != "/permission" || tree[1].Path != "/system" {
		t.Errorf("roots = %s, %s", tree[0].Path, tree[1].Path)
	}
	if len(tree[0].Children) != 1 || tree[0].Children[0].Name != "PermissionPage" {
		t.Errorf("permission children = %+v", tree[0].Children)
	}
	if len(tree[1].Children) != 1 || tree[1].Children[0].Name != "SystemRole" {
		t.Errorf("system children = %+v", tree[1].Children)
	}
}

func TestBuildTree_DropsOrphans(t *testing.T) {
	missing := uuid.New()
	records := []asyncroutes.Record{
		{ID: uuid.New(), Path: "/a"},
		{ID: uuid.New(), ParentID: &missing, Path: "/b"},
	}

	tree := asyncroutes.BuildTree(records)
	if len(tree) != 1 || tree[0].Path != "/a" {
		t.Errorf("tree = %+v, want only /a", tree)
	}
}

func TestCreateCommand_Validate(t *testing.T) {
	parent := uuid.New()

	tests := []struct {
		name   string
		cmd    asyncroutes.CreateCommand
		parent string
		want   error
	}{
		{"valid", asyncroutes.CreateCommand{Path: "/permission"}, "", nil},
		{"valid child", asyncroutes.CreateCommand{ParentID: &parent, Path: "page"}, "/permission", nil},
		{"valid param", asyncroutes.CreateCommand{Path: "/items/:id([0-9]+)"}, "", nil},
		{"empty path", asyncroutes.CreateCommand{}, "", asyncroutes.ErrInvalid},
		{"relative top-level", asyncroutes.CreateCommand{Path: "permission"}, "", asyncroutes.ErrInvalid},
		{"optional param", asyncroutes.CreateCommand{Path: "/bad/:id?"}, "", asyncroutes.ErrInvalid},
		{"reserved path", asyncroutes.CreateCommand{Path: "/login"}, "", asyncroutes.ErrReserved},
		{"reserved child path", asyncroutes.CreateCommand{ParentID: &parent, Path: "welcome"}, "/", asyncroutes.ErrReserved},
		{"reserved name", asyncroutes.CreateCommand{Path: "/other", Name: "Welcome"}, "", asyncroutes.ErrReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate(tt.parent)
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateCommand_Conflicts(t *testing.T) {
	items := uuid.New()
	existing := append(sampleRecords(),
		asyncroutes.Record{ID: items, Path: "/items/:id", Name: "Item"},
		asyncroutes.Record{ID: uuid.New(), ParentID: &items, Path: "edit", Name: "ItemEdit"},
	)

	tests := []struct {
		name   string
		cmd    asyncroutes.CreateCommand
		parent string
		want   error
	}{
		{"distinct path", asyncroutes.CreateCommand{Path: "/items/:id/view", Name: "ItemView"}, "", nil},
		{"same shape", asyncroutes.CreateCommand{Path: "/items/:key", Name: "ItemByKey"}, "", asyncroutes.ErrDuplicate},
		{"same shape under parent", asyncroutes.CreateCommand{ParentID: &items, Path: "edit"}, "/items/:id", asyncroutes.ErrDuplicate},
		{"constant shape", asyncroutes.CreateCommand{Path: "/redirect/:rest*"}, "", asyncroutes.ErrDuplicate},
		{"duplicate name", asyncroutes.CreateCommand{Path: "/orders", Name: "SystemRole"}, "", asyncroutes.ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Conflicts(existing, tt.parent)
			if tt.want == nil {
				if err != nil {
					t.Errorf("Conflicts() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Conflicts() = %v, want %v", err, tt.want)
			}
			if got := asyncroutes.MapHTTPStatus(err); got != http.StatusConflict {
				t.Errorf("MapHTTPStatus() = %d, want 409", got)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{asyncroutes.ErrNotFound, http.StatusNotFound},
		{asyncroutes.ErrDuplicate, http.StatusConflict},
		{asyncroutes.ErrReserved, http.StatusBadRequest},
		{fmt.Errorf("wrap: %w", asyncroutes.ErrInvalid), http.StatusBadRequest},
		{asyncroutes.ErrParentNotFound, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := asyncroutes.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestHandler_GetAsyncRoutes(t *testing.T) {
	mux := newMux(asyncroutes.NewHandler(&fakeSystem{records: sampleRecords()}, discardLogger(), pageConfig))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get-async-routes", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.Success {
		t.Error("success = false, want true")
	}

	tree, err := route.Decode(body.Data)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree) != 2 || tree[0].Meta.Rank != 10 {
		t.Errorf("tree = %+v", tree)
	}
}

func TestHandler_GetAsyncRoutes_Failure(t *testing.T) {
	mux := newMux(asyncroutes.NewHandler(&fakeSystem{err: errors.New("db down")}, discardLogger(), pageConfig))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get-async-routes", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"success":false,"data":[]}` {
		t.Errorf("body = %s", got)
	}
}

func TestHandler_CRUD(t *testing.T) {
	sys := &fakeSystem{}
	mux := newMux(asyncroutes.NewHandler(sys, discardLogger(), pageConfig))

	rec := httptest.NewRecorder()
	body := `{"path":"/permission","name":"Permission","meta":{"title":"Permission"}}`
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/async-routes", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", rec.Code, rec.Body)
	}

	var created asyncroutes.Record
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if !created.Meta.ShowLink {
		t.Error("created showLink = false, want default true")
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/async-routes/"+created.ID.String(), nil))
	if rec.Code != http.StatusOK {
		t.Errorf("find status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/async-routes", nil))
	var list []asyncroutes.Record
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("list = %d records, want 1", len(list))
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/async-routes/"+created.ID.String(), nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/async-routes/"+created.ID.String(), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("find after delete status = %d, want 404", rec.Code)
	}
}

func TestHandler_Errors(t *testing.T) {
	mux := newMux(asyncroutes.NewHandler(&fakeSystem{}, discardLogger(), pageConfig))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"bad id", http.MethodGet, "/async-routes/not-a-uuid", "", http.StatusBadRequest},
		{"bad body", http.MethodPost, "/async-routes", "{", http.StatusBadRequest},
		{"reserved", http.MethodPost, "/async-routes", `{"path":"/login"}`, http.StatusBadRequest},
		{"delete missing", http.MethodDelete, "/async-routes/" + uuid.NewString(), "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHandler_Search(t *testing.T) {
	sys := &fakeSystem{records: sampleRecords()}
	mux := newMux(asyncroutes.NewHandler(sys, discardLogger(), pageConfig))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/async-routes/search?page_size=50&sort=-Path", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	if sys.page.PageSize != pageConfig.MaxPageSize {
		t.Errorf("page size = %d, want capped at %d", sys.page.PageSize, pageConfig.MaxPageSize)
	}
	if len(sys.page.Sort) != 1 || sys.page.Sort[0].Field != "Path" || !sys.page.Sort[0].Descending {
		t.Errorf("sort = %+v", sys.page.Sort)
	}

	var result pagination.PageResult[asyncroutes.Record]
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Total != len(sampleRecords()) || result.TotalPages != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestHandler_Search_DefaultPage(t *testing.T) {
	sys := &fakeSystem{records: sampleRecords()}
	mux := newMux(asyncroutes.NewHandler(sys, discardLogger(), pageConfig))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/async-routes/search", nil))

	var result pagination.PageResult[asyncroutes.Record]
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.PageSize != pageConfig.DefaultPageSize || len(result.Data) > pageConfig.DefaultPageSize {
		t.Errorf("result = %+v", result)
	}
}

func TestHandler_Search_Error(t *testing.T) {
	mux := newMux(asyncroutes.NewHandler(&fakeSystem{err: errors.New("db down")}, discardLogger(), pageConfig))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/async-routes/search?search=perm", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
