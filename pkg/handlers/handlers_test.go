package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/admin-shell/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.RespondJSON(w, http.StatusCreated, map[string]string{"path": "/system"})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"path":"/system"}` {
		t.Errorf("body = %s", got)
	}
}

func TestRespondError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	w := httptest.NewRecorder()

	handlers.RespondError(w, logger, http.StatusNotFound, errors.New("async route not found"))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}

	var body map[string]string
	json.NewDecoder(w.Body).Decode(&body)
	if body["error"] != "async route not found" {
		t.Errorf("body = %v", body)
	}
	if !strings.Contains(buf.String(), "handler error") {
		t.Error("error not logged")
	}
}

func TestRespondResult(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		data    any
		success bool
		body    string
	}{
		{"ok", http.StatusOK, []int{1, 2}, true, `{"success":true,"data":[1,2]}`},
		{"failure", http.StatusInternalServerError, []int{}, false, `{"success":false,"data":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			handlers.RespondResult(w, tt.status, tt.data)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.body {
				t.Errorf("body = %s, want %s", got, tt.body)
			}
		})
	}
}
