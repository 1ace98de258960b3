package events

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"days-since/internal/middleware"
	"days-since/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(store Store, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.InvocationID)
	r.Use(middleware.CommunityContext)
	RegisterRoutes(r, NewService(store, log), log, nil)
	return r
}

func TestHandler_StoreFailureIs500AndLogged(t *testing.T) {
	store := newTestStore()
	store.failSave = true

	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, Output: &buf})

	req := httptest.NewRequest(http.MethodPost, "/commands/create", strings.NewReader(`{"name":"x","text":"y"}`))
	req.Header.Set(middleware.CommunityHeader, "1")
	rec := httptest.NewRecorder()

	newTestRouter(store, log).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp replyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Text != "Something went wrong, please try again." || resp.Visibility != VisibilityRequesterOnly {
		t.Fatalf("unexpected reply: %+v", resp)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected one json log line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "error" || entry["command"] != CommandCreate || entry["outcome"] != "store_failure" || entry["community_id"] != "1" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
	if entry["invocation_id"] == "" || entry["invocation_id"] == nil {
		t.Fatalf("log entry without invocation_id: %v", entry)
	}
}

func TestHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{err: ErrAlreadyExists, want: http.StatusConflict},
		{err: ErrNotFound, want: http.StatusNotFound},
		{err: ErrInvalidContext, want: http.StatusBadRequest},
		{err: ErrInvalidInput, want: http.StatusBadRequest},
		{err: storeErr("save", errBackendDown), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestHandler_AutocompleteDegradesToEmpty(t *testing.T) {
	store := newTestStore()
	store.failListKeys = true

	req := httptest.NewRequest(http.MethodGet, "/commands/autocomplete?partial=a", nil)
	req.Header.Set(middleware.CommunityHeader, "1")
	rec := httptest.NewRecorder()

	newTestRouter(store, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"choices":[]}` {
		t.Fatalf("unexpected body %s", got)
	}
}
