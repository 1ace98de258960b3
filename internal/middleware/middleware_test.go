package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"days-since/internal/platform/logger"
	"days-since/internal/ports/auth"
)

type staticVerifier struct{ token string }

func (v staticVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token != v.token {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{Subject: "test"}, nil
}

func TestRequireDispatcher(t *testing.T) {
	var gotClaims auth.Claims
	h := RequireDispatcher(staticVerifier{token: "abc"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = GetClaims(r.Context())
	}))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{name: "no header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "wrong token", header: "Bearer xyz", want: http.StatusUnauthorized},
		{name: "ok", header: "Bearer abc", want: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/commands/list", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
	if gotClaims.Subject != "test" {
		t.Fatalf("claims not propagated: %+v", gotClaims)
	}
}

func TestRequireDispatcher_DevModePassesThrough(t *testing.T) {
	called := false
	h := RequireDispatcher(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Fatalf("expected dev mode to call next")
	}
}

func TestCommunityAndInvocationContext(t *testing.T) {
	var community, invocation string
	h := InvocationID(CommunityContext(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		community = GetCommunityID(r.Context())
		invocation = GetInvocationID(r.Context())
	})))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(CommunityHeader, "  guild-42 ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if community != "guild-42" {
		t.Fatalf("community = %q", community)
	}
	if invocation == "" || rec.Header().Get(InvocationHeader) != invocation {
		t.Fatalf("invocation id not generated/echoed: %q vs %q", invocation, rec.Header().Get(InvocationHeader))
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(InvocationHeader, "from-dispatcher")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if invocation != "from-dispatcher" || community != "" {
		t.Fatalf("unexpected context: invocation=%q community=%q", invocation, community)
	}
}

func TestRecover(t *testing.T) {
	h := Recover(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type = %q", ct)
	}
}

func TestRequireDispatcher_UnauthorizedIsJSONReply(t *testing.T) {
	h := InvocationID(RequireDispatcher(staticVerifier{token: "abc"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next must not run without a valid token")
	})))

	req := httptest.NewRequest(http.MethodPost, "/commands/list", nil)
	req.Header.Set(InvocationHeader, "inv-7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type = %q", ct)
	}

	var body struct {
		Text         string `json:"text"`
		Visibility   string `json:"visibility"`
		InvocationID string `json:"invocation_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v body=%s", err, rec.Body.String())
	}
	if body.Text != "Unauthorized." || body.Visibility != "requester_only" || body.InvocationID != "inv-7" {
		t.Fatalf("unexpected reply: %+v", body)
	}
}
