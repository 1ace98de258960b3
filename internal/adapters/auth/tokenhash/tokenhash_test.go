package tokenhash

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestHash_SaltedAndVerifiable(t *testing.T) {
	h1, err := Hash("s3cret-token")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(h1, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format %q", h1)
	}
	h2, _ := Hash("s3cret-token")
	if h1 == h2 {
		t.Fatalf("two hashes of the same token must differ (salt)")
	}

	tests := []struct {
		name    string
		token   string
		hash    string
		want    bool
		wantErr bool
	}{
		{name: "correct token", token: "s3cret-token", hash: h1, want: true},
		{name: "wrong token", token: "other", hash: h1, want: false},
		{name: "garbage hash", token: "s3cret-token", hash: "invalid", wantErr: true},
		{name: "wrong algorithm", token: "s3cret-token", hash: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.token, tt.hash)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compare() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Compare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifier(t *testing.T) {
	h, err := Hash("dispatch-me")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	v, err := NewVerifier(h)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	claims, err := v.Verify(context.Background(), " dispatch-me ")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != dispatcherSubject {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
	if _, err := v.Verify(context.Background(), "nope"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := v.Verify(context.Background(), ""); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}

	if _, err := NewVerifier("not-a-hash"); !errors.Is(err, ErrInvalidHash) {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}
