package main

import (
	"bytes"
	"strings"
	"testing"

	"days-since/internal/adapters/auth/tokenhash"
)

func TestHashToken_FromPipedStdin(t *testing.T) {
	var out, errOut bytes.Buffer

	if err := hashToken(nil, strings.NewReader("s3cret\n"), &out, &errOut); err != nil {
		t.Fatalf("hashToken: %v", err)
	}

	hash := strings.TrimSpace(out.String())
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("expected argon2id hash, got %q", hash)
	}

	ok, err := tokenhash.Compare("s3cret", hash)
	if err != nil || !ok {
		t.Fatalf("printed hash does not verify the token: ok=%v err=%v", ok, err)
	}
}

func TestHashToken_RejectsEmpty(t *testing.T) {
	var out, errOut bytes.Buffer

	if err := hashToken(nil, strings.NewReader("\n"), &out, &errOut); err == nil {
		t.Fatalf("expected error for empty token")
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be printed on error, got %q", out.String())
	}
}

func TestHashToken_UnknownFlag(t *testing.T) {
	var out, errOut bytes.Buffer

	if err := hashToken([]string{"-nope"}, strings.NewReader("x\n"), &out, &errOut); err == nil {
		t.Fatalf("expected flag parse error")
	}
}
