package tokenhash

import (
	"context"
	"errors"
	"strings"

	"days-since/internal/ports/auth"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenInvalid = errors.New("token is invalid")
)

const dispatcherSubject = "dispatcher"

// Verifier implementa auth.AuthVerifier contra un único hash configurado.
type Verifier struct {
	hash string
}

// NewVerifier valida el formato del hash al arrancar, no en el primer request.
func NewVerifier(encoded string) (*Verifier, error) {
	if _, err := parse(encoded); err != nil {
		return nil, err
	}
	return &Verifier{hash: strings.TrimSpace(encoded)}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}
	ok, err := Compare(token, v.hash)
	if err != nil {
		return auth.Claims{}, err
	}
	if !ok {
		return auth.Claims{}, ErrTokenInvalid
	}
	return auth.Claims{Subject: dispatcherSubject}, nil
}
