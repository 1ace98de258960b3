package tokenhash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Parámetros Argon2id (recomendación OWASP).
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

var ErrInvalidHash = errors.New("invalid argon2id hash")

// Hash devuelve $argon2id$v=19$m=..,t=..,p=..$salt$hash.
func Hash(token string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	sum := argon2.IDKey([]byte(token), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	), nil
}

type params struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	sum     []byte
}

func parse(encoded string) (params, error) {
	parts := strings.Split(strings.TrimSpace(encoded), "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params{}, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params{}, fmt.Errorf("%w: unsupported version", ErrInvalidHash)
	}

	var p params
	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &threads); err != nil {
		return params{}, fmt.Errorf("%w: parameters: %v", ErrInvalidHash, err)
	}
	if threads == 0 || threads > 255 {
		return params{}, fmt.Errorf("%w: parallelism out of range", ErrInvalidHash)
	}
	p.threads = uint8(threads)

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return params{}, fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	if p.sum, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(p.sum) == 0 {
		return params{}, fmt.Errorf("%w: hash", ErrInvalidHash)
	}
	return p, nil
}

// Compare recalcula el hash con los mismos parámetros y compara en tiempo constante.
func Compare(token, encoded string) (bool, error) {
	p, err := parse(encoded)
	if err != nil {
		return false, err
	}
	sum := argon2.IDKey([]byte(token), p.salt, p.time, p.memory, p.threads, uint32(len(p.sum)))
	return subtle.ConstantTimeCompare(p.sum, sum) == 1, nil
}
