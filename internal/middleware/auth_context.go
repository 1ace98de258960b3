package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"days-since/internal/ports/auth"
)

type ctxKey string

const (
	claimsKey    ctxKey = "claims"
	communityKey ctxKey = "community_id"
)

const (
	unauthorizedText = "Unauthorized."
	internalText     = "Something went wrong, please try again."
)

// CommunityHeader lleva el identificador de la comunidad (guild) que invoca el comando.
const CommunityHeader = "X-Community-ID"

// RequireDispatcher:
// - Si verifier == nil => modo dev: no exige token.
// - Si verifier != nil => exige Bearer token válido; si no, 401.
func RequireDispatcher(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				writeReply(w, r, http.StatusUnauthorized, unauthorizedText)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeReply(w, r, http.StatusUnauthorized, unauthorizedText)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

// CommunityContext copia X-Community-ID al contexto. No corta el request:
// la ausencia de comunidad la resuelve el servicio como InvalidContext.
func CommunityContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := strings.TrimSpace(r.Header.Get(CommunityHeader)); id != "" {
			r = r.WithContext(context.WithValue(r.Context(), communityKey, id))
		}
		next.ServeHTTP(w, r)
	})
}

// GetCommunityID devuelve "" si el request no trae comunidad.
func GetCommunityID(ctx context.Context) string {
	id, _ := ctx.Value(communityKey).(string)
	return id
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// writeReply responde con la misma forma JSON que los comandos, siempre privada.
func writeReply(w http.ResponseWriter, r *http.Request, status int, text string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"text":          text,
		"visibility":    "requester_only",
		"invocation_id": GetInvocationID(r.Context()),
	})
}
