package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	invocationKey ctxKey = "invocation_id"

	InvocationHeader = "X-Invocation-ID"
)

// InvocationID reutiliza el X-Invocation-ID del dispatcher o genera uno nuevo,
// y lo devuelve en la respuesta para correlacionar logs de ambos lados.
func InvocationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(InvocationHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(InvocationHeader, id)
		ctx := context.WithValue(r.Context(), invocationKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetInvocationID(ctx context.Context) string {
	id, _ := ctx.Value(invocationKey).(string)
	return id
}
