package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"days-since/internal/platform/logger"
)

// Recover responde 500 ante un panic y lo deja en el log estructurado.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered", map[string]any{
					"panic":         fmt.Sprint(rec),
					"path":          r.URL.Path,
					"invocation_id": GetInvocationID(r.Context()),
					"stack":         string(debug.Stack()),
				})
				writeReply(w, r, http.StatusInternalServerError, internalText)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
