package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"clinical-records-api/internal/platform/logger"
	"clinical-records-api/internal/platform/respond"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con stack y responde
// el sobre de error estándar en vez de texto plano.
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
					"request_id": GetRequestID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      fmt.Sprint(rec),
					"stack":      string(debug.Stack()),
				})
				respond.JSON(w, http.StatusInternalServerError, respond.Envelope{
					Status:  http.StatusInternalServerError,
					Message: "internal server error",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
