package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"vfxscaffold/internal/httputil"
)

// Recovery turns a handler panic into a logged 500 problem response
// carrying the request ID.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
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

				requestID := httputil.GetRequestID(r)
				logger.Error("handler panicked",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", requestID,
					"stack", string(debug.Stack()),
				)

				problem := httputil.NewProblem(http.StatusInternalServerError, "internal server error")
				problem.Instance = r.URL.Path
				if requestID != "" {
					problem.Extra = map[string]interface{}{"request_id": requestID}
				}
				httputil.WriteProblem(w, problem)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
