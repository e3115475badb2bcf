package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"vfxscaffold/internal/domain"
	"vfxscaffold/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var (
		conflictErr *domain.ConflictError
		ioErr       *domain.IOError
		httpErr     domain.HTTPError
	)

	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrParse):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &conflictErr):
		httputil.RespondErrorWithExtras(w, http.StatusConflict, err.Error(),
			map[string]interface{}{"path": conflictErr.Path})
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &ioErr):
		status := ioErr.StatusCode()
		if status >= http.StatusInternalServerError {
			logger.Error("filesystem operation failed", "op", ioErr.Op, "path", ioErr.Path, "error", ioErr.Err)
		}
		httputil.RespondErrorWithExtras(w, status, err.Error(),
			map[string]interface{}{"path": ioErr.Path})
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), err.Error())
	default:
		logger.Error("unhandled error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeBody parses a JSON request body, answering 400 on failure.
// Returns false when the response has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := httputil.ParseJSON(w, r, dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
