package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const (
	callerIDKey  contextKey = "callerID"
	requestIDKey contextKey = "requestID"
)

// WithCallerID adds the authenticated caller to the request context
func WithCallerID(r *http.Request, callerID string) *http.Request {
	ctx := context.WithValue(r.Context(), callerIDKey, callerID)
	return r.WithContext(ctx)
}

// GetCallerID retrieves the caller from context, returns empty string if not found
func GetCallerID(r *http.Request) string {
	callerID, _ := r.Context().Value(callerIDKey).(string)
	return callerID
}

// WithRequestID adds a request ID to the request context
func WithRequestID(r *http.Request, requestID string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDKey, requestID)
	return r.WithContext(ctx)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(r *http.Request) string {
	requestID, _ := r.Context().Value(requestIDKey).(string)
	return requestID
}
