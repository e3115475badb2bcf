package middleware

import (
	"errors"
	"net/http"
	"strings"

	"vfxscaffold/internal/auth"
	"vfxscaffold/internal/httputil"
)

// AuthMiddleware requires a valid bearer token on every request except
// the listed public paths. A nil verifier disables authentication.
func AuthMiddleware(verifier auth.JWTVerifier, publicPaths ...string) func(http.Handler) http.Handler {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if verifier == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := public[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			token, err := bearerToken(r)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, err.Error())
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, err.Error())
				return
			}

			next.ServeHTTP(w, httputil.WithCallerID(r, claims.CallerID()))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("authorization header must be a bearer token")
	}
	return strings.TrimSpace(token), nil
}
