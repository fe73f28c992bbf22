package middleware

import (
	"context"
	"net/http"

	"github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/httputil"
)

type sessionKey struct{}

// RequireSession requires the anonymous shopper session header and
// stores its value in the request context.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := r.Header.Get(SessionIDHeader)
		if sid == "" {
			httputil.WriteError(w, r, errors.NewInvalidInput("missing X-Session-ID header"))
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the shopper session ID stored by RequireSession.
func SessionFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(sessionKey{}).(string)
	return sid, ok
}
