package httpserver

import (
	"context"
	"net/http"

	"elevation-service/internal/gate"
	"elevation-service/internal/identity"
)

// DecisionResolver is satisfied by *gate.Resolver.
type DecisionResolver interface {
	Resolve(ctx context.Context, token string, req gate.Requirement) gate.Decision
}

// Guard protects a route with the access gate. Denied requests are redirected to the
// gate's target; a request whose decision is still pending gets 503.
func Guard(resolver DecisionResolver, req gate.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := identity.BearerToken(r.Header.Get("Authorization"))
			d := resolver.Resolve(r.Context(), token, req)

			switch d.Outcome {
			case gate.Allow:
				next.ServeHTTP(w, r)
			case gate.Redirect:
				// the client has gone away, a late redirect would be stale
				if r.Context().Err() != nil {
					return
				}
				http.Redirect(w, r, string(d.Target), http.StatusFound)
			default:
				w.Header().Set("Retry-After", "1")
				http.Error(w, "access decision pending", http.StatusServiceUnavailable)
			}
		})
	}
}
