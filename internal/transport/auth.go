package transport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rpggio/tradeledger/internal/auth"
)

// Authenticator resolves a session token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Session, error)
}

// SessionMiddleware resolves the caller's session from a bearer token or
// the session cookie. Requests without a valid token continue anonymously.
func SessionMiddleware(authn Authenticator, cookieName string, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r, cookieName)
			if token == "" || authn == nil {
				next.ServeHTTP(w, r)
				return
			}

			session, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				logger.Debug("ignoring session token", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		})
	}
}

// RequireSession rejects requests that SessionMiddleware left anonymous.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.SessionFromContext(r.Context()); !ok {
			http.Error(w, "invalid or missing session token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, found := strings.CutPrefix(header, "Bearer "); found {
			return strings.TrimSpace(token)
		}
	}
	if cookieName == "" {
		return ""
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}
