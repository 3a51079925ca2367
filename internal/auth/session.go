package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/rpggio/tradeledger/internal/domain/user"
	"github.com/rpggio/tradeledger/internal/repository"
)

// UserLookup resolves the user behind a token.
type UserLookup interface {
	GetByOpenID(ctx context.Context, openID string) (*user.User, error)
}

// Session is an authenticated caller.
type Session struct {
	Claims *Claims
	// User is nil when the store could not be reached while resolving the
	// session. The token's claims still identify the owner.
	User *user.User

	loggedOut atomic.Bool
}

// UserID returns the id of the owner of all data touched by the session.
func (s *Session) UserID() int64 {
	if s.User != nil {
		return s.User.ID
	}
	return s.Claims.UserID
}

// LoggedOut reports whether Logout ended this session.
func (s *Session) LoggedOut() bool {
	return s.loggedOut.Load()
}

type sessionKey struct{}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored in ctx, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// Authenticator turns session tokens into sessions.
type Authenticator struct {
	tokens  *TokenManager
	revoker Revoker
	users   UserLookup
	logger  *slog.Logger
}

// NewAuthenticator creates an authenticator.
func NewAuthenticator(tokens *TokenManager, revoker Revoker, users UserLookup, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{tokens: tokens, revoker: revoker, users: users, logger: logger}
}

// Authenticate validates token and loads its user.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, err := a.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	revoked, err := a.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("checking revocation: %w", err)
	}
	if revoked {
		return nil, ErrRevokedToken
	}

	u, err := a.users.GetByOpenID(ctx, claims.OpenID)
	switch {
	case err == nil:
		return &Session{Claims: claims, User: u}, nil
	case errors.Is(err, repository.ErrUnavailable):
		a.logger.Warn("resolving session without user record", "open_id", claims.OpenID, "error", err)
		return &Session{Claims: claims}, nil
	case errors.Is(err, user.ErrUserNotFound):
		return nil, fmt.Errorf("%w: unknown user", ErrInvalidToken)
	default:
		return nil, fmt.Errorf("resolving session user: %w", err)
	}
}

// Logout revokes the session's token until it expires.
func (a *Authenticator) Logout(ctx context.Context, s *Session) error {
	if s == nil || s.Claims == nil {
		return nil
	}
	until := a.tokens.now().Add(a.tokens.tokenDuration)
	if s.Claims.ExpiresAt != nil {
		until = s.Claims.ExpiresAt.Time
	}
	if err := a.revoker.Revoke(ctx, s.Claims.ID, until); err != nil {
		return err
	}
	s.loggedOut.Store(true)
	a.logger.Info("session ended", "open_id", s.Claims.OpenID)
	return nil
}
