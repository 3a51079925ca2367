package mcp

import (
	"context"
	"net/http"
	"strings"
	"sync"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/tradeledger/internal/domain/user"
)

type contextKey int

const userIDKey contextKey = iota

const toolsCallMethod = "tools/call"

func withUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// getUserID extracts the acting user from context.
func getUserID(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(userIDKey).(int64)
	return v, ok && v != 0
}

// ownerIdentity resolves the configured owner once and remembers the id.
// Failures are not remembered so a store outage does not stick.
type ownerIdentity struct {
	users  OwnerUsers
	openID string

	mu     sync.Mutex
	userID int64
}

func newOwnerIdentity(users OwnerUsers, openID string) *ownerIdentity {
	return &ownerIdentity{users: users, openID: openID}
}

func (o *ownerIdentity) resolve(ctx context.Context) (int64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.userID != 0 {
		return o.userID, nil
	}
	if o.users == nil || o.openID == "" {
		return 0, errUnauthorized
	}
	u, err := o.users.Upsert(ctx, user.UpsertRequest{OpenID: o.openID})
	if err != nil {
		return 0, MapError(err)
	}
	o.userID = u.ID
	return u.ID, nil
}

// ownerMiddleware runs every tool call as the owner account.
func ownerMiddleware(owner *ownerIdentity) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if method != toolsCallMethod {
				return next(ctx, method, req)
			}
			userID, err := owner.resolve(ctx)
			if err != nil {
				return nil, err
			}
			return next(withUserID(ctx, userID), method, req)
		}
	}
}

// sessionMiddleware authenticates tool calls with the same session token
// the RPC endpoint accepts.
func sessionMiddleware(authn SessionAuthenticator, cookieName string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if method != toolsCallMethod {
				return next(ctx, method, req)
			}
			if authn == nil {
				return nil, errUnauthorized
			}

			extra := req.GetExtra()
			if extra == nil || extra.Header == nil {
				return nil, errUnauthorized
			}
			token := tokenFromHeader(extra.Header, cookieName)
			if token == "" {
				return nil, errUnauthorized
			}

			session, err := authn.Authenticate(ctx, token)
			if err != nil {
				return nil, errUnauthorized
			}
			return next(withUserID(ctx, session.UserID()), method, req)
		}
	}
}

func tokenFromHeader(header http.Header, cookieName string) string {
	if h := header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookieName == "" {
		return ""
	}
	cookie, err := (&http.Request{Header: header}).Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
