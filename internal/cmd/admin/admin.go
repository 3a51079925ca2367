// Package admin implements the operator commands: applying migrations and
// issuing session tokens without a login flow.
package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rpggio/tradeledger/internal/app"
	"github.com/rpggio/tradeledger/internal/config"
	"github.com/rpggio/tradeledger/internal/domain/user"
)

const usage = `usage: admin <command> [flags]

commands:
  migrate                                    apply pending migrations
  issue-token -open-id ID [-name N] [-email E]  upsert the user and print a session token`

// ErrUsage is returned for unknown commands or missing arguments.
var ErrUsage = errors.New(usage)

// TokenRequest holds the issue-token flags.
type TokenRequest struct {
	OpenID string
	Name   string
	Email  string
}

// ParseTokenRequest parses issue-token flags.
func ParseTokenRequest(fs *flag.FlagSet, args []string) (TokenRequest, error) {
	var req TokenRequest
	fs.StringVar(&req.OpenID, "open-id", "", "identity of the user (required)")
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return TokenRequest{}, err
	}
	req.OpenID = strings.TrimSpace(req.OpenID)
	if req.OpenID == "" {
		return TokenRequest{}, fmt.Errorf("-open-id is required")
	}
	return req, nil
}

// Run executes one command. Output meant for scripts goes to stdout.
func Run(ctx context.Context, args []string, cfg config.Config, stdout io.Writer, logger *slog.Logger) error {
	if len(args) == 0 {
		return ErrUsage
	}
	if logger == nil {
		logger = slog.Default()
	}

	switch args[0] {
	case "migrate":
		if cfg.DB.Driver == "none" {
			return fmt.Errorf("migrate needs a database driver")
		}
		db, err := app.OpenStore(ctx, cfg.DB, logger)
		if err != nil {
			return err
		}
		defer db.Close()
		fmt.Fprintln(stdout, "migrations applied")
		return nil

	case "issue-token":
		req, err := ParseTokenRequest(flag.NewFlagSet("issue-token", flag.ContinueOnError), args[1:])
		if err != nil {
			return err
		}
		token, err := IssueToken(ctx, cfg, req, logger)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, token)
		return nil

	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], ErrUsage)
	}
}

// IssueToken upserts the user described by req and returns a signed session
// token for it.
func IssueToken(ctx context.Context, cfg config.Config, req TokenRequest, logger *slog.Logger) (string, error) {
	db, err := app.OpenStore(ctx, cfg.DB, logger)
	if err != nil {
		return "", err
	}
	defer db.Close()

	application := app.New(db, app.Options{
		OwnerOpenID: cfg.Auth.OwnerOpenID,
		TokenSecret: cfg.Auth.TokenSecret,
		TokenTTL:    cfg.Auth.TokenTTL,
		Logger:      logger,
	})

	upsert := user.UpsertRequest{OpenID: req.OpenID}
	if req.Name != "" {
		upsert.Name = &req.Name
	}
	if req.Email != "" {
		upsert.Email = &req.Email
	}
	u, err := application.Users.Upsert(ctx, upsert)
	if err != nil {
		return "", fmt.Errorf("upsert user: %w", err)
	}

	var name string
	if u.Name != nil {
		name = *u.Name
	}
	token, _, err := application.Tokens.Issue(u.ID, u.OpenID, name)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	logger.Info("issued session token", "user_id", u.ID, "open_id", u.OpenID, "role", u.Role)
	return token, nil
}
