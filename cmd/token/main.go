// Command token issues a bearer token for calling the API locally, signed with
// AUTH_JWT_SECRET.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/bolao/internal/auth"
	"github.com/MrJamesThe3rd/bolao/internal/config"
)

var errNoSecret = errors.New("AUTH_JWT_SECRET is not set")

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(os.Args[1:], cfg, os.Stdout); err != nil {
		slog.Error("failed to issue token", "error", err)
		os.Exit(1)
	}
}

func run(args []string, cfg *config.Config, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	email := fs.String("email", "", "caller e-mail (required)")
	sub := fs.String("sub", "", "subject claim, defaults to the e-mail")
	name := fs.String("name", "", "display name")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return errors.New("-email is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errNoSecret
	}

	if *sub == "" {
		*sub = *email
	}

	authn := auth.New(cfg.Auth.JWTSecret, cfg.Auth.AdminEmails)
	if !authn.IsAdmin(*email) {
		slog.Warn("e-mail is not in ADMIN_EMAILS, admin routes will reject this token", "email", *email)
	}

	token, err := authn.Sign(auth.User{ID: *sub, Email: *email, Name: *name}, *ttl)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	_, err = fmt.Fprintln(out, token)

	return err
}
