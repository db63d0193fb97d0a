// Package auth authenticates API callers from HS256 bearer tokens and checks
// the administrator allow-list.
package auth

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

type User struct {
	ID    string
	Email string
	Name  string
}

type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// FromContext returns the authenticated caller, or nil.
func FromContext(ctx context.Context) *User {
	u, _ := ctx.Value(ctxKey{}).(*User)
	return u
}

type Authenticator struct {
	secret []byte
	admins []string
}

// New returns an Authenticator verifying tokens signed with secret. admins is
// the list of e-mails allowed to use administrative routes.
func New(secret string, admins []string) *Authenticator {
	normalized := make([]string, 0, len(admins))

	for _, a := range admins {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			normalized = append(normalized, a)
		}
	}

	return &Authenticator{secret: []byte(secret), admins: normalized}
}

func (a *Authenticator) IsAdmin(email string) bool {
	return slices.Contains(a.admins, strings.ToLower(strings.TrimSpace(email)))
}

// Verify parses and validates a signed token.
func (a *Authenticator) Verify(token string) (*User, error) {
	var claims Claims

	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if !tkn.Valid || claims.Subject == "" || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return &User{ID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}

// Sign issues a token for u valid for ttl.
func (a *Authenticator) Sign(u User, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		Email: u.Email,
		Name:  u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func bearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")

	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}

	return strings.TrimSpace(token), nil
}
