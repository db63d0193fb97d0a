// Package registration decides which e-mail addresses may sign up.
package registration

import (
	"context"
	"log/slog"
	"strings"
)

type RuleType string

const (
	RuleEmail  RuleType = "email"
	RuleDomain RuleType = "dominio"
)

// Rule authorizes an exact address or every address under a domain suffix.
type Rule struct {
	Type  RuleType
	Value string
}

func (r Rule) Matches(email string) bool {
	v := strings.ToLower(strings.TrimSpace(r.Value))

	switch r.Type {
	case RuleEmail:
		return email == v
	case RuleDomain:
		return v != "" && strings.HasSuffix(email, v)
	}

	return false
}

type Result struct {
	Authorized bool
	Message    string
}

//go:generate mockgen -source=registration.go -destination=repository_mock.go -package=registration
type Repository interface {
	ActiveRules(ctx context.Context) ([]Rule, error)
}

type Service struct {
	repo           Repository
	fallbackDomain string
}

// NewService returns a Service that falls back to fallbackDomain (e.g.
// "@empresa.com") when no rules are configured or they cannot be read.
func NewService(repo Repository, fallbackDomain string) *Service {
	return &Service{repo: repo, fallbackDomain: strings.ToLower(fallbackDomain)}
}

func (s *Service) Check(ctx context.Context, email string) Result {
	email = strings.ToLower(strings.TrimSpace(email))

	rules, err := s.repo.ActiveRules(ctx)
	if err != nil {
		slog.Error("failed to load registration rules, using fallback domain", "error", err)

		if strings.HasSuffix(email, s.fallbackDomain) {
			return Result{Authorized: true, Message: "Email autorizado"}
		}

		return Result{Authorized: false, Message: "Email não autorizado"}
	}

	if len(rules) == 0 {
		if strings.HasSuffix(email, s.fallbackDomain) {
			return Result{Authorized: true, Message: "Email autorizado"}
		}

		return Result{Authorized: false, Message: "Apenas emails " + s.fallbackDomain + " são permitidos"}
	}

	for _, r := range rules {
		if r.Matches(email) {
			return Result{Authorized: true, Message: "Email autorizado"}
		}
	}

	return Result{Authorized: false, Message: "Este email não está autorizado para registro"}
}
