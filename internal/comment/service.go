package comment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/ai"
	"github.com/MrJamesThe3rd/bolao/internal/metrics"
)

const (
	anonymous        = "Anônimo"
	defaultRejection = "Rejeitado pela IA"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=comment
type Repository interface {
	// ChatEnabled reports whether the domain accepts comments. Domains without
	// configuration accept them.
	ChatEnabled(ctx context.Context, domain string) (bool, error)
	CreateComment(ctx context.Context, c *Comment) error
	ListUnmoderated(ctx context.Context, limit int) ([]*Comment, error)
	MarkModerated(ctx context.Context, id uuid.UUID, approved bool, reason *string) error
}

type Service struct {
	repo      Repository
	moderator *Moderator
	gen       ai.Generator
}

// NewService returns a comment service. gen may be nil, in which case posts are
// moderated with the word list and ReviewPending is a no-op.
func NewService(repo Repository, gen ai.Generator) *Service {
	return &Service{repo: repo, moderator: NewModerator(gen), gen: gen}
}

// Post moderates and stores a comment for domain.
func (s *Service) Post(ctx context.Context, author Author, domain, message string) (*Comment, error) {
	message = strings.TrimSpace(message)
	domain = strings.TrimSpace(domain)

	if message == "" || domain == "" {
		return nil, ErrMissingFields
	}

	if utf8.RuneCountInString(message) > MaxLength {
		return nil, ErrTooLong
	}

	enabled, err := s.repo.ChatEnabled(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("check domain config: %w", err)
	}

	if !enabled {
		return nil, ErrChatDisabled
	}

	d := s.moderator.Moderate(ctx, message)
	metrics.ObserveModeration(d.Moderator, d.Approved)

	if !d.Approved {
		return nil, &RejectedError{Reason: d.Reason}
	}

	c := &Comment{
		Domain:        domain,
		UserID:        author.ID,
		UserName:      displayName(author),
		UserEmail:     author.Email,
		Message:       message,
		Approved:      true,
		ModeratedByAI: d.Moderator == ModeratorAI,
	}

	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

type ReviewResult struct {
	Message   string `json:"mensagem,omitempty"`
	Processed int    `json:"processados"`
	Approved  int    `json:"aprovados"`
	Rejected  int    `json:"rejeitados"`
	Tokens    int32  `json:"tokens_usados"`
}

// ReviewPending asks the model to re-moderate up to limit comments that have
// not been reviewed by it yet, following the given instructions.
func (s *Service) ReviewPending(ctx context.Context, instructions string, limit int) (*ReviewResult, error) {
	comments, err := s.repo.ListUnmoderated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list unmoderated comments: %w", err)
	}

	if len(comments) == 0 {
		return &ReviewResult{Message: "Nenhum comentário pendente de moderação"}, nil
	}

	if s.gen == nil {
		return &ReviewResult{Message: "Moderação automática desativada (sem chave da IA)"}, nil
	}

	res := &ReviewResult{Processed: len(comments)}

	for _, c := range comments {
		resp, err := s.gen.Generate(ctx,
			fmt.Sprintf("%s\n\nComentário a analisar: %q\n\nRetorne o JSON:", instructions, c.Message),
			ai.Options{Temperature: ai.Temperature(0.3), MaxOutputTokens: 200},
		)
		if err != nil {
			slog.Error("failed to moderate comment", "comment_id", c.ID, "error", err)
			continue
		}

		res.Tokens += resp.TotalTokens

		approved, reason := parseVerdict(resp.Text)

		var rejection *string
		if !approved {
			rejection = &reason
		}

		if err := s.repo.MarkModerated(ctx, c.ID, approved, rejection); err != nil {
			return nil, fmt.Errorf("mark comment %s: %w", c.ID, err)
		}

		metrics.ObserveModeration(ModeratorAI, approved)

		if approved {
			res.Approved++
		} else {
			res.Rejected++
		}
	}

	return res, nil
}

// parseVerdict reads {"decisao": "aprovar"|"rejeitar", "motivo": "..."}.
// Anything unreadable approves the comment.
func parseVerdict(text string) (bool, string) {
	var v struct {
		Decision string `json:"decisao"`
		Reason   string `json:"motivo"`
	}

	obj := ai.ExtractObject(text)
	if obj == "" || json.Unmarshal([]byte(obj), &v) != nil {
		return true, ""
	}

	if v.Decision != "rejeitar" {
		return true, ""
	}

	if v.Reason == "" {
		v.Reason = defaultRejection
	}

	return false, v.Reason
}

func displayName(a Author) string {
	if a.Name != "" {
		return a.Name
	}

	if local, _, ok := strings.Cut(a.Email, "@"); ok && local != "" {
		return local
	}

	return anonymous
}
