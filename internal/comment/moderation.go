package comment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MrJamesThe3rd/bolao/internal/ai"
)

const (
	ModeratorAI       = "ia"
	ModeratorWordList = "lista"

	reasonLanguage = "Mensagem contém linguagem inapropriada"
)

var blockedWords = []string{
	"idiota", "burro", "imbecil", "estupido", "retardado",
	"merda", "porra", "caralho", "foda", "fodase",
	"viado", "bicha", "sapatao", "sapata",
	"preto", "negro", "macaco",
	"vagabundo", "lixo", "nojento",
}

const moderationPrompt = `Você é um moderador de conteúdo para uma plataforma corporativa de bolões.
Analise a seguinte mensagem e determine se ela é apropriada para publicação.

REGRAS:
- Não permitir palavrões ou linguagem vulgar
- Não permitir ofensas pessoais ou bullying
- Não permitir discriminação (raça, gênero, religião, etc)
- Não permitir assédio ou ameaças
- Não permitir spam ou conteúdo irrelevante
- Permitir críticas construtivas e sugestões

MENSAGEM: %q

Responda APENAS com um JSON válido no formato:
{"aprovado": true, "motivo": "motivo se rejeitado ou vazio se aprovado"}
`

type Decision struct {
	Approved  bool
	Reason    string
	Moderator string
}

// Moderator decides whether a message may be published. Without a generator it
// only applies the blocked word list.
type Moderator struct {
	gen ai.Generator
}

func NewModerator(gen ai.Generator) *Moderator {
	return &Moderator{gen: gen}
}

func (m *Moderator) Moderate(ctx context.Context, message string) Decision {
	if m.gen == nil {
		return checkWordList(message)
	}

	d, err := m.moderateAI(ctx, message)
	if err != nil {
		slog.Warn("AI moderation failed, using word list", "error", err)
		return checkWordList(message)
	}

	return d
}

func (m *Moderator) moderateAI(ctx context.Context, message string) (Decision, error) {
	resp, err := m.gen.Generate(ctx, fmt.Sprintf(moderationPrompt, message), ai.Options{
		Temperature: ai.Temperature(0.3),
		JSON:        true,
	})
	if err != nil {
		return Decision{}, err
	}

	var out struct {
		Approved *bool  `json:"aprovado"`
		Reason   string `json:"motivo"`
	}

	if err := json.Unmarshal([]byte(ai.StripFences(resp.Text)), &out); err != nil {
		return Decision{}, fmt.Errorf("decode moderation: %w", err)
	}

	if out.Approved == nil {
		return Decision{}, errors.New("decode moderation: missing aprovado")
	}

	return Decision{Approved: *out.Approved, Reason: out.Reason, Moderator: ModeratorAI}, nil
}

func checkWordList(message string) Decision {
	lower := strings.ToLower(message)

	for _, w := range blockedWords {
		if strings.Contains(lower, w) {
			return Decision{Approved: false, Reason: reasonLanguage, Moderator: ModeratorWordList}
		}
	}

	return Decision{Approved: true, Moderator: ModeratorWordList}
}
