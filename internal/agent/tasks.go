package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/bolao/internal/ai"
	"github.com/MrJamesThe3rd/bolao/internal/money"
	"github.com/MrJamesThe3rd/bolao/internal/pool"
)

const (
	modeFallback = "fallback"
	modeModel    = "gemini"

	homepagePools       = 5
	moderationBatch     = 10
	statsWindow         = 100
	homepageMaxTokens   = 500
	statsMaxTokens      = 500
	homepageTemperature = 0.8
	statsTemperature    = 0.5
)

func (s *Service) homepage(ctx context.Context, prompt string) (*taskResult, error) {
	pools, err := s.pools.ListOpen(ctx, homepagePools)
	if err != nil {
		return nil, fmt.Errorf("list open pools: %w", err)
	}

	if s.gen == nil {
		return &taskResult{fields: map[string]any{
			"titulo":    "Participe do maior bolão da empresa!",
			"subtitulo": "Junte-se aos colegas e concorra a prêmios milionários",
			"destaque":  fmt.Sprintf("%d bolões ativos", len(pools)),
			"cta_texto": "Entrar Agora",
			"modo":      modeFallback,
		}}, nil
	}

	resp, err := s.gen.Generate(ctx,
		fmt.Sprintf("%s\n\nContexto atual:\n%s\n\nRetorne o JSON:", prompt, poolsContext(pools)),
		ai.Options{Temperature: ai.Temperature(homepageTemperature), MaxOutputTokens: homepageMaxTokens},
	)
	if err != nil {
		return nil, fmt.Errorf("generate homepage copy: %w", err)
	}

	fields := decodeFields(resp.Text)
	fields["modo"] = modeModel

	return &taskResult{fields: fields, tokens: resp.TotalTokens}, nil
}

func poolsContext(pools []*pool.Pool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bolões ativos: %d\n", len(pools))

	if len(pools) == 0 {
		b.WriteString("Nenhum bolão ativo\n")
		return b.String()
	}

	for _, p := range pools {
		total := "∞"
		if p.TotalQuotas != nil {
			total = fmt.Sprint(*p.TotalQuotas)
		}

		deadline := "sem prazo"
		if p.Deadline != nil {
			deadline = p.Deadline.Format("02/01/2006")
		}

		fmt.Fprintf(&b, "- %s: %d/%s cotas vendidas, %s/cota, prazo: %s\n",
			p.Name, p.SoldQuotas, total, money.FormatBRL(p.QuotaValue), deadline)
	}

	return b.String()
}

func (s *Service) moderation(ctx context.Context, prompt string) (*taskResult, error) {
	res, err := s.comments.ReviewPending(ctx, prompt, moderationBatch)
	if err != nil {
		return nil, fmt.Errorf("review comments: %w", err)
	}

	fields := map[string]any{
		"processados":   res.Processed,
		"aprovados":     res.Approved,
		"rejeitados":    res.Rejected,
		"tokens_usados": res.Tokens,
	}

	if res.Message != "" {
		fields["mensagem"] = res.Message
	}

	return &taskResult{fields: fields, tokens: res.Tokens}, nil
}

func (s *Service) csvStats(ctx context.Context, prompt string) (*taskResult, error) {
	st, err := s.stats.Stats(ctx, statsWindow)
	if err != nil {
		return nil, fmt.Errorf("load statement stats: %w", err)
	}

	if st.Total == 0 {
		return &taskResult{fields: map[string]any{
			"mensagem":         "Nenhuma transação importada para analisar",
			"total_transacoes": 0,
		}}, nil
	}

	fields := map[string]any{
		"total_transacoes": st.Total,
		"valor_total":      money.ToFloat(st.Amount),
		"aprovadas":        st.Approved,
		"pendentes":        st.Pending,
		"rejeitadas":       st.Invalid,
	}

	if s.gen == nil {
		fields["modo"] = modeFallback
		fields["alertas"] = []string{}

		return &taskResult{fields: fields}, nil
	}

	data := fmt.Sprintf("Total de transações: %d\nValor total: %s\nAprovadas: %d\nPendentes: %d\nRejeitadas: %d\n",
		st.Total, money.FormatBRL(st.Amount), st.Approved, st.Pending, st.Invalid)

	resp, err := s.gen.Generate(ctx,
		fmt.Sprintf("%s\n\nDados atuais:\n%s\nRetorne o JSON com análise:", prompt, data),
		ai.Options{Temperature: ai.Temperature(statsTemperature), MaxOutputTokens: statsMaxTokens},
	)
	if err != nil {
		return nil, fmt.Errorf("generate stats analysis: %w", err)
	}

	for k, v := range decodeFields(resp.Text) {
		if _, taken := fields[k]; !taken {
			fields[k] = v
		}
	}

	fields["modo"] = modeModel

	return &taskResult{fields: fields, tokens: resp.TotalTokens}, nil
}

// decodeFields reads the first JSON object in the model text. Unreadable
// output yields an empty map.
func decodeFields(text string) map[string]any {
	fields := map[string]any{}

	obj := ai.ExtractObject(text)
	if obj == "" {
		return fields
	}

	if err := json.Unmarshal([]byte(obj), &fields); err != nil {
		return map[string]any{}
	}

	return fields
}
