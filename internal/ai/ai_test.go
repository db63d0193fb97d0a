package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/bolao/internal/ai"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n[1,2]\n```\n", want: "[1,2]"},
		{name: "no fence", input: "  {\"a\":1}  ", want: `{"a":1}`},
		{name: "single line", input: "```{}```", want: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ai.StripFences(tt.input))
		})
	}
}

func TestExtractObject(t *testing.T) {
	assert.Equal(t, `{"decisao":"rejeitar"}`, ai.ExtractObject("Claro! Aqui está:\n{\"decisao\":\"rejeitar\"}\nObrigado."))
	assert.Equal(t, `{"a":{"b":1}}`, ai.ExtractObject("```json\n{\"a\":{\"b\":1}}\n```"))
	assert.Empty(t, ai.ExtractObject("sem json"))
}
