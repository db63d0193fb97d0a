package reconcile

import (
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/bolao/internal/money"
)

const promptTemplate = `Você é um assistente especializado em análise de extratos bancários.
Analise o seguinte extrato bancário em formato CSV e identifique APENAS os depósitos PIX de entrada (créditos).

INFORMAÇÕES DO BOLÃO:
- Valor da cota: %[1]s
- Cotas válidas são MÚLTIPLOS EXATOS deste valor

PARTICIPANTES CADASTRADOS:
%[2]s

EXTRATO CSV:
%[3]s

INSTRUÇÕES:
1. Identifique todas as transações que parecem ser depósitos PIX de entrada
2. Para cada depósito, extraia: data, valor, nome do pagador
3. Calcule quantas cotas o valor corresponde (valor ÷ %[4]s)
4. Se o valor NÃO for múltiplo exato da cota, marque como "invalido"
5. Tente associar o nome do pagador a um dos participantes cadastrados
6. Use em "user_email_sugerido" somente e-mails da lista de participantes
7. Se não encontrar o participante, marque como "usuario_nao_encontrado"
8. Se encontrar e o valor for válido, marque como "pendente" (aguardando aprovação)

Responda APENAS com um JSON válido no seguinte formato, sem campos adicionais:
{
  "transacoes": [
    {
      "data_transacao": "2024-01-15",
      "valor": 30.00,
      "descricao_original": "PIX recebido de JOAO SILVA",
      "nome_pagador": "João Silva",
      "documento_pagador": null,
      "tipo_transacao": "pix_entrada",
      "cotas_identificadas": 3,
      "status": "pendente",
      "confianca_ia": 0.95,
      "observacao_ia": "3 cotas identificadas, usuário encontrado",
      "motivo_rejeicao": null,
      "user_email_sugerido": "joao@empresa.com"
    }
  ],
  "resumo": {
    "total_depositos": 1,
    "total_valor": 30.00,
    "cotas_identificadas": 3,
    "depositos_validos": 1,
    "depositos_invalidos": 0,
    "usuarios_nao_encontrados": 0,
    "ja_processados": 0
  }
}

Status possíveis: "pendente", "invalido", "usuario_nao_encontrado"
Tipos possíveis: "pix_entrada", "outro"
`

func buildPrompt(in Input) string {
	roster := "Nenhum participante cadastrado ainda"

	if len(in.Participants) > 0 {
		lines := make([]string, len(in.Participants))

		for i, p := range in.Participants {
			name := p.Name
			if name == "" {
				name = "Sem nome"
			}

			lines[i] = fmt.Sprintf("%s (%s)", name, p.Email)
		}

		roster = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(promptTemplate,
		money.FormatBRL(in.QuotaValue), roster, in.CSV, money.String(in.QuotaValue))
}
