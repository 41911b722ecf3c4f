package categorizing

import (
	"strings"

	"github.com/zaytech/message-dashboard-api/internal/domain"
)

// Evaluate deriva a triagem de uma mensagem recém-classificada.
//
// Pending é sempre verdadeiro no momento da classificação (nenhuma
// resposta existe ainda); a transição para falso acontece quando o evento
// de resposta é registrado.
//
// Urgent é verdadeiro quando a prioridade da categoria está dentro do
// limite de urgência da loja OU quando o corpo contém alguma das
// palavras-chave de urgência da loja, independente de categoria.
//
// Função pura: nada além da categoria e das configurações da loja é lido.
func Evaluate(message *domain.Message, category *domain.Category, settings *domain.StoreSettings) domain.TriageResult {
	threshold := domain.DefaultUrgencyThreshold
	var overrides []string

	if settings != nil {
		overrides = settings.UrgencyKeywords
		if settings.UrgencyThreshold > 0 {
			threshold = settings.UrgencyThreshold
		}
	}

	urgent := category != nil && category.Priority <= threshold
	if !urgent {
		normalized := strings.ToLower(strings.TrimSpace(message.Body))
		urgent = matchesAnyKeyword(normalized, overrides)
	}

	return domain.TriageResult{
		Urgent:  urgent,
		Pending: true,
	}
}
