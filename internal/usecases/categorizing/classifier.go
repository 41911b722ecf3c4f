package categorizing

import (
	"sort"
	"strings"

	"github.com/zaytech/message-dashboard-api/internal/domain"
)

// Classify atribui uma mensagem a exatamente uma categoria.
//
// As categorias são percorridas em ordem de precedência (prioridade
// crescente; empates resolvidos por data de criação e depois por ID, para
// que a ordem de armazenamento do registro nunca influencie o resultado).
// A primeira categoria com alguma palavra-chave presente no corpo
// normalizado vence. Sem nenhum match, vence a categoria catch-all (sem
// palavras-chave) de menor precedência.
//
// O match é por substring, sem fronteira de palavra: "pix" casa dentro de
// "pixel". Esse é o comportamento do roteamento original e é mantido
// deliberadamente.
//
// A função é pura e determinística: entradas idênticas sempre produzem a
// mesma categoria.
func Classify(body string, categories []*domain.Category) (*domain.Category, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	ordered := sortByPrecedence(categories)
	normalized := strings.ToLower(strings.TrimSpace(body))

	if normalized != "" {
		for _, category := range ordered {
			if matchesAnyKeyword(normalized, category.Keywords) {
				return category, nil
			}
		}
	}

	return fallbackOf(ordered)
}

// sortByPrecedence devolve uma cópia ordenada por (prioridade asc,
// created_at asc, id asc). A cópia preserva a pureza de Classify: a fatia
// do chamador nunca é reordenada.
func sortByPrecedence(categories []*domain.Category) []*domain.Category {
	ordered := make([]*domain.Category, len(categories))
	copy(ordered, categories)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	return ordered
}

func matchesAnyKeyword(normalizedBody string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(normalizedBody, keyword) {
			return true
		}
	}
	return false
}

// fallbackOf escolhe, entre as categorias catch-all, a de maior valor de
// prioridade (menor precedência). A fatia recebida já está ordenada por
// precedência, então basta varrer de trás para frente.
func fallbackOf(ordered []*domain.Category) (*domain.Category, error) {
	for i := len(ordered) - 1; i >= 0; i-- {
		if ordered[i].IsFallback() {
			return ordered[i], nil
		}
	}
	return nil, ErrNoFallback
}
