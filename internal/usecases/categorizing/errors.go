package categorizing

import (
	"errors"
	"fmt"
)

// Erros de configuração e validação do registro de categorias
var (
	// Erros de validação (configuração de categoria)
	ErrEmptyName       = errors.New("nome da categoria é obrigatório")
	ErrInvalidPriority = errors.New("prioridade deve ser um inteiro positivo")
	ErrInvalidColor    = errors.New("cor deve estar no formato #rrggbb")

	// Erros de configuração (fatais para a classificação da loja)
	ErrNoCategories = errors.New("loja não possui categorias configuradas")
	ErrNoFallback   = errors.New("loja não possui categoria catch-all configurada")

	// Erros de remoção
	ErrCategoryNotFound = errors.New("categoria não encontrada")
	ErrCategoryInUse    = errors.New("categoria possui mensagens classificadas e não pode ser removida sem reatribuição")
)

// ValidationError agrega as violações encontradas na configuração de uma
// categoria. É retornado no momento da configuração, nunca durante a
// classificação de mensagens.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError indica se o erro impede a classificação de qualquer
// mensagem da loja e, portanto, deve resultar em retry pelo gateway
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrNoCategories) || errors.Is(err, ErrNoFallback)
}
