package usecase

import (
	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/taxonomy"
	"github.com/habitaclick/search-service/internal/usecase/dto"
)

// AutocompleteUseCase - подсказки локаций по подстроке запроса
type AutocompleteUseCase struct {
	tax    *taxonomy.Taxonomy
	logger *zap.Logger
}

// NewAutocompleteUseCase - создание нового AutocompleteUseCase
func NewAutocompleteUseCase(tax *taxonomy.Taxonomy, logger *zap.Logger) *AutocompleteUseCase {
	return &AutocompleteUseCase{
		tax:    tax,
		logger: logger,
	}
}

// Suggest возвращает подсказки для города. Короткие запросы дают пустой
// список, а не ошибку: ворота по длине - часть контракта подсказок.
func (uc *AutocompleteUseCase) Suggest(req dto.AutocompleteQuery) *dto.AutocompleteResponse {
	suggestions := uc.tax.Suggest(req.Query, req.City)

	uc.logger.Debug("Autocomplete served",
		zap.String("city", req.City),
		zap.Int("count", len(suggestions)))

	return &dto.AutocompleteResponse{
		Suggestions: suggestions,
	}
}
