package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/pkg/errors"
	"github.com/habitaclick/search-service/internal/pkg/utils"
	"github.com/habitaclick/search-service/internal/pkg/validator"
	"github.com/habitaclick/search-service/internal/usecase"
	"github.com/habitaclick/search-service/internal/usecase/dto"
)

// AutocompleteHandler - обработчик подсказок локаций
type AutocompleteHandler struct {
	autocompleteUC *usecase.AutocompleteUseCase
	logger         *zap.Logger
}

// NewAutocompleteHandler - создание нового AutocompleteHandler
func NewAutocompleteHandler(autocompleteUC *usecase.AutocompleteUseCase, logger *zap.Logger) *AutocompleteHandler {
	return &AutocompleteHandler{
		autocompleteUC: autocompleteUC,
		logger:         logger,
	}
}

// Suggest godoc
// @Summary Подсказки локаций
// @Description Возвращает до 10 подсказок для строки поиска: сентинел 'весь город', районы, затем барриос. Запросы короче 3 символов дают пустой список.
// @Tags Locations
// @Produce json
// @Param q query string false "Строка запроса (минимум 3 символа для непустого ответа)"
// @Param city query string true "Город, в котором ищем"
// @Success 200 {object} utils.SuccessResponse{data=dto.AutocompleteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/autocomplete [get]
func (h *AutocompleteHandler) Suggest(c *fiber.Ctx) error {
	var q dto.AutocompleteQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()}))
	}

	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()}))
	}

	result := h.autocompleteUC.Suggest(q)

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Suggestions),
	})
}
