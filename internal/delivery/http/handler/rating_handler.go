package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/pkg/errors"
	"github.com/habitaclick/search-service/internal/pkg/utils"
	"github.com/habitaclick/search-service/internal/usecase"
)

// RatingHandler - обработчик оценок районов
type RatingHandler struct {
	ratingUC *usecase.RatingUseCase
	logger   *zap.Logger
}

// NewRatingHandler - создание нового RatingHandler
func NewRatingHandler(ratingUC *usecase.RatingUseCase, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{
		ratingUC: ratingUC,
		logger:   logger,
	}
}

// GetRating godoc
// @Summary Агрегированная оценка баррио
// @Description Возвращает среднюю оценку и число отзывов по баррио; результат кешируется
// @Tags Ratings
// @Produce json
// @Param city path string true "Город"
// @Param name path string true "Баррио"
// @Success 200 {object} utils.SuccessResponse{data=dto.RatingResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/neighborhoods/{city}/{name}/rating [get]
func (h *RatingHandler) GetRating(c *fiber.Ctx) error {
	city, err := urlParam(c, "city")
	if err != nil {
		return utils.SendError(c, err)
	}
	name, err := urlParam(c, "name")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.ratingUC.GetNeighborhoodRating(c.Context(), city, name)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// urlParam достаёт обязательный path-параметр с URL-декодированием
func urlParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	if raw == "" {
		return "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"param": name})
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"param": name})
	}
	return decoded, nil
}
