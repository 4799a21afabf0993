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

// GeocodeHandler - обработчик геокодирования адресов
type GeocodeHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

// NewGeocodeHandler - создание нового GeocodeHandler
func NewGeocodeHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Geocode godoc
// @Summary Геокодирование адреса
// @Description Возвращает координаты адреса; повторные запросы обслуживаются из кеша
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param request body dto.GeocodeRequest true "Адрес"
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/geocode [post]
func (h *GeocodeHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": "invalid request body"}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()}))
	}

	result, err := h.geocodeUC.Geocode(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Marker godoc
// @Summary Позиция маркера карты для точки
// @Description Возвращает общий маркер geohash-ячейки (~150 м), если в ней уже есть геокодированный адрес; иначе исходные координаты
// @Tags Geocoding
// @Produce json
// @Param lat query number true "Широта"
// @Param lng query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=dto.MarkerResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/geocode/marker [get]
func (h *GeocodeHandler) Marker(c *fiber.Ctx) error {
	var q dto.MarkerQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()}))
	}

	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()}))
	}

	return utils.SendSuccess(c, h.geocodeUC.Marker(c.Context(), q), nil)
}
