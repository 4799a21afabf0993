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

// LocationHandler - обработчик справочника локаций
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// Cities godoc
// @Summary Список городов
// @Tags Locations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CitiesResponse}
// @Router /api/v1/locations/cities [get]
func (h *LocationHandler) Cities(c *fiber.Ctx) error {
	result := h.locationUC.Cities()
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Cities)})
}

// Districts godoc
// @Summary Районы города
// @Tags Locations
// @Produce json
// @Param city query string true "Город"
// @Success 200 {object} utils.SuccessResponse{data=dto.DistrictsResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/districts [get]
func (h *LocationHandler) Districts(c *fiber.Ctx) error {
	city := c.Query("city")
	if city == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"param": "city"}))
	}

	result, err := h.locationUC.Districts(city)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Districts)})
}

// Neighborhoods godoc
// @Summary Барриос города или района
// @Description Без параметра district возвращает все барриос города в порядке каталога
// @Tags Locations
// @Produce json
// @Param city query string true "Город"
// @Param district query string false "Район"
// @Success 200 {object} utils.SuccessResponse{data=dto.NeighborhoodsResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/neighborhoods [get]
func (h *LocationHandler) Neighborhoods(c *fiber.Ctx) error {
	city := c.Query("city")
	if city == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"param": "city"}))
	}

	result, err := h.locationUC.Neighborhoods(city, c.Query("district"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Neighborhoods)})
}

// Resolve godoc
// @Summary Разбор токена локации
// @Description Разбирает строку токена в структурный выбор локации. Разбор тотален: произвольный текст трактуется как баррио города по умолчанию.
// @Tags Locations
// @Produce json
// @Param token query string true "Токен локации, например 'Goya, Salamanca, Madrid'"
// @Success 200 {object} utils.SuccessResponse{data=dto.ResolveResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations/resolve [get]
func (h *LocationHandler) Resolve(c *fiber.Ctx) error {
	var q dto.ResolveQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()}))
	}

	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()}))
	}

	return utils.SendSuccess(c, h.locationUC.Resolve(q.Token), nil)
}
