package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/pkg/errors"
	"github.com/habitaclick/search-service/internal/pkg/utils"
	"github.com/habitaclick/search-service/internal/pkg/validator"
	"github.com/habitaclick/search-service/internal/taxonomy"
	"github.com/habitaclick/search-service/internal/usecase"
	"github.com/habitaclick/search-service/internal/usecase/dto"
)

// SearchHandler - обработчик для поисковых запросов
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	tax      *taxonomy.Taxonomy
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, tax *taxonomy.Taxonomy, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		tax:      tax,
		logger:   logger,
	}
}

// Search godoc
// @Summary Поиск по объявлениям, агентствам и агентам
// @Description Выполняет поиск в активном домене по выбранным локациям и фильтрам. Неоднозначный параметр neighborhoods нормализуется в список локаций, результат дополняется состояниями всех доменов и решением маршрутизации.
// @Tags Search
// @Accept json
// @Produce json
// @Param domain query string false "Домен поиска (properties, agencies, agents)" default(properties)
// @Param neighborhoods query string false "Список локаций через запятую, например 'Goya, Salamanca, Madrid'"
// @Param operationType query string false "Тип операции (Venta, Alquiler)" default(Venta)
// @Param priceMin query int false "Минимальная цена; -1 означает 'до минимального порога'"
// @Param priceMax query int false "Максимальная цена; -1 означает 'без ограничения'"
// @Param bedrooms query string false "Выбранные пороги спален через запятую; 0 - студия"
// @Param bathrooms query string false "Выбранные пороги санузлов через запятую"
// @Param features query string false "Характеристики через запятую (совпадение по всем)"
// @Param sortBy query string false "Сортировка (newest, price-asc, price-per-area, price-drop)"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(40)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var q dto.SearchQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()}))
	}

	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()}))
	}

	req, err := q.Normalize(h.tax)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	total := 0
	if result.Result != nil {
		total = result.Result.Len()
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
	})
}

// States godoc
// @Summary Состояния доменов поиска
// @Description Возвращает текущее состояние каждого домена (idle, loading, loaded, error)
// @Tags Search
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/search/states [get]
func (h *SearchHandler) States(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.searchUC.States(), nil)
}
