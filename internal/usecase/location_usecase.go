package usecase

import (
	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/pkg/errors"
	"github.com/habitaclick/search-service/internal/taxonomy"
	"github.com/habitaclick/search-service/internal/usecase/dto"
)

// LocationUseCase - справочные операции над таксономией локаций
type LocationUseCase struct {
	tax    *taxonomy.Taxonomy
	logger *zap.Logger
}

// NewLocationUseCase - создание нового LocationUseCase
func NewLocationUseCase(tax *taxonomy.Taxonomy, logger *zap.Logger) *LocationUseCase {
	return &LocationUseCase{
		tax:    tax,
		logger: logger,
	}
}

// Cities - все города каталога
func (uc *LocationUseCase) Cities() *dto.CitiesResponse {
	return &dto.CitiesResponse{Cities: uc.tax.CitiesAvailable()}
}

// Districts - районы города
func (uc *LocationUseCase) Districts(city string) (*dto.DistrictsResponse, error) {
	canonical, ok := uc.tax.CanonicalCity(city)
	if !ok {
		return nil, errors.ErrCityNotFound.WithDetails(map[string]interface{}{"city": city})
	}
	return &dto.DistrictsResponse{
		City:      canonical,
		Districts: uc.tax.DistrictsOf(canonical),
	}, nil
}

// Neighborhoods - баррио города или одного его района
func (uc *LocationUseCase) Neighborhoods(city, district string) (*dto.NeighborhoodsResponse, error) {
	canonical, ok := uc.tax.CanonicalCity(city)
	if !ok {
		return nil, errors.ErrCityNotFound.WithDetails(map[string]interface{}{"city": city})
	}

	resp := &dto.NeighborhoodsResponse{City: canonical}
	if district == "" {
		resp.Neighborhoods = uc.tax.AllNeighborhoodsOf(canonical)
		return resp, nil
	}

	if canonDistrict, ok := uc.tax.CanonicalDistrict(district, canonical); ok {
		resp.District = canonDistrict
	} else {
		resp.District = district
	}
	// Неизвестный район - пустой список, не ошибка: вход идёт от пользователя
	resp.Neighborhoods = uc.tax.NeighborhoodsOf(district, canonical)
	return resp, nil
}

// Resolve декодирует произвольный токен локации. Декодер тотален,
// поэтому операция не возвращает ошибок
func (uc *LocationUseCase) Resolve(token string) *dto.ResolveResponse {
	sel := uc.tax.Decode(taxonomy.Token(token))
	return &dto.ResolveResponse{
		Token:            string(sel.Token(uc.tax)),
		City:             sel.City,
		District:         sel.District,
		Neighborhood:     sel.Neighborhood,
		AllNeighborhoods: sel.AllNeighborhoods,
	}
}
