package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/domain"
	"github.com/habitaclick/search-service/internal/domain/repository"
	"github.com/habitaclick/search-service/internal/pkg/errors"
	"github.com/habitaclick/search-service/internal/usecase/dto"
)

// GeocodeUseCase - геокодирование адресов для маркеров карты.
// Результаты кешируются во внешнем кеше: внешний геокодер медленный
// и лимитированный, а адреса объявлений почти не меняются.
type GeocodeUseCase struct {
	geocodeRepo repository.GeocodeRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewGeocodeUseCase - создание нового GeocodeUseCase
func NewGeocodeUseCase(
	geocodeRepo repository.GeocodeRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocodeRepo: geocodeRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Geocode возвращает координаты адреса
func (uc *GeocodeUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*dto.GeocodeResponse, error) {
	address := normalizeAddress(req.Address)

	cached, err := uc.cacheRepo.GetGeocode(ctx, address)
	if err != nil {
		uc.logger.Warn("Geocode cache read failed", zap.Error(err))
	}
	if cached != nil {
		return &dto.GeocodeResponse{Address: address, Point: *cached}, nil
	}

	point, err := uc.geocodeRepo.Geocode(ctx, address)
	if err != nil {
		uc.logger.Error("Geocoder request failed",
			zap.String("address", address),
			zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	if point == nil {
		return nil, errors.ErrGeocodeNotFound.WithDetails(map[string]interface{}{
			"address": address,
		})
	}

	if err := uc.cacheRepo.SetGeocode(ctx, address, point, uc.cacheTTL); err != nil {
		uc.logger.Warn("Geocode cache write failed", zap.Error(err))
	}

	return &dto.GeocodeResponse{Address: address, Point: *point}, nil
}

// Marker возвращает позицию маркера карты для точки. Адреса одной
// geohash-ячейки (~150 м) делят один маркер: без привязки карта
// дробится на почти совпадающие точки
func (uc *GeocodeUseCase) Marker(ctx context.Context, q dto.MarkerQuery) *dto.MarkerResponse {
	point := domain.LatLng{Lat: q.Lat, Lng: q.Lng}

	marker, err := uc.cacheRepo.GetGeocodeCell(ctx, point)
	if err != nil {
		uc.logger.Warn("Marker cache read failed", zap.Error(err))
	}
	if marker != nil {
		return &dto.MarkerResponse{Point: *marker, Snapped: true}
	}

	return &dto.MarkerResponse{Point: point, Snapped: false}
}

// normalizeAddress - канонический ключ кеша для адреса
func normalizeAddress(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), " ")
}
