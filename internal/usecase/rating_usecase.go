package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/domain/repository"
	"github.com/habitaclick/search-service/internal/pkg/errors"
	"github.com/habitaclick/search-service/internal/usecase/dto"
)

// RatingUseCase - агрегаты оценок районов. Меняются редко, поэтому
// кешируются во внешнем кеше с длинным TTL.
type RatingUseCase struct {
	ratingRepo repository.RatingRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewRatingUseCase - создание нового RatingUseCase
func NewRatingUseCase(
	ratingRepo repository.RatingRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo: ratingRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// GetNeighborhoodRating возвращает агрегат оценок баррио
func (uc *RatingUseCase) GetNeighborhoodRating(ctx context.Context, city, neighborhood string) (*dto.RatingResponse, error) {
	cached, err := uc.cacheRepo.GetRating(ctx, city, neighborhood)
	if err != nil {
		// Отказ кеша не блокирует запрос - идём в базу
		uc.logger.Warn("Rating cache read failed", zap.Error(err))
	}
	if cached != nil {
		return &dto.RatingResponse{Rating: cached}, nil
	}

	rating, err := uc.ratingRepo.GetNeighborhoodRating(ctx, city, neighborhood)
	if err != nil {
		uc.logger.Error("Failed to load neighborhood rating",
			zap.String("city", city),
			zap.String("neighborhood", neighborhood),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if rating == nil {
		return nil, errors.ErrRatingNotFound.WithDetails(map[string]interface{}{
			"city":         city,
			"neighborhood": neighborhood,
		})
	}

	if err := uc.cacheRepo.SetRating(ctx, rating, uc.cacheTTL); err != nil {
		uc.logger.Warn("Rating cache write failed", zap.Error(err))
	}

	return &dto.RatingResponse{Rating: rating}, nil
}
