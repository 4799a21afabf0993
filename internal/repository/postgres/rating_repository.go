package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/domain"
	"github.com/habitaclick/search-service/internal/domain/repository"
)

type ratingRepository struct {
	db *DB
}

// NewRatingRepository - создание репозитория агрегатов оценок районов
func NewRatingRepository(db *DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// GetNeighborhoodRating считает агрегат по отзывам баррио;
// (nil, nil) если отзывов нет
func (r *ratingRepository) GetNeighborhoodRating(
	ctx context.Context,
	city, neighborhood string,
) (*domain.NeighborhoodRating, error) {
	const query = `
		SELECT city, neighborhood,
		       AVG(score)::float AS avg_score,
		       COUNT(*) AS review_count,
		       MAX(created_at) AS updated_at
		FROM neighborhood_reviews
		WHERE city = $1 AND neighborhood = $2
		GROUP BY city, neighborhood`

	var rating domain.NeighborhoodRating
	err := r.db.GetContext(ctx, &rating, query, city, neighborhood)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.db.logger.Error("GetNeighborhoodRating query failed", zap.Error(err))
		return nil, fmt.Errorf("get neighborhood rating: %w", err)
	}
	return &rating, nil
}
