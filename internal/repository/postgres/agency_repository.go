package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/domain"
	"github.com/habitaclick/search-service/internal/domain/repository"
)

type agencyRepository struct {
	db *DB
}

// NewAgencyRepository - создание репозитория агентств
func NewAgencyRepository(db *DB) repository.AgencyRepository {
	return &agencyRepository{db: db}
}

// FetchAgencies возвращает агентства, работающие в локациях.
// Сортировка домена по умолчанию: рейтинг, затем число объявлений.
func (r *agencyRepository) FetchAgencies(
	ctx context.Context,
	locations []domain.LocationFilter,
	limit, offset int,
) ([]domain.Agency, error) {
	b := &sqlBuilder{}
	locationClause(b, locations)

	query := `
		SELECT id, name, city, district, neighborhood, rating,
		       listings_count, created_at
		FROM agencies` + b.where() + ` ORDER BY rating DESC, listings_count DESC`

	b.args = append(b.args, limit, offset)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(b.args)-1, len(b.args))

	var agencies []domain.Agency
	if err := r.db.SelectContext(ctx, &agencies, query, b.args...); err != nil {
		r.db.logger.Error("FetchAgencies query failed", zap.Error(err))
		return nil, fmt.Errorf("fetch agencies: %w", err)
	}
	return agencies, nil
}
