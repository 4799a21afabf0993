package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/domain"
	"github.com/habitaclick/search-service/internal/domain/repository"
)

type propertyRepository struct {
	db *DB
}

// NewPropertyRepository - создание репозитория объявлений
func NewPropertyRepository(db *DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

// propertyRow - строка выборки; features сканируется как text[]
type propertyRow struct {
	ID            uuid.UUID      `db:"id"`
	Title         string         `db:"title"`
	OperationType string         `db:"operation_type"`
	Price         int            `db:"price"`
	PreviousPrice *int           `db:"previous_price"`
	Area          *float64       `db:"area"`
	Bedrooms      int            `db:"bedrooms"`
	Bathrooms     int            `db:"bathrooms"`
	Features      pq.StringArray `db:"features"`
	City          string         `db:"city"`
	District      string         `db:"district"`
	Neighborhood  string         `db:"neighborhood"`
	Address       string         `db:"address"`
	Lat           *float64       `db:"lat"`
	Lng           *float64       `db:"lng"`
	AgencyID      *uuid.UUID     `db:"agency_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (r propertyRow) toDomain() domain.Property {
	return domain.Property{
		ID:            r.ID,
		Title:         r.Title,
		OperationType: r.OperationType,
		Price:         r.Price,
		PreviousPrice: r.PreviousPrice,
		Area:          r.Area,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		Features:      append([]string(nil), r.Features...),
		City:          r.City,
		District:      r.District,
		Neighborhood:  r.Neighborhood,
		Address:       r.Address,
		Lat:           r.Lat,
		Lng:           r.Lng,
		AgencyID:      r.AgencyID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FetchProperties возвращает объявления по локациям и фильтру. WHERE и
// ORDER BY строятся из того же PropertyFilter, что и скомпилированный
// предикат, поэтому in-memory пересортировка даёт тот же порядок.
func (r *propertyRepository) FetchProperties(
	ctx context.Context,
	locations []domain.LocationFilter,
	filter domain.PropertyFilter,
	limit, offset int,
) ([]domain.Property, error) {
	b := &sqlBuilder{}
	locationClause(b, locations)
	filterClause(b, filter)

	query := `
		SELECT id, title, operation_type, price, previous_price, area,
		       bedrooms, bathrooms, features, city, district, neighborhood,
		       address, lat, lng, agency_id, created_at, updated_at
		FROM properties` + b.where() + orderClause(filter.EffectiveSort())

	b.args = append(b.args, limit, offset)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(b.args)-1, len(b.args))

	var rows []propertyRow
	if err := r.db.SelectContext(ctx, &rows, query, b.args...); err != nil {
		r.db.logger.Error("FetchProperties query failed", zap.Error(err))
		return nil, fmt.Errorf("fetch properties: %w", err)
	}

	properties := make([]domain.Property, 0, len(rows))
	for _, row := range rows {
		properties = append(properties, row.toDomain())
	}
	return properties, nil
}
