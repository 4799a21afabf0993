package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/habitaclick/search-service/internal/domain"
)

// sqlBuilder накапливает условия WHERE с позиционными аргументами
type sqlBuilder struct {
	conds []string
	args  []interface{}
}

func (b *sqlBuilder) add(cond string, args ...interface{}) {
	placeholders := make([]interface{}, len(args))
	for i := range args {
		b.args = append(b.args, args[i])
		placeholders[i] = len(b.args)
	}
	b.conds = append(b.conds, fmt.Sprintf(cond, placeholders...))
}

func (b *sqlBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// locationClause строит дизъюнкцию локаций. Сентинел "все баррио" и
// обычный городской выбор дают одинаковую область поиска.
func locationClause(b *sqlBuilder, locations []domain.LocationFilter) {
	if len(locations) == 0 {
		return
	}

	groups := make([]string, 0, len(locations))
	for _, loc := range locations {
		switch {
		case loc.Neighborhood != "":
			b.args = append(b.args, loc.City, loc.Neighborhood)
			groups = append(groups, fmt.Sprintf("(city = $%d AND neighborhood = $%d)", len(b.args)-1, len(b.args)))
		case loc.District != "" && !loc.AllNeighborhoods:
			b.args = append(b.args, loc.City, loc.District)
			groups = append(groups, fmt.Sprintf("(city = $%d AND district = $%d)", len(b.args)-1, len(b.args)))
		default:
			b.args = append(b.args, loc.City)
			groups = append(groups, fmt.Sprintf("city = $%d", len(b.args)))
		}
	}
	b.conds = append(b.conds, "("+strings.Join(groups, " OR ")+")")
}

// filterClause переводит PropertyFilter в условия WHERE. Семантика
// обязана совпадать со скомпилированным предикатом domain.Compile:
// инвертированный диапазон цен даёт пустой результат, а не ошибку.
func filterClause(b *sqlBuilder, f domain.PropertyFilter) {
	b.add("operation_type = $%d", f.OperationType)

	if f.PriceMin != nil {
		if *f.PriceMin == domain.PriceBelowFloor {
			b.add("price < $%d", domain.FloorPrice(f.OperationType))
		} else {
			b.add("price >= $%d", *f.PriceMin)
		}
	}
	if f.PriceMax != nil && *f.PriceMax != domain.PriceNoLimit {
		b.add("price <= $%d", *f.PriceMax)
	}

	if f.StudioOnly {
		b.conds = append(b.conds, "bedrooms = 0")
	} else if f.BedroomsAtLeast != nil {
		b.add("bedrooms >= $%d", *f.BedroomsAtLeast)
	}
	if f.BathroomsAtLeast != nil {
		b.add("bathrooms >= $%d", *f.BathroomsAtLeast)
	}

	// AND-семантика тегов: объявление содержит каждый выбранный тег
	if len(f.Features) > 0 {
		b.add("features @> $%d", pq.Array(f.Features))
	}
}

// orderClause - SQL-эквивалент компараторов domain.Compile
func orderClause(key domain.SortKey) string {
	switch key {
	case domain.SortPriceAsc:
		return " ORDER BY price ASC"
	case domain.SortPricePerArea:
		// Объекты без площади в конце, деления на ноль нет
		return " ORDER BY (area IS NULL OR area <= 0), price / NULLIF(area, 0) ASC"
	case domain.SortPriceDrop:
		// Без предыдущей цены снижение нулевое - такие в конце
		return " ORDER BY CASE WHEN previous_price IS NULL OR previous_price <= 0 THEN 0" +
			" ELSE (previous_price - price) * 100.0 / previous_price END DESC"
	default:
		return " ORDER BY created_at DESC"
	}
}
