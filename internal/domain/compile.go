package domain

import "math"

// Predicate - скомпилированное условие отбора объявления
type Predicate func(p *Property) bool

// Less - скомпилированный компаратор сортировки
type Less func(a, b *Property) bool

// Compile компилирует фильтр в пару (предикат, компаратор). Результат -
// чистая функция фильтра и не зависит от источника данных: та же пара
// применяется к уже загруженному списку и определяет SQL-запрос хранилища.
//
// Инвертированный ценовой диапазон (min > max) не детектируется отдельно:
// оба сравнения применяются независимо и дают пустой результат.
func Compile(f PropertyFilter) (Predicate, Less) {
	return compilePredicate(f), compileLess(f.EffectiveSort())
}

func compilePredicate(f PropertyFilter) Predicate {
	floor := FloorPrice(f.OperationType)
	features := canonicalFeatures(f.Features)

	return func(p *Property) bool {
		if p.OperationType != f.OperationType {
			return false
		}

		if f.PriceMin != nil {
			if *f.PriceMin == PriceBelowFloor {
				if p.Price >= floor {
					return false
				}
			} else if p.Price < *f.PriceMin {
				return false
			}
		}
		if f.PriceMax != nil && *f.PriceMax != PriceNoLimit && p.Price > *f.PriceMax {
			return false
		}

		if f.StudioOnly {
			if p.Bedrooms != 0 {
				return false
			}
		} else if f.BedroomsAtLeast != nil && p.Bedrooms < *f.BedroomsAtLeast {
			return false
		}
		if f.BathroomsAtLeast != nil && p.Bathrooms < *f.BathroomsAtLeast {
			return false
		}

		// AND-семантика: объявление должно содержать каждый выбранный тег
		for _, tag := range features {
			if !p.HasFeature(tag) {
				return false
			}
		}

		return true
	}
}

func compileLess(key SortKey) Less {
	switch key {
	case SortPriceAsc:
		return func(a, b *Property) bool {
			return a.Price < b.Price
		}
	case SortPricePerArea:
		return func(a, b *Property) bool {
			// Объекты без площади сортируются последними, деления на ноль нет
			return pricePerAreaOrInf(a) < pricePerAreaOrInf(b)
		}
	case SortPriceDrop:
		return func(a, b *Property) bool {
			// Без предыдущей цены снижение считается нулевым
			return a.PriceDropPercent() > b.PriceDropPercent()
		}
	default: // SortNewest
		return func(a, b *Property) bool {
			return a.CreatedAt.After(b.CreatedAt)
		}
	}
}

func pricePerAreaOrInf(p *Property) float64 {
	if v, ok := p.PricePerArea(); ok {
		return v
	}
	return math.Inf(1)
}
