package domain

import (
	"sort"
	"strconv"
	"strings"
)

// Типы операций. Поле обязательное: UI всегда подставляет значение по умолчанию.
const (
	OperationSale = "Venta"
	OperationRent = "Alquiler"
)

// ValidOperationType проверяет тип операции
func ValidOperationType(op string) bool {
	return op == OperationSale || op == OperationRent
}

// SortKey - ключ сортировки результатов
type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortPriceAsc     SortKey = "price-asc"
	SortPricePerArea SortKey = "price-per-area"
	SortPriceDrop    SortKey = "price-drop"
)

// ValidSortKey проверяет ключ сортировки; пустой ключ означает сортировку по умолчанию
func ValidSortKey(s SortKey) bool {
	switch s {
	case "", SortNewest, SortPriceAsc, SortPricePerArea, SortPriceDrop:
		return true
	}
	return false
}

// Ценовые сентинелы. PriceBelowFloor в PriceMin означает "дешевле нижней
// границы каталога"; PriceNoLimit в PriceMax не накладывает ограничения.
const (
	PriceBelowFloor = -1
	PriceNoLimit    = -1
)

// Нижние границы ценового каталога по типу операции
const (
	saleFloorPrice = 50000
	rentFloorPrice = 300
)

// FloorPrice - нижняя граница каталога цен для типа операции
func FloorPrice(operationType string) int {
	if operationType == OperationRent {
		return rentFloorPrice
	}
	return saleFloorPrice
}

// PropertyFilter - неизменяемое состояние фильтра поиска. Все изменения
// производят новое значение, частичных мутаций нет.
type PropertyFilter struct {
	OperationType    string
	PriceMin         *int
	PriceMax         *int
	BedroomsAtLeast  *int
	StudioOnly       bool
	BathroomsAtLeast *int
	Features         []string
	SortBy           SortKey
}

// NewPropertyFilter - фильтр по умолчанию для типа операции
func NewPropertyFilter(operationType string) PropertyFilter {
	return PropertyFilter{OperationType: operationType}
}

// WithSortBy возвращает копию фильтра с другим ключом сортировки
func (f PropertyFilter) WithSortBy(key SortKey) PropertyFilter {
	f.Features = append([]string(nil), f.Features...)
	f.SortBy = key
	return f
}

// WithFeatures возвращает копию фильтра с другим набором тегов
func (f PropertyFilter) WithFeatures(features []string) PropertyFilter {
	f.Features = append([]string(nil), features...)
	return f
}

// EffectiveSort - ключ сортировки с учётом значения по умолчанию
func (f PropertyFilter) EffectiveSort() SortKey {
	if f.SortBy == "" {
		return SortNewest
	}
	return f.SortBy
}

// Signature - детерминированная сериализация фильтра для ключей кеша.
// Семантически равные фильтры (включая перестановку тегов) дают одну строку.
func (f PropertyFilter) Signature() string {
	var b strings.Builder
	b.WriteString("op=")
	b.WriteString(f.OperationType)

	b.WriteString("|pmin=")
	b.WriteString(intPtrString(f.PriceMin))
	b.WriteString("|pmax=")
	b.WriteString(intPtrString(f.PriceMax))

	b.WriteString("|beds=")
	if f.StudioOnly {
		b.WriteString("studio")
	} else {
		b.WriteString(intPtrString(f.BedroomsAtLeast))
	}
	b.WriteString("|baths=")
	b.WriteString(intPtrString(f.BathroomsAtLeast))

	b.WriteString("|feat=")
	b.WriteString(strings.Join(canonicalFeatures(f.Features), ","))

	b.WriteString("|sort=")
	b.WriteString(string(f.EffectiveSort()))

	return b.String()
}

func intPtrString(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

// canonicalFeatures - отсортированный набор тегов без дубликатов
func canonicalFeatures(features []string) []string {
	if len(features) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(features))
	out := make([]string, 0, len(features))
	for _, f := range features {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
