package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/habitaclick/search-service/internal/domain"
	"github.com/habitaclick/search-service/internal/pkg/errors"
	"github.com/habitaclick/search-service/internal/taxonomy"
)

// SearchRequest - нормализованный запрос поиска. Все внутренние компоненты
// работают только с этой формой; многоформенный параметр neighborhoods
// нормализуется на границе в список токенов длины >= 1.
type SearchRequest struct {
	Domain        domain.SearchDomain
	Tokens        []taxonomy.Token
	Filter        domain.PropertyFilter
	BedroomTiers  domain.TierSelection
	BathroomTiers domain.TierSelection
	Page          int
	Limit         int
}

// Normalize превращает сырые параметры строки запроса в SearchRequest.
// Числовые и перечислимые значения уже прошли валидацию формы; здесь
// отбрасывается только нечисловой мусор в свободных полях.
func (q SearchQuery) Normalize(tax *taxonomy.Taxonomy) (SearchRequest, error) {
	req := SearchRequest{
		Domain: domain.DomainProperties,
		Page:   q.Page,
		Limit:  q.Limit,
	}
	if q.Domain != "" {
		req.Domain = domain.SearchDomain(q.Domain)
	}
	if !req.Domain.Valid() {
		return SearchRequest{}, errors.ErrInvalidDomain
	}
	if req.Page == 0 {
		req.Page = 1
	}

	req.Tokens = tax.ParseTokenList(q.Neighborhoods)

	op := q.OperationType
	if op == "" {
		op = domain.OperationSale
	}
	if !domain.ValidOperationType(op) {
		return SearchRequest{}, errors.ErrInvalidOperationType
	}
	filter := domain.NewPropertyFilter(op)

	var err error
	if filter.PriceMin, err = parseOptionalInt(q.PriceMin); err != nil {
		return SearchRequest{}, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"param": "priceMin"})
	}
	if filter.PriceMax, err = parseOptionalInt(q.PriceMax); err != nil {
		return SearchRequest{}, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"param": "priceMax"})
	}

	req.BedroomTiers, err = parseTierList(q.Bedrooms)
	if err != nil {
		return SearchRequest{}, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"param": "bedrooms"})
	}
	req.BathroomTiers, err = parseTierList(q.Bathrooms)
	if err != nil {
		return SearchRequest{}, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"param": "bathrooms"})
	}
	filter.StudioOnly = req.BedroomTiers.IsStudio()
	filter.BedroomsAtLeast = req.BedroomTiers.Min()
	filter.BathroomsAtLeast = req.BathroomTiers.Min()

	if q.Features != "" {
		filter.Features = splitList(q.Features)
	}

	filter.SortBy = domain.SortKey(q.SortBy)
	if !domain.ValidSortKey(filter.SortBy) {
		return SearchRequest{}, errors.ErrInvalidSortKey
	}

	req.Filter = filter
	return req, nil
}

// QueryValues сериализует запрос обратно в параметры URL в точности той же
// формы - поисковые URL должны переживать закладки и шаринг.
func (r SearchRequest) QueryValues() url.Values {
	v := url.Values{}
	if r.Domain != domain.DomainProperties {
		v.Set("domain", string(r.Domain))
	}

	tokens := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		tokens[i] = string(t)
	}
	v.Set("neighborhoods", strings.Join(tokens, ","))

	v.Set("operationType", r.Filter.OperationType)
	if r.Filter.PriceMin != nil {
		v.Set("priceMin", strconv.Itoa(*r.Filter.PriceMin))
	}
	if r.Filter.PriceMax != nil {
		v.Set("priceMax", strconv.Itoa(*r.Filter.PriceMax))
	}
	if !r.BedroomTiers.Empty() {
		v.Set("bedrooms", joinTiers(r.BedroomTiers))
	}
	if !r.BathroomTiers.Empty() {
		v.Set("bathrooms", joinTiers(r.BathroomTiers))
	}
	if len(r.Filter.Features) > 0 {
		v.Set("features", strings.Join(r.Filter.Features, ","))
	}
	if r.Filter.SortBy != "" {
		v.Set("sortBy", string(r.Filter.SortBy))
	}
	return v
}

// LocationKey - каноническое представление списка токенов для ключей кеша
func (r SearchRequest) LocationKey() string {
	tokens := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		tokens[i] = string(t)
	}
	return strings.Join(tokens, ";")
}

func parseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	return &n, nil
}

func parseTierList(s string) (domain.TierSelection, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.NewTierSelection(), nil
	}
	parts := splitList(s)
	tiers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return domain.TierSelection{}, fmt.Errorf("not a tier: %q", p)
		}
		tiers = append(tiers, n)
	}
	return domain.TierSelectionFrom(tiers), nil
}

func joinTiers(s domain.TierSelection) string {
	tiers := s.Selected()
	parts := make([]string, len(tiers))
	for i, t := range tiers {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ",")
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
