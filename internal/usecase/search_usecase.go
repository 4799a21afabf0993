package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/habitaclick/search-service/internal/config"
	"github.com/habitaclick/search-service/internal/domain"
	"github.com/habitaclick/search-service/internal/domain/repository"
	"github.com/habitaclick/search-service/internal/pkg/errors"
	"github.com/habitaclick/search-service/internal/searchcache"
	"github.com/habitaclick/search-service/internal/taxonomy"
	"github.com/habitaclick/search-service/internal/usecase/dto"
)

// prefetchTimeout ограничивает фоновые предзагрузки соседних доменов
const prefetchTimeout = 15 * time.Second

// SearchUseCase - оркестратор поиска по трём независимым доменам:
// объявления, агентства, агенты. Активный домен запрашивается синхронно,
// два соседних предзагружаются в фоне, чтобы переключение вкладки было
// попаданием в кеш. Отказ одного домена не влияет на остальные.
type SearchUseCase struct {
	propertyRepo repository.PropertyRepository
	agencyRepo   repository.AgencyRepository
	agentRepo    repository.AgentRepository
	cache        *searchcache.ResultCache
	tax          *taxonomy.Taxonomy
	logger       *zap.Logger
	cfg          config.SearchConfig

	// дедупликация одновременных запросов одного ключа
	group singleflight.Group

	mu     sync.Mutex
	states map[domain.SearchDomain]domainState
	// последовательность инициации по доменам: побеждает последний
	// инициированный запрос, а не последний завершившийся
	seq map[domain.SearchDomain]uint64
}

type domainState struct {
	state domain.DomainState
	err   string
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	propertyRepo repository.PropertyRepository,
	agencyRepo repository.AgencyRepository,
	agentRepo repository.AgentRepository,
	cache *searchcache.ResultCache,
	tax *taxonomy.Taxonomy,
	logger *zap.Logger,
	cfg config.SearchConfig,
) *SearchUseCase {
	states := make(map[domain.SearchDomain]domainState)
	for _, d := range domain.Domains() {
		states[d] = domainState{state: domain.StateIdle}
	}
	return &SearchUseCase{
		propertyRepo: propertyRepo,
		agencyRepo:   agencyRepo,
		agentRepo:    agentRepo,
		cache:        cache,
		tax:          tax,
		logger:       logger,
		cfg:          cfg,
		states:       states,
		seq:          make(map[domain.SearchDomain]uint64),
	}
}

// Search выполняет поиск активного домена и предзагружает соседние
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	if req.Limit == 0 {
		req.Limit = uc.cfg.DefaultLimit
	}

	route := uc.routeFor(req.Tokens)

	result, cacheState, err := uc.fetchDomain(ctx, req, req.Domain)

	if uc.cfg.Prefetch {
		uc.prefetchSiblings(ctx, req)
	}

	if err != nil {
		uc.logger.Error("Search failed for active domain",
			zap.String("domain", string(req.Domain)),
			zap.String("location", req.LocationKey()),
			zap.Error(err))
		return nil, err
	}

	return &dto.SearchResponse{
		Route:  route,
		Tokens: tokenStrings(req.Tokens),
		Result: result,
		States: uc.States(),
		Cache:  cacheStateString(cacheState),
		Query:  req.QueryValues().Encode(),
	}, nil
}

// States - снимок состояний всех доменов
func (uc *SearchUseCase) States() map[string]dto.DomainStateDTO {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make(map[string]dto.DomainStateDTO, len(uc.states))
	for d, s := range uc.states {
		out[string(d)] = dto.DomainStateDTO{State: string(s.state), Error: s.err}
	}
	return out
}

// prefetchSiblings запускает fire-and-forget предзагрузку двух соседних
// доменов с сортировкой по умолчанию. Контекст отвязан от запроса:
// завершение ответа не отменяет предзагрузку.
func (uc *SearchUseCase) prefetchSiblings(ctx context.Context, req dto.SearchRequest) {
	base := context.WithoutCancel(ctx)
	for _, d := range domain.Domains() {
		if d == req.Domain {
			continue
		}

		sibling := req
		sibling.Domain = d
		sibling.Filter = req.Filter.WithSortBy("")

		go func(r dto.SearchRequest) {
			pctx, cancel := context.WithTimeout(base, prefetchTimeout)
			defer cancel()

			if _, _, err := uc.fetchDomain(pctx, r, r.Domain); err != nil {
				uc.logger.Warn("Prefetch failed",
					zap.String("domain", string(r.Domain)),
					zap.String("location", r.LocationKey()),
					zap.Error(err))
			}
		}(sibling)
	}
}

// fetchDomain обслуживает один домен: кеш, дедупликация, ретраи.
// Результат, инициированный раньше более нового запроса того же домена,
// не обновляет видимое состояние (last-write-wins по времени инициации).
func (uc *SearchUseCase) fetchDomain(
	ctx context.Context,
	req dto.SearchRequest,
	dom domain.SearchDomain,
) (*domain.SearchResultSet, searchcache.EntryState, error) {
	key := searchcache.Key{
		Domain:    dom,
		Location:  req.LocationKey(),
		Signature: req.Filter.Signature(),
		Page:      req.Page,
		Limit:     req.Limit,
	}

	mySeq := uc.beginFetch(dom)

	if cached, state := uc.cache.Get(key); state != searchcache.Miss {
		uc.completeFetch(dom, mySeq, nil)
		return cached, state, nil
	}

	uc.markLoading(dom, mySeq)

	flightKey := fmt.Sprintf("%s|%s|%s|p%d|l%d", key.Domain, key.Location, key.Signature, key.Page, key.Limit)
	v, err, shared := uc.group.Do(flightKey, func() (interface{}, error) {
		result, err := uc.fetchWithRetry(ctx, req, dom)
		if err != nil {
			return nil, err
		}
		uc.cache.Put(key, result, func(rctx context.Context) (*domain.SearchResultSet, error) {
			return uc.fetchStore(rctx, req, dom)
		})
		return result, nil
	})
	if shared {
		uc.logger.Debug("Search request deduplicated", zap.String("key", flightKey))
	}

	if err != nil {
		uc.completeFetch(dom, mySeq, err)
		return nil, searchcache.Miss, errors.ErrSearchFailed.WithDetails(map[string]interface{}{
			"domain": string(dom),
			"cause":  err.Error(),
		})
	}

	uc.completeFetch(dom, mySeq, nil)
	return v.(*domain.SearchResultSet), searchcache.Miss, nil
}

// fetchWithRetry - до cfg.MaxRetries автоматических повторов
// с экспоненциальной задержкой (удвоение базы, ограничение сверху)
func (uc *SearchUseCase) fetchWithRetry(
	ctx context.Context,
	req dto.SearchRequest,
	dom domain.SearchDomain,
) (*domain.SearchResultSet, error) {
	delay := uc.cfg.RetryBaseDelay

	var lastErr error
	for attempt := 0; attempt <= uc.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			delay *= 2
			if delay > uc.cfg.RetryMaxDelay {
				delay = uc.cfg.RetryMaxDelay
			}
		}

		result, err := uc.fetchStore(ctx, req, dom)
		if err == nil {
			return result, nil
		}
		lastErr = err
		uc.logger.Warn("Fetch attempt failed",
			zap.String("domain", string(dom)),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}

	return nil, lastErr
}

// fetchStore выполняет запрос к хранилищу для одного домена
func (uc *SearchUseCase) fetchStore(
	ctx context.Context,
	req dto.SearchRequest,
	dom domain.SearchDomain,
) (*domain.SearchResultSet, error) {
	locations := uc.locationFilters(req.Tokens)
	offset := (req.Page - 1) * req.Limit
	if offset < 0 {
		offset = 0
	}

	rs := &domain.SearchResultSet{
		Domain:          dom,
		Location:        req.LocationKey(),
		FilterSignature: req.Filter.Signature(),
		FetchedAt:       time.Now(),
	}

	var err error
	switch dom {
	case domain.DomainProperties:
		rs.Properties, err = uc.propertyRepo.FetchProperties(ctx, locations, req.Filter, req.Limit, offset)
	case domain.DomainAgencies:
		rs.Agencies, err = uc.agencyRepo.FetchAgencies(ctx, locations, req.Limit, offset)
	case domain.DomainAgents:
		rs.Agents, err = uc.agentRepo.FetchAgents(ctx, locations, req.Limit, offset)
	default:
		return nil, errors.ErrInvalidDomain
	}
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// locationFilters разворачивает токены в поля запроса хранилища
func (uc *SearchUseCase) locationFilters(tokens []taxonomy.Token) []domain.LocationFilter {
	out := make([]domain.LocationFilter, 0, len(tokens))
	for _, token := range tokens {
		sel := uc.tax.Decode(token)
		out = append(out, domain.LocationFilter{
			City:             sel.City,
			District:         sel.District,
			Neighborhood:     sel.Neighborhood,
			AllNeighborhoods: sel.AllNeighborhoods,
		})
	}
	return out
}

// routeFor - политика навигации: ровно один лист ведёт на детальную
// страницу, больше одного - на плоский список. Форма результатов
// одинакова на обоих путях.
func (uc *SearchUseCase) routeFor(tokens []taxonomy.Token) dto.RouteDTO {
	if len(tokens) != 1 {
		return dto.RouteDTO{Kind: dto.RouteResultsList}
	}

	sel := uc.tax.Decode(tokens[0])
	token := string(sel.Token(uc.tax))
	switch {
	case sel.AllNeighborhoods:
		return dto.RouteDTO{Kind: dto.RouteCityDetail, Token: token}
	case sel.Neighborhood != "":
		return dto.RouteDTO{Kind: dto.RouteNeighborhoodDetail, Token: token}
	case sel.District != "":
		return dto.RouteDTO{Kind: dto.RouteDistrictDetail, Token: token}
	default:
		return dto.RouteDTO{Kind: dto.RouteCityDetail, Token: token}
	}
}

// beginFetch регистрирует инициацию запроса домена
func (uc *SearchUseCase) beginFetch(dom domain.SearchDomain) uint64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.seq[dom]++
	return uc.seq[dom]
}

// markLoading переводит домен в loading, если запрос всё ещё актуален
func (uc *SearchUseCase) markLoading(dom domain.SearchDomain, mySeq uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.seq[dom] != mySeq {
		return
	}
	uc.states[dom] = domainState{state: domain.StateLoading}
}

// completeFetch обновляет состояние домена, если результат не вытеснен
// более новым запросом: устаревший ответ не должен затирать свежий
func (uc *SearchUseCase) completeFetch(dom domain.SearchDomain, mySeq uint64, err error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.seq[dom] != mySeq {
		return
	}
	if err != nil {
		uc.states[dom] = domainState{state: domain.StateError, err: err.Error()}
		return
	}
	uc.states[dom] = domainState{state: domain.StateLoaded}
}

func tokenStrings(tokens []taxonomy.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = string(t)
	}
	return out
}

func cacheStateString(s searchcache.EntryState) string {
	switch s {
	case searchcache.Fresh:
		return "fresh"
	case searchcache.Stale:
		return "stale"
	default:
		return "miss"
	}
}
