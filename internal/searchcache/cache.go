// Package searchcache реализует процесс-локальный кеш результатов поиска
// с политикой устаревания: свежая запись отдаётся без перезапроса, устаревшая
// отдаётся немедленно с фоновым обновлением, запись старше окна GC
// вытесняется и требует синхронного перезапроса.
package searchcache

import (
	"context"
	"sync"
	"time"

	"github.com/habitaclick/search-service/internal/domain"
)

// Key - ключ кеша: (домен, токен локации, сигнатура фильтра, страница).
// Страница и размер страницы входят в ключ: разные страницы одной выдачи
// содержат разные элементы
type Key struct {
	Domain    domain.SearchDomain
	Location  string
	Signature string
	Page      int
	Limit     int
}

// EntryState - статус записи при чтении
type EntryState int

const (
	Miss EntryState = iota
	Fresh
	Stale
)

// FetchFunc перезапрашивает результат для фонового обновления
type FetchFunc func(ctx context.Context) (*domain.SearchResultSet, error)

// RefreshJob - задание фонового обновления устаревшей записи
type RefreshJob struct {
	Key   Key
	Fetch FetchFunc
}

type entry struct {
	result   *domain.SearchResultSet
	storedAt time.Time
	fetch    FetchFunc
	// refreshing подавляет повторную постановку задания, пока
	// предыдущее обновление не завершилось
	refreshing bool
}

// ResultCache - единственная разделяемая изменяемая структура поискового
// ядра. Мутации атомарны по ключу; создаётся явно и внедряется зависимостью,
// Clear даёт изолированные инстансы в тестах.
type ResultCache struct {
	mu      sync.Mutex
	entries map[Key]*entry

	staleTime time.Duration
	gcTime    time.Duration

	refreshCh chan RefreshJob

	now func() time.Time
}

// Option - настройка кеша
type Option func(*ResultCache)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(c *ResultCache) {
		c.now = now
	}
}

// New создаёт кеш результатов. staleTime < gcTime; queueSize ограничивает
// очередь фоновых обновлений, переполнение очереди отбрасывает задание
// (запись обновится при следующем чтении).
func New(staleTime, gcTime time.Duration, queueSize int, opts ...Option) *ResultCache {
	if queueSize <= 0 {
		queueSize = 64
	}
	c := &ResultCache{
		entries:   make(map[Key]*entry),
		staleTime: staleTime,
		gcTime:    gcTime,
		refreshCh: make(chan RefreshJob, queueSize),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get возвращает запись и её статус. Устаревшая запись ставится в очередь
// фонового обновления; запись старше окна GC вытесняется как промах.
func (c *ResultCache) Get(key Key) (*domain.SearchResultSet, EntryState) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return nil, Miss
	}

	age := c.now().Sub(e.storedAt)
	if age > c.gcTime {
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, Miss
	}
	if age <= c.staleTime {
		result := e.result
		c.mu.Unlock()
		return result, Fresh
	}

	result := e.result
	var job *RefreshJob
	if !e.refreshing && e.fetch != nil {
		e.refreshing = true
		job = &RefreshJob{Key: key, Fetch: e.fetch}
	}
	c.mu.Unlock()

	if job != nil {
		select {
		case c.refreshCh <- *job:
		default:
			// Очередь полна - откатываем флаг, попробуем при следующем чтении
			c.mu.Lock()
			if cur, ok := c.entries[key]; ok {
				cur.refreshing = false
			}
			c.mu.Unlock()
		}
	}

	return result, Stale
}

// Put сохраняет результат вместе с функцией его перезапроса
func (c *ResultCache) Put(key Key, result *domain.SearchResultSet, fetch FetchFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry{
		result:   result,
		storedAt: c.now(),
		fetch:    fetch,
	}
}

// RefreshQueue - очередь заданий для фонового воркера
func (c *ResultCache) RefreshQueue() <-chan RefreshJob {
	return c.refreshCh
}

// Refresh выполняет задание и сохраняет результат. Ошибка оставляет
// устаревшую запись на месте: показанный результат лучше пустого.
func (c *ResultCache) Refresh(ctx context.Context, job RefreshJob) error {
	result, err := job.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[job.Key]
	if err != nil {
		if ok {
			e.refreshing = false
		}
		return err
	}

	c.entries[job.Key] = &entry{
		result:   result,
		storedAt: c.now(),
		fetch:    job.Fetch,
	}
	return nil
}

// Sweep вытесняет записи старше окна GC; возвращает число вытесненных
func (c *ResultCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	evicted := 0
	for key, e := range c.entries {
		if now.Sub(e.storedAt) > c.gcTime {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

// Len - текущее число записей
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear сбрасывает кеш (для тестов)
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]*entry)
}
