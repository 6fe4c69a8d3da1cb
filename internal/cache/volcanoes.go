package cache

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/geocoder89/volcanoes/internal/domain/volcano"
)

type VolcanoReader interface {
	Countries(ctx context.Context) ([]string, error)
	List(ctx context.Context, filter volcano.ListFilter) ([]volcano.Summary, error)
	GetByID(ctx context.Context, id int64) (volcano.Volcano, error)
}

// Metrics counts cache outcomes. *observability.Prom satisfies it.
type Metrics interface {
	ObserveCache(result string)
}

type noopMetrics struct{}

func (noopMetrics) ObserveCache(string) {}

// Volcanoes is a read-through cache over the volcano dataset. The dataset is
// immutable, so entries are never invalidated, only expired. Cache failures
// fall through to the underlying reader.
type Volcanoes struct {
	next    VolcanoReader
	store   Store
	log     *slog.Logger
	metrics Metrics
}

func NewVolcanoes(next VolcanoReader, store Store, log *slog.Logger) *Volcanoes {
	if log == nil {
		log = slog.Default()
	}
	return &Volcanoes{next: next, store: store, log: log, metrics: noopMetrics{}}
}

func (v *Volcanoes) WithMetrics(m Metrics) *Volcanoes {
	if m != nil {
		v.metrics = m
	}
	return v
}

func (v *Volcanoes) Countries(ctx context.Context) ([]string, error) {
	return readThrough(ctx, v, "countries:v1", func() ([]string, error) {
		return v.next.Countries(ctx)
	})
}

func (v *Volcanoes) List(ctx context.Context, filter volcano.ListFilter) ([]volcano.Summary, error) {
	return readThrough(ctx, v, BuildListKey(filter), func() ([]volcano.Summary, error) {
		return v.next.List(ctx, filter)
	})
}

func (v *Volcanoes) GetByID(ctx context.Context, id int64) (volcano.Volcano, error) {
	return readThrough(ctx, v, "volcano:v1:"+strconv.FormatInt(id, 10), func() (volcano.Volcano, error) {
		return v.next.GetByID(ctx, id)
	})
}

func BuildListKey(filter volcano.ListFilter) string {
	within := ""
	if filter.PopulatedWithin != nil {
		within = string(*filter.PopulatedWithin)
	}
	return "volcanoes:list:v1:country=" + filter.Country + ":within=" + within
}

func readThrough[T any](ctx context.Context, v *Volcanoes, key string, load func() (T, error)) (T, error) {
	var cached T

	hit, err := v.store.Get(ctx, key, &cached)
	switch {
	case err != nil:
		v.metrics.ObserveCache("error")
		v.log.WarnContext(ctx, "cache get failed", "key", key, "err", err)
	case hit:
		v.metrics.ObserveCache("hit")
		return cached, nil
	default:
		v.metrics.ObserveCache("miss")
	}

	out, err := load()
	if err != nil {
		return out, err
	}

	if err := v.store.Set(ctx, key, out); err != nil {
		v.log.WarnContext(ctx, "cache set failed", "key", key, "err", err)
	}
	return out, nil
}
