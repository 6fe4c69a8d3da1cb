package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/geocoder89/volcanoes/internal/domain/volcano"
)

// VolcanoesRepo serves a fixed dataset held in memory.
type VolcanoesRepo struct {
	mu    sync.RWMutex
	items []volcano.Volcano
}

func NewVolcanoesRepo(seed []volcano.Volcano) *VolcanoesRepo {
	items := append([]volcano.Volcano(nil), seed...)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return &VolcanoesRepo{items: items}
}

func (r *VolcanoesRepo) Countries(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, v := range r.items {
		if _, ok := seen[v.Country]; ok {
			continue
		}
		seen[v.Country] = struct{}{}
		out = append(out, v.Country)
	}

	sort.Strings(out)
	return out, nil
}

func (r *VolcanoesRepo) List(_ context.Context, filter volcano.ListFilter) ([]volcano.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]volcano.Summary, 0)

	for _, v := range r.items {
		if v.Country != filter.Country {
			continue
		}
		if filter.PopulatedWithin != nil && v.Population(*filter.PopulatedWithin) <= 0 {
			continue
		}
		out = append(out, v.Summary())
	}

	return out, nil
}

func (r *VolcanoesRepo) GetByID(_ context.Context, id int64) (volcano.Volcano, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.items {
		if v.ID == id {
			return v, nil
		}
	}
	return volcano.Volcano{}, volcano.ErrNotFound
}
