package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/geocoder89/volcanoes/internal/domain/volcano"
)

func TestCache_SetGetExpire(t *testing.T) {
	ctx := context.Background()
	c := New(20 * time.Millisecond)

	if err := c.Set(ctx, "k", []string{"a", "b"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []string
	hit, err := c.Get(ctx, "k", &got)
	if err != nil || !hit || len(got) != 2 {
		t.Fatalf("get: hit=%v err=%v got=%v", hit, err, got)
	}

	time.Sleep(40 * time.Millisecond)

	hit, _ = c.Get(ctx, "k", &got)
	if hit {
		t.Fatalf("expected entry to expire")
	}
}

type fakeReader struct {
	countriesCalls int
	getCalls       int
	getErr         error
}

func (f *fakeReader) Countries(context.Context) ([]string, error) {
	f.countriesCalls++
	return []string{"Chile", "Japan"}, nil
}

func (f *fakeReader) List(_ context.Context, filter volcano.ListFilter) ([]volcano.Summary, error) {
	return []volcano.Summary{{ID: 1, Country: filter.Country}}, nil
}

func (f *fakeReader) GetByID(_ context.Context, id int64) (volcano.Volcano, error) {
	f.getCalls++
	if f.getErr != nil {
		return volcano.Volcano{}, f.getErr
	}
	return volcano.Volcano{ID: id, Population5km: 9}, nil
}

func TestVolcanoes_ReadThrough(t *testing.T) {
	ctx := context.Background()
	reader := &fakeReader{}
	v := NewVolcanoes(reader, New(time.Minute), nil)

	for i := 0; i < 3; i++ {
		got, err := v.Countries(ctx)
		if err != nil || len(got) != 2 {
			t.Fatalf("countries: %v %v", got, err)
		}
	}
	if reader.countriesCalls != 1 {
		t.Fatalf("got %d underlying calls, want 1", reader.countriesCalls)
	}

	got, _ := v.GetByID(ctx, 5)
	got, _ = v.GetByID(ctx, 5)
	if got.ID != 5 || got.Population5km != 9 || reader.getCalls != 1 {
		t.Fatalf("get by id: %+v calls=%d", got, reader.getCalls)
	}
}

func TestVolcanoes_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	reader := &fakeReader{getErr: volcano.ErrNotFound}
	v := NewVolcanoes(reader, New(time.Minute), nil)

	for i := 0; i < 2; i++ {
		if _, err := v.GetByID(ctx, 1); !errors.Is(err, volcano.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	}
	if reader.getCalls != 2 {
		t.Fatalf("got %d calls, want 2", reader.getCalls)
	}
}

func TestBuildListKey(t *testing.T) {
	r := volcano.Radius10km

	a := BuildListKey(volcano.ListFilter{Country: "Japan"})
	b := BuildListKey(volcano.ListFilter{Country: "Japan", PopulatedWithin: &r})

	if a == b {
		t.Fatalf("keys must differ by radius: %q", a)
	}
}
