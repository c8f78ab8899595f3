package services

import (
	"context"
	"testing"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
)

type fakeDestinationsRepo struct {
	destinations []model.Destination
	calls        int
}

func (f *fakeDestinationsRepo) List(ctx context.Context) ([]model.Destination, error) {
	f.calls++
	return f.destinations, nil
}

type fakeCatalogCache struct {
	cached []model.Destination
	hit    bool
}

func (f *fakeCatalogCache) GetDestinations(ctx context.Context) ([]model.Destination, bool) {
	return f.cached, f.hit
}

func (f *fakeCatalogCache) SetDestinations(ctx context.Context, ds []model.Destination) {
	f.cached = ds
	f.hit = true
}

func TestDestinationsCacheMissFillsCache(t *testing.T) {
	repo := &fakeDestinationsRepo{destinations: []model.Destination{{ID: 1, Name: "Everest Base Camp"}}}
	cache := &fakeCatalogCache{}
	svc := NewDestinationsService(nopLogger{}, repo, cache)

	ds, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ds) != 1 || ds[0].Name != "Everest Base Camp" {
		t.Fatalf("catalog = %+v", ds)
	}
	if repo.calls != 1 {
		t.Errorf("repo calls = %d, want 1", repo.calls)
	}
	if !cache.hit {
		t.Error("cache not filled after miss")
	}

	// second read served from cache
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.calls != 1 {
		t.Errorf("repo calls after cache fill = %d, want 1", repo.calls)
	}
}

func TestDestinationsNilCache(t *testing.T) {
	repo := &fakeDestinationsRepo{destinations: []model.Destination{{ID: 2, Name: "Pokhara"}}}
	svc := NewDestinationsService(nopLogger{}, repo, nil)

	ds, err := svc.List(context.Background())
	if err != nil || len(ds) != 1 {
		t.Fatalf("List without cache = %+v, %v", ds, err)
	}
}
