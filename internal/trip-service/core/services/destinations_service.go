package services

import (
	"context"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"
)

type DestinationsService struct {
	mylog            mylogger.Logger
	destinationsRepo ports.IDestinationsRepo
	cache            ports.ICatalogCache
}

func NewDestinationsService(log mylogger.Logger, destinationsRepo ports.IDestinationsRepo, cache ports.ICatalogCache) ports.IDestinationsService {
	return &DestinationsService{
		mylog:            log,
		destinationsRepo: destinationsRepo,
		cache:            cache,
	}
}

// List serves the catalog through the cache; the catalog changes rarely and
// is read on every page load.
func (ds *DestinationsService) List(ctx context.Context) ([]model.Destination, error) {
	if ds.cache != nil {
		if cached, ok := ds.cache.GetDestinations(ctx); ok {
			return cached, nil
		}
	}

	destinations, err := ds.destinationsRepo.List(ctx)
	if err != nil {
		ds.mylog.Action("ListDestinations").Error("cannot load destination catalog", err)
		return nil, err
	}

	if ds.cache != nil {
		ds.cache.SetDestinations(ctx, destinations)
	}
	return destinations, nil
}
