package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/maharjanPranish/NepXplore/internal/config"
	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"

	"github.com/go-redis/redis/v8"
)

const (
	destinationsKey = "catalog:destinations"
	catalogTTL      = 10 * time.Minute
)

type CatalogCache struct {
	client *redis.Client
	mylog  mylogger.Logger
}

func New(cfg *config.Redisconfig, mylog mylogger.Logger) ports.ICatalogCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &CatalogCache{
		client: client,
		mylog:  mylog,
	}
}

// GetDestinations returns the cached catalog; any redis failure is treated
// as a miss so the caller falls through to the database.
func (c *CatalogCache) GetDestinations(ctx context.Context) ([]model.Destination, bool) {
	data, err := c.client.Get(ctx, destinationsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.mylog.Action("catalog_cache_get").Warn("redis get failed", "error", err.Error())
		}
		return nil, false
	}

	var destinations []model.Destination
	if err := json.Unmarshal(data, &destinations); err != nil {
		return nil, false
	}
	return destinations, true
}

func (c *CatalogCache) SetDestinations(ctx context.Context, ds []model.Destination) {
	data, err := json.Marshal(ds)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, destinationsKey, data, catalogTTL).Err(); err != nil {
		c.mylog.Action("catalog_cache_set").Warn("redis set failed", "error", err.Error())
	}
}
