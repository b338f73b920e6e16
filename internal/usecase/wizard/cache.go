package wizard

import (
	"context"
	"strconv"
	"sync"

	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/pkg/metrics"

	"golang.org/x/sync/singleflight"
)

type PackSizeLoader func(ctx context.Context, skuID string) ([]scheme.PackSize, error)

// PackSizeCache memoizes pack sizes per SKU id. Concurrent misses for the same
// SKU share one load. Clear drops every entry and discards loads still in flight.
type PackSizeCache struct {
	load    PackSizeLoader
	metrics *metrics.Metrics

	mu    sync.RWMutex
	store map[string][]scheme.PackSize
	gen   uint64
	group singleflight.Group
}

func NewPackSizeCache(load PackSizeLoader, m *metrics.Metrics) *PackSizeCache {
	return &PackSizeCache{
		load:    load,
		metrics: m,
		store:   make(map[string][]scheme.PackSize),
	}
}

func (c *PackSizeCache) Get(ctx context.Context, skuID string) ([]scheme.PackSize, error) {
	c.mu.RLock()
	sizes, ok := c.store[skuID]
	gen := c.gen
	c.mu.RUnlock()
	c.metrics.RecordPackSizeCache(ok)
	if ok {
		return clonePackSizes(sizes), nil
	}

	v, err, _ := c.group.Do(strconv.FormatUint(gen, 10)+"/"+skuID, func() (any, error) {
		loaded, err := c.load(ctx, skuID)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.gen == gen {
			c.store[skuID] = loaded
		}
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return clonePackSizes(v.([]scheme.PackSize)), nil
}

func (c *PackSizeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string][]scheme.PackSize)
	c.gen++
}

func (c *PackSizeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func clonePackSizes(in []scheme.PackSize) []scheme.PackSize {
	if in == nil {
		return []scheme.PackSize{}
	}
	return append([]scheme.PackSize(nil), in...)
}
