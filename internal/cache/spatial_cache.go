package cache

import (
	"container/list"
	"context"
	"math"
	"sync"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
	"github.com/mthiaw/mapaq-analytics-go/internal/spatial"
)

// DefaultCapacity bounds the cache when no capacity is configured.
const DefaultCapacity = 1024

// ZoneRecordSource supplies the restaurants belonging to a set of zones.
// Implementations may over-return (e.g. bounding-box SQL filters); the
// cache re-filters with exact distances before storing anything.
type ZoneRecordSource interface {
	RecordsInZones(ctx context.Context, zones []models.Zone) ([]models.Restaurant, error)
}

// queryKey quantizes a query point to 4 decimal places (~11 m). Nearby
// queries collapse onto one entry; two points straddling a rounding
// boundary may still miss each other, which is accepted as part of the
// key design. The radius is part of the key unrounded.
type queryKey struct {
	lat4     int64
	lng4     int64
	radiusKm float64
}

func keyFor(p models.GeoPoint, radiusKm float64) queryKey {
	return queryKey{
		lat4:     int64(math.Round(p.Lat * 1e4)),
		lng4:     int64(math.Round(p.Lng * 1e4)),
		radiusKm: radiusKm,
	}
}

type entry struct {
	key     queryKey
	records []models.Restaurant
}

// SpatialQueryCache memoizes point-radius record queries with LRU
// eviction. One mutex covers the whole lookup-compute-insert path, so
// concurrent callers never compute the same key twice.
type SpatialQueryCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[queryKey]*list.Element
	order    *list.List // front = most recently used
	index    *spatial.Index
	source   ZoneRecordSource

	hits   uint64
	misses uint64
}

// NewSpatialQueryCache creates a cache over the given index and record
// source. capacity <= 0 selects DefaultCapacity.
func NewSpatialQueryCache(index *spatial.Index, source ZoneRecordSource, capacity int) *SpatialQueryCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &SpatialQueryCache{
		capacity: capacity,
		entries:  make(map[queryKey]*list.Element),
		order:    list.New(),
		index:    index,
		source:   source,
	}
}

// Query returns all records within radiusKm of p, serving repeated
// queries for the same quantized key from memory. Record-source failures
// propagate unchanged and leave the cache untouched.
func (c *SpatialQueryCache) Query(ctx context.Context, p models.GeoPoint, radiusKm float64) ([]models.Restaurant, error) {
	key := keyFor(p, radiusKm)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		c.hits++
		return elem.Value.(*entry).records, nil
	}

	records, err := c.compute(ctx, p, radiusKm)
	if err != nil {
		return nil, err
	}

	c.misses++
	c.entries[key] = c.order.PushFront(&entry{key: key, records: records})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry).key)
	}

	return records, nil
}

// compute runs the two-stage query: conservative candidate-zone filter,
// then exact per-record distance check.
func (c *SpatialQueryCache) compute(ctx context.Context, p models.GeoPoint, radiusKm float64) ([]models.Restaurant, error) {
	candidates := c.index.CandidateZones(p, radiusKm)
	if len(candidates) == 0 {
		return []models.Restaurant{}, nil
	}

	fetched, err := c.source.RecordsInZones(ctx, candidates)
	if err != nil {
		return nil, err
	}

	records := make([]models.Restaurant, 0, len(fetched))
	for _, r := range fetched {
		if spatial.DistanceKm(r.Position, p) <= radiusKm {
			records = append(records, r)
		}
	}
	return records, nil
}

// Stats reports hit/miss counters and the current entry count.
func (c *SpatialQueryCache) Stats() (hits, misses uint64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, c.order.Len()
}
