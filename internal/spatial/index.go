package spatial

import (
	"math"

	"github.com/mthiaw/mapaq-analytics-go/internal/models"
)

// kmPerDegree is the approximate length of one degree of latitude. Used
// only for the fast-reject bounding boxes, never for exact distances.
const kmPerDegree = 111.0

// BoundingBox is an approximate latitude/longitude envelope around a zone.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Contains reports whether the point falls inside the box.
func (b BoundingBox) Contains(p models.GeoPoint) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// ZoneDescriptor is the precomputed fast-reject record for one zone.
type ZoneDescriptor struct {
	Zone models.Zone
	BBox BoundingBox
}

// Index holds one descriptor per configured zone. Built once at startup;
// read-only afterwards, safe to share across goroutines without locking.
type Index struct {
	descriptors []ZoneDescriptor
}

// NewIndex precomputes descriptors for the given zone list, preserving
// configuration order.
func NewIndex(zones []models.Zone) *Index {
	descriptors := make([]ZoneDescriptor, 0, len(zones))
	for _, z := range zones {
		descriptors = append(descriptors, ZoneDescriptor{
			Zone: z,
			BBox: ZoneBoundingBox(z),
		})
	}
	return &Index{descriptors: descriptors}
}

// ZoneBoundingBox converts the zone radius to degrees, widening the
// longitude span by cos(latitude).
func ZoneBoundingBox(z models.Zone) BoundingBox {
	latDelta := z.RadiusKm / kmPerDegree
	lngDelta := latDelta
	if cosLat := math.Cos(z.Center.Lat * math.Pi / 180); cosLat > 0 {
		lngDelta = z.RadiusKm / (kmPerDegree * cosLat)
	}
	return BoundingBox{
		MinLat: z.Center.Lat - latDelta,
		MaxLat: z.Center.Lat + latDelta,
		MinLng: z.Center.Lng - lngDelta,
		MaxLng: z.Center.Lng + lngDelta,
	}
}

// Zones returns the configured zones in their original order.
func (idx *Index) Zones() []models.Zone {
	zones := make([]models.Zone, len(idx.descriptors))
	for i, d := range idx.descriptors {
		zones[i] = d.Zone
	}
	return zones
}

// Descriptors returns the per-zone descriptors in configuration order.
func (idx *Index) Descriptors() []ZoneDescriptor {
	return idx.descriptors
}

// CandidateZones returns every zone whose circle could intersect the
// search circle: the zone is included when the center distance does not
// exceed radiusKm + zone radius. The test is a conservative superset
// filter; it can admit false positives that the caller re-filters with
// exact per-record distances, but it never drops a matching zone.
func (idx *Index) CandidateZones(p models.GeoPoint, radiusKm float64) []models.Zone {
	var candidates []models.Zone
	for _, d := range idx.descriptors {
		if DistanceKm(p, d.Zone.Center) <= radiusKm+d.Zone.RadiusKm {
			candidates = append(candidates, d.Zone)
		}
	}
	return candidates
}
