// Package search orchestrates a place search: it queries the external place
// search, reconciles each result with the curated park registry, and merges
// facility data into the places it returns. Curated data is read-only here;
// it is refreshed by the offline import commands.
package search

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"parkfinder/internal/enrich"
	"parkfinder/internal/matcher"
	"parkfinder/internal/models"
	"parkfinder/pkg/geo"
)

// DefaultRadius is the search radius in meters when the caller supplies none.
const DefaultRadius = 2000

// ExternalSearcher is the live third-party place search. Its failures are
// surfaced as-is; the service does not retry.
type ExternalSearcher interface {
	Search(ctx context.Context, category models.Category, lat, lng float64, radius int) ([]models.Place, error)
}

// ParkStore is the curated park registry. A store error during a search is
// treated as "no curated data available": enrichment is skipped, the search
// still succeeds.
type ParkStore interface {
	AllWithCoordinates(ctx context.Context) ([]models.UrbanPark, error)
	GetByID(ctx context.Context, id string) (*models.UrbanPark, error)
}

// placeItem flows through the enrichment pipeline. Both steps only read
// place and write disjoint result fields, which keeps them safe to run in
// one stage.
type placeItem struct {
	place      models.Place
	userLat    float64
	userLng    float64
	candidates []models.UrbanPark

	distance *float64
	match    *matcher.Result
}

// Service owns one session's search state, including the per-location result
// cache. It replaces the original design's module-level "last search" global.
type Service struct {
	external ExternalSearcher
	parks    ParkStore
	matcher  *matcher.Matcher
	pipeline *enrich.Pipeline[placeItem]
	cache    *resultCache
}

// NewService wires a search service from its collaborators.
func NewService(external ExternalSearcher, parks ParkStore, m *matcher.Matcher) *Service {
	s := &Service{
		external: external,
		parks:    parks,
		matcher:  m,
		cache:    newResultCache(),
	}
	s.pipeline = enrich.NewPipeline(
		enrich.NewStage(s.attachDistance, s.matchPark),
	)
	return s
}

// Search returns the merged place list for a category around the user
// location. Results come back in the external search's order, each carrying
// the distance from the user, and — for categories with a curated counterpart
// — the facility bundle of their reconciled record. Repeated searches from
// near-identical locations are served from the cache.
func (s *Service) Search(ctx context.Context, category models.Category, lat, lng float64, radius int) ([]models.Place, error) {
	if radius <= 0 {
		radius = DefaultRadius
	}

	key := cacheKey(category, lat, lng)
	if cached, ok := s.cache.get(key); ok {
		return withUserDistance(cached, lat, lng), nil
	}

	places, err := s.external.Search(ctx, category, lat, lng, radius)
	if err != nil {
		return nil, fmt.Errorf("external place search failed: %w", err)
	}

	var candidates []models.UrbanPark
	if category == models.CategoryPark {
		candidates, err = s.parks.AllWithCoordinates(ctx)
		if err != nil {
			// Enrichment is a non-essential enhancement: degrade to
			// external-only results instead of failing the search.
			log.Printf("Curated store unavailable, serving external-only results: %v", err)
			candidates = nil
		}
	}

	items := make([]*placeItem, len(places))
	var wg sync.WaitGroup
	for i, place := range places {
		items[i] = &placeItem{
			place:      place,
			userLat:    lat,
			userLng:    lng,
			candidates: candidates,
		}
		wg.Add(1)
		go func(item *placeItem) {
			defer wg.Done()
			s.pipeline.Apply(ctx, item)
		}(items[i])
	}
	wg.Wait()

	results := make([]models.Place, len(items))
	for i, item := range items {
		place := item.place
		place.Distance = item.distance
		if item.match != nil {
			bundle := item.match.Facilities
			place.Facilities = &bundle
		}
		results[i] = place
	}

	s.cache.set(key, results)
	// Hand the caller its own copy; the cached slice must not be reachable
	// through the return value.
	return withUserDistance(results, lat, lng), nil
}

// attachDistance computes the user-to-place distance for every result,
// matched or not.
func (s *Service) attachDistance(_ context.Context, item *placeItem) error {
	distance := geo.Distance(item.userLat, item.userLng, item.place.Lat, item.place.Lng)
	item.distance = &distance
	return nil
}

// matchPark reconciles the place against the curated candidate set. A nil
// match is the expected outcome for most places.
func (s *Service) matchPark(_ context.Context, item *placeItem) error {
	if len(item.candidates) == 0 {
		return nil
	}
	item.match = s.matcher.FindMatch(item.place, item.candidates)
	return nil
}

// GetPark looks a curated park up by registry ID and returns it as a Place,
// or nil when it does not exist or carries no coordinates.
func (s *Service) GetPark(ctx context.Context, id string) (*models.Place, error) {
	park, err := s.parks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("park lookup failed: %w", err)
	}
	if park == nil || !park.HasCoordinates() {
		return nil, nil
	}
	place := curatedPlace(*park, 0)
	return &place, nil
}

// CuratedOptions filter a curated-only radius search.
type CuratedOptions struct {
	Lat    float64
	Lng    float64
	Radius int // meters; DefaultRadius when <= 0
	Limit  int // max results; 50 when <= 0

	ParkType      string
	HasPlayground *bool
	HasGym        *bool
	HasToilet     *bool
	HasParking    *bool
}

// SearchCurated lists curated parks around a location, distance-sorted, with
// optional park-type and facility filters. It serves list views that do not
// involve the external search at all.
func (s *Service) SearchCurated(ctx context.Context, opts CuratedOptions) ([]models.Place, error) {
	if opts.Radius <= 0 {
		opts.Radius = DefaultRadius
	}
	if opts.Limit <= 0 {
		opts.Limit = 50
	}

	parks, err := s.parks.AllWithCoordinates(ctx)
	if err != nil {
		return nil, fmt.Errorf("curated park search failed: %w", err)
	}

	var places []models.Place
	for _, park := range parks {
		if !park.HasCoordinates() {
			continue
		}
		if opts.ParkType != "" && park.ParkType != opts.ParkType {
			continue
		}
		if opts.HasPlayground != nil && park.Flags.HasPlayground != *opts.HasPlayground {
			continue
		}
		if opts.HasGym != nil && park.Flags.HasGym != *opts.HasGym {
			continue
		}
		if opts.HasToilet != nil && park.Flags.HasToilet != *opts.HasToilet {
			continue
		}
		if opts.HasParking != nil && park.Flags.HasParking != *opts.HasParking {
			continue
		}

		distance := geo.Distance(opts.Lat, opts.Lng, *park.Lat, *park.Lng)
		if distance > float64(opts.Radius) {
			continue
		}
		places = append(places, curatedPlace(park, distance))
	}

	sort.Slice(places, func(i, j int) bool {
		return *places[i].Distance < *places[j].Distance
	})
	if len(places) > opts.Limit {
		places = places[:opts.Limit]
	}
	return places, nil
}

// curatedPlace converts a registry record into the unified Place shape.
// Callers must only pass records with coordinates.
func curatedPlace(park models.UrbanPark, distance float64) models.Place {
	place := models.Place{
		ID:       park.ID,
		Name:     park.Name,
		Lat:      *park.Lat,
		Lng:      *park.Lng,
		Address:  park.Address(),
		Category: models.CategoryPark,
		Source:   models.SourceCurated,
		Distance: &distance,
		Tags:     park.Tags(),
	}
	if park.Phone != nil {
		place.Phone = *park.Phone
	}
	return place
}

// withUserDistance re-derives per-user distances for cached results. The
// cache key rounds the location to 4 decimals, so cached entries can serve
// users standing a few meters apart.
func withUserDistance(places []models.Place, lat, lng float64) []models.Place {
	out := make([]models.Place, len(places))
	for i, place := range places {
		distance := geo.Distance(lat, lng, place.Lat, place.Lng)
		place.Distance = &distance
		out[i] = place
	}
	return out
}
