// Package matcher reconciles externally-sourced places with curated park
// records. Address text is the stronger signal when present: different sites
// can share a coordinate bucket, so coordinates alone are only trusted as a
// tightly-bounded fallback.
package matcher

import (
	"fmt"
	"math"
	"sort"

	"parkfinder/internal/models"
	"parkfinder/pkg/address"
	"parkfinder/pkg/geo"
)

// Config holds the tuning surface of the matcher. The defaults are the
// empirically chosen production values; they trade precision against recall
// and are deliberately not hard constants.
type Config struct {
	// MinAddressSimilarity is the exclusive lower bound a candidate's address
	// similarity must clear in stage 1.
	MinAddressSimilarity float64
	// TieBreakDelta is the similarity difference at or below which two
	// stage-1 candidates are considered tied and ranked by distance instead.
	TieBreakDelta float64
	// MaxCoordinateDistance bounds stage-2 coordinate matching, in meters.
	MaxCoordinateDistance float64
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		MinAddressSimilarity:  0.5,
		TieBreakDelta:         0.1,
		MaxCoordinateDistance: 500,
	}
}

// Result pairs an external place with the curated record it was reconciled
// to. Confidence is 0–100 and Reasons name the contributing signals, for
// explainability when a match is questioned.
type Result struct {
	Park       models.UrbanPark      `json:"park"`
	Confidence int                   `json:"confidence"`
	Reasons    []string              `json:"reasons"`
	Facilities models.FacilityBundle `json:"facilities"`
}

// Matcher finds the curated record for an external place. It borrows its
// inputs and never mutates them; a Matcher is stateless and safe for
// concurrent use.
type Matcher struct {
	cfg Config
}

// New returns a Matcher with the given configuration.
func New(cfg Config) *Matcher {
	return &Matcher{cfg: cfg}
}

type candidate struct {
	park       models.UrbanPark
	similarity float64
	distance   float64
}

// FindMatch reconciles one external place against the curated candidate set.
// Stage 1 ranks candidates by address similarity, breaking near-ties by
// distance. Stage 2, attempted only when stage 1 yields nothing, takes the
// nearest candidate within MaxCoordinateDistance. A nil result means no
// curated counterpart exists, which is a common, valid outcome.
func (m *Matcher) FindMatch(place models.Place, parks []models.UrbanPark) *Result {
	if place.Address != "" {
		if r := m.matchByAddress(place, parks); r != nil {
			return r
		}
	}
	if place.HasCoordinates() {
		if r := m.matchByCoordinates(place, parks); r != nil {
			return r
		}
	}
	return nil
}

func (m *Matcher) matchByAddress(place models.Place, parks []models.UrbanPark) *Result {
	var candidates []candidate
	for _, park := range parks {
		parkAddr := park.Address()
		if parkAddr == "" {
			continue
		}
		similarity := address.Similarity(place.Address, parkAddr)
		if similarity <= m.cfg.MinAddressSimilarity {
			continue
		}
		distance := math.Inf(1)
		if place.HasCoordinates() && park.HasCoordinates() {
			distance = geo.Distance(place.Lat, place.Lng, *park.Lat, *park.Lng)
		}
		candidates = append(candidates, candidate{park: park, similarity: similarity, distance: distance})
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if math.Abs(candidates[i].similarity-candidates[j].similarity) > m.cfg.TieBreakDelta {
			return candidates[i].similarity > candidates[j].similarity
		}
		return candidates[i].distance < candidates[j].distance
	})

	best := candidates[0]
	reasons := []string{fmt.Sprintf("address similarity %.2f", best.similarity)}
	if !math.IsInf(best.distance, 1) {
		reasons = append(reasons, fmt.Sprintf("coordinate distance %.0fm", best.distance))
	}
	return &Result{
		Park:       best.park,
		Confidence: int(math.Round(best.similarity * 100)),
		Reasons:    reasons,
		Facilities: best.park.FacilityBundle(),
	}
}

func (m *Matcher) matchByCoordinates(place models.Place, parks []models.UrbanPark) *Result {
	var candidates []candidate
	for _, park := range parks {
		if !park.HasCoordinates() {
			continue
		}
		distance := geo.Distance(place.Lat, place.Lng, *park.Lat, *park.Lng)
		if distance > m.cfg.MaxCoordinateDistance {
			continue
		}
		candidates = append(candidates, candidate{park: park, distance: distance})
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	best := candidates[0]
	return &Result{
		Park:       best.park,
		Confidence: distanceConfidence(best.distance),
		Reasons:    []string{fmt.Sprintf("coordinate distance %.0fm", best.distance)},
		Facilities: best.park.FacilityBundle(),
	}
}

// distanceConfidence maps a stage-2 match distance to a confidence score.
// Coordinates carry no corroborating text signal, so even a very close match
// stays below a perfect score.
func distanceConfidence(distance float64) int {
	switch {
	case distance <= 10:
		return 95
	case distance <= 50:
		return 90
	case distance <= 100:
		return 80
	case distance <= 250:
		return 70
	default:
		return 60
	}
}
