package main

import (
	"fmt"
	"strings"

	"parkfinder/internal/models"
	"parkfinder/pkg/geo"
)

// matchReport is the outcome of scoring one external place against one
// curated record with the additive scheme: coordinates up to 50 points,
// address up to 40, name up to 10.
type matchReport struct {
	IsMatch    bool
	Confidence int
	Reasons    []string
}

// scorePair rates how likely two records describe the same place. A pair
// counts as a match when the coordinates are within 50 meters, or when the
// combined score reaches 70.
func scorePair(place models.Place, park models.UrbanPark) matchReport {
	var reasons []string
	score := 0
	distance := -1.0

	if park.HasCoordinates() {
		distance = geo.Distance(place.Lat, place.Lng, *park.Lat, *park.Lng)
		switch {
		case distance < 10:
			score += 50
		case distance < 30:
			score += 45
		case distance < 50:
			score += 40
		case distance < 100:
			score += 30
		case distance < 200:
			score += 15
		}
		reasons = append(reasons, fmt.Sprintf("coordinate distance %s", geo.FormatDistance(distance)))
	} else {
		reasons = append(reasons, "no curated coordinates")
	}

	if addr := park.Address(); addr != "" && place.Address != "" {
		similarity := addressTokenOverlap(place.Address, addr)
		switch {
		case similarity >= 0.8:
			score += 40
		case similarity >= 0.6:
			score += 30
		case similarity >= 0.4:
			score += 20
		case similarity > 0:
			score += 10
		}
		reasons = append(reasons, fmt.Sprintf("address similarity %.0f%%", similarity*100))
	} else {
		reasons = append(reasons, "address missing on one side")
	}

	nameSim := nameSimilarity(place.Name, park.Name)
	switch {
	case nameSim > 0.9:
		score += 10
	case nameSim > 0.7:
		score += 7
	case nameSim > 0.5:
		score += 5
	case nameSim > 0:
		score += 2
	}
	reasons = append(reasons, fmt.Sprintf("name similarity %.0f%%", nameSim*100))

	if score > 100 {
		score = 100
	}
	isMatch := (distance >= 0 && distance < 50) || score >= 70

	return matchReport{IsMatch: isMatch, Confidence: score, Reasons: reasons}
}

// addressTokenOverlap counts whitespace tokens of one address that appear in
// (or contain) a token of the other, relative to the longer token list.
func addressTokenOverlap(a, b string) float64 {
	aTokens := strings.Fields(a)
	bTokens := strings.Fields(b)
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0
	}

	matching := 0
	for _, at := range aTokens {
		for _, bt := range bTokens {
			if strings.Contains(bt, at) || strings.Contains(at, bt) {
				matching++
				break
			}
		}
	}

	longest := len(aTokens)
	if len(bTokens) > longest {
		longest = len(bTokens)
	}
	return float64(matching) / float64(longest)
}

// nameSimilarity compares names after stripping whitespace, falling back to an
// edit-distance ratio when neither contains the other.
func nameSimilarity(a, b string) float64 {
	s1 := strings.ToLower(strings.Join(strings.Fields(a), ""))
	s2 := strings.ToLower(strings.Join(strings.Fields(b), ""))

	if s1 == s2 {
		return 1.0
	}
	if s1 == "" || s2 == "" {
		return 0
	}
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return 0.9
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	maxLen := len(r1)
	if len(r2) > maxLen {
		maxLen = len(r2)
	}
	return 1 - float64(levenshtein(r1, r2))/float64(maxLen)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if b[i-1] == a[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, curr[j-1]+1, prev[j]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}
