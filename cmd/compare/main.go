package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"parkfinder/internal/env"
	"parkfinder/internal/models"
	"parkfinder/internal/storage"
	"parkfinder/pkg/kakaolocal"
)

// The compare command runs the external search and the curated registry side
// by side around one location and reports which pairs look like the same
// place. It exists to spot-check reconciliation quality against live data.
func main() {
	lat := flag.Float64("lat", 37.5889, "latitude of the comparison location")
	lng := flag.Float64("lng", 127.0833, "longitude of the comparison location")
	radius := flag.Int("radius", 2000, "search radius in meters")
	limit := flag.Int("limit", 10, "max records to compare from each source")
	flag.Parse()

	env.LoadEnv()
	ctx := context.Background()

	kakaoKey := env.MustGetEnv("KAKAO_REST_API_KEY")
	client := kakaolocal.NewClient(kakaoKey)

	places, err := client.Search(ctx, models.CategoryPark, *lat, *lng, *radius)
	if err != nil {
		log.Fatalf("External search failed: %v", err)
	}
	fmt.Printf("External search: %d parks within %dm of (%.4f, %.4f)\n", len(places), *radius, *lat, *lng)
	for i, place := range truncatePlaces(places, *limit) {
		fmt.Printf("  [%d] %s\n      %s\n      (%f, %f) id=%s\n", i+1, place.Name, place.Address, place.Lat, place.Lng, place.ID)
	}

	store, err := storage.NewParkStore(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	parks, err := store.AllWithCoordinates(ctx)
	if err != nil {
		log.Fatalf("Curated registry query failed: %v", err)
	}
	fmt.Printf("\nCurated registry: %d parks with coordinates\n", len(parks))

	type scoredMatch struct {
		place  models.Place
		park   models.UrbanPark
		report matchReport
	}
	var matches []scoredMatch
	for _, place := range truncatePlaces(places, *limit) {
		for _, park := range parks {
			report := scorePair(place, park)
			if report.IsMatch {
				matches = append(matches, scoredMatch{place: place, park: park, report: report})
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].report.Confidence > matches[j].report.Confidence
	})

	if len(matches) == 0 {
		fmt.Println("\nNo matching pairs found.")
		return
	}

	fmt.Printf("\nFound %d matching pairs:\n", len(matches))
	for i, m := range matches {
		fmt.Printf("\n[match %d] confidence %d%%\n", i+1, m.report.Confidence)
		fmt.Printf("  external: %s (id=%s)\n", m.place.Name, m.place.ID)
		fmt.Printf("  curated:  %s (id=%s)\n", m.park.Name, m.park.ID)
		fmt.Printf("  reasons:  %s\n", strings.Join(m.report.Reasons, ", "))
	}
}

func truncatePlaces(places []models.Place, limit int) []models.Place {
	if len(places) > limit {
		return places[:limit]
	}
	return places
}
