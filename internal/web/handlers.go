package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"parkfinder/internal/models"
	"parkfinder/internal/search"
)

// Handler exposes the search service over HTTP. All endpoints speak JSON.
type Handler struct {
	Service *search.Service
}

// SearchPlaces handles GET /api/search?category=&lat=&lng=&radius=.
func (h *Handler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, lng, ok := parseLocation(w, query.Get("lat"), query.Get("lng"))
	if !ok {
		return
	}

	category := models.Category(query.Get("category"))
	if category == "" {
		category = models.CategoryPark
	}
	if _, known := models.CategoryLabels[category]; !known {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}

	radius := parseIntParam(query.Get("radius"), 0)

	places, err := h.Service.Search(r.Context(), category, lat, lng, radius)
	if err != nil {
		log.Printf("Search failed: %v", err)
		http.Error(w, "search failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, places)
}

// SearchCuratedParks handles GET /api/parks with location, radius, park-type
// and facility filters.
func (h *Handler) SearchCuratedParks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, lng, ok := parseLocation(w, query.Get("lat"), query.Get("lng"))
	if !ok {
		return
	}

	opts := search.CuratedOptions{
		Lat:           lat,
		Lng:           lng,
		Radius:        parseIntParam(query.Get("radius"), 0),
		Limit:         parseIntParam(query.Get("limit"), 0),
		ParkType:      query.Get("parkType"),
		HasPlayground: parseBoolParam(query.Get("hasPlayground")),
		HasGym:        parseBoolParam(query.Get("hasGym")),
		HasToilet:     parseBoolParam(query.Get("hasToilet")),
		HasParking:    parseBoolParam(query.Get("hasParking")),
	}

	places, err := h.Service.SearchCurated(r.Context(), opts)
	if err != nil {
		log.Printf("Curated search failed: %v", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}
	if places == nil {
		places = []models.Place{}
	}
	writeJSON(w, places)
}

// GetPark handles GET /api/parks/{id}.
func (h *Handler) GetPark(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	place, err := h.Service.GetPark(r.Context(), id)
	if err != nil {
		log.Printf("Park lookup failed: %v", err)
		http.Error(w, "lookup failed", http.StatusInternalServerError)
		return
	}
	if place == nil {
		http.Error(w, "park not found", http.StatusNotFound)
		return
	}
	writeJSON(w, place)
}

func parseLocation(w http.ResponseWriter, latStr, lngStr string) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		http.Error(w, "invalid lat parameter", http.StatusBadRequest)
		return 0, 0, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil || lng < -180 || lng > 180 {
		http.Error(w, "invalid lng parameter", http.StatusBadRequest)
		return 0, 0, false
	}
	return lat, lng, true
}

func parseIntParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func parseBoolParam(value string) *bool {
	if value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}
	return &b
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
