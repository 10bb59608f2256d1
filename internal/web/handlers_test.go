package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"parkfinder/internal/matcher"
	"parkfinder/internal/models"
	"parkfinder/internal/search"
)

type stubSearcher struct {
	places []models.Place
}

func (s *stubSearcher) Search(_ context.Context, _ models.Category, _, _ float64, _ int) ([]models.Place, error) {
	return s.places, nil
}

type stubStore struct {
	parks []models.UrbanPark
}

func (s *stubStore) AllWithCoordinates(_ context.Context) ([]models.UrbanPark, error) {
	return s.parks, nil
}

func (s *stubStore) GetByID(_ context.Context, id string) (*models.UrbanPark, error) {
	for _, park := range s.parks {
		if park.ID == id {
			return &park, nil
		}
	}
	return nil, nil
}

func f64(v float64) *float64 { return &v }

func newTestRouter(searcher *stubSearcher, store *stubStore) *mux.Router {
	svc := search.NewService(searcher, store, matcher.New(matcher.DefaultConfig()))
	handler := &Handler{Service: svc}

	router := mux.NewRouter()
	router.HandleFunc("/api/search", handler.SearchPlaces).Methods(http.MethodGet)
	router.HandleFunc("/api/parks", handler.SearchCuratedParks).Methods(http.MethodGet)
	router.HandleFunc("/api/parks/{id}", handler.GetPark).Methods(http.MethodGet)
	return router
}

func TestSearchPlacesHandler(t *testing.T) {
	searcher := &stubSearcher{places: []models.Place{
		{ID: "1", Name: "남산공원", Lat: 37.5512, Lng: 126.9882, Category: models.CategoryPark, Source: models.SourceExternal},
	}}
	router := newTestRouter(searcher, &stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/search?category=park&lat=37.5665&lng=126.9780", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %q)", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q; want application/json", ct)
	}

	var places []models.Place
	if err := json.Unmarshal(rec.Body.Bytes(), &places); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(places) != 1 || places[0].Name != "남산공원" {
		t.Fatalf("got %v; want the one external place", places)
	}
	if places[0].Distance == nil {
		t.Error("Distance not set on search result")
	}
}

func TestSearchPlacesHandlerValidation(t *testing.T) {
	router := newTestRouter(&stubSearcher{}, &stubStore{})

	tests := []struct {
		name string
		url  string
		want int
	}{
		{"missing location", "/api/search?category=park", http.StatusBadRequest},
		{"latitude out of range", "/api/search?lat=91&lng=127", http.StatusBadRequest},
		{"unknown category", "/api/search?category=zoo&lat=37.5&lng=127", http.StatusBadRequest},
		{"default category", "/api/search?lat=37.5&lng=127", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d; want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestSearchCuratedParksHandler(t *testing.T) {
	store := &stubStore{parks: []models.UrbanPark{
		{
			ID: "P-1", Name: "어린이공원", ParkType: "어린이공원",
			Lat: f64(37.5670), Lng: f64(126.9785),
			Flags: models.FacilityFlags{HasPlayground: true},
		},
		{
			ID: "P-2", Name: "근린공원", ParkType: "근린공원",
			Lat: f64(37.5700), Lng: f64(126.9800),
		},
	}}
	router := newTestRouter(&stubSearcher{}, store)

	req := httptest.NewRequest(http.MethodGet, "/api/parks?lat=37.5665&lng=126.9780&hasPlayground=true", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %q)", rec.Code, rec.Body.String())
	}
	var places []models.Place
	if err := json.Unmarshal(rec.Body.Bytes(), &places); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(places) != 1 || places[0].ID != "P-1" {
		t.Fatalf("got %v; want only the playground park", places)
	}
}

func TestGetParkHandler(t *testing.T) {
	store := &stubStore{parks: []models.UrbanPark{
		{ID: "P-1", Name: "남산공원", ParkType: "근린공원", Lat: f64(37.5512), Lng: f64(126.9882)},
	}}
	router := newTestRouter(&stubSearcher{}, store)

	req := httptest.NewRequest(http.MethodGet, "/api/parks/P-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var place models.Place
	if err := json.Unmarshal(rec.Body.Bytes(), &place); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if place.Name != "남산공원" || place.Source != models.SourceCurated {
		t.Errorf("got %+v; want the curated park", place)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/parks/missing", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404 for an unknown park", rec.Code)
	}
}
