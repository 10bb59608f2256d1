package kakaolocal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"parkfinder/internal/models"
)

type searchResponse struct {
	Documents []document `json:"documents"`
	Meta      meta       `json:"meta"`
}

type meta struct {
	TotalCount    int  `json:"total_count"`
	PageableCount int  `json:"pageable_count"`
	IsEnd         bool `json:"is_end"`
}

// document is one place in a Kakao Local keyword-search response. Coordinates
// arrive as strings; x is longitude and y is latitude.
type document struct {
	ID              string `json:"id"`
	PlaceName       string `json:"place_name"`
	X               string `json:"x"`
	Y               string `json:"y"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	CategoryName    string `json:"category_name"`
	Phone           string `json:"phone"`
	PlaceURL        string `json:"place_url"`
	Distance        string `json:"distance"`
}

func (d document) toPlace(category models.Category) (models.Place, error) {
	lat, err := strconv.ParseFloat(d.Y, 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return models.Place{}, fmt.Errorf("invalid latitude %q: %v", d.Y, err)
	}
	lng, err := strconv.ParseFloat(d.X, 64)
	if err != nil || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return models.Place{}, fmt.Errorf("invalid longitude %q: %v", d.X, err)
	}

	address := d.AddressName
	if address == "" {
		address = d.RoadAddressName
	}

	var tags []string
	if d.CategoryName != "" {
		tags = strings.Split(d.CategoryName, " > ")
	}

	return models.Place{
		ID:       d.ID,
		Name:     d.PlaceName,
		Lat:      lat,
		Lng:      lng,
		Address:  address,
		Category: category,
		Source:   models.SourceExternal,
		Tags:     tags,
		Phone:    d.Phone,
		URL:      d.PlaceURL,
	}, nil
}
