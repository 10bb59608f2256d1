package models

// Category identifies the kind of place a search is about. Parks are the only
// category with a curated public-data counterpart today; the others are served
// from the external search alone.
type Category string

const (
	CategoryPark           Category = "park"
	CategoryMuseum         Category = "museum"
	CategoryLibrary        Category = "library"
	CategoryCulturalCenter Category = "cultural_center"
	CategoryEtc            Category = "etc"
)

// CategoryLabels maps each category to the Korean search keyword used against
// the external place search. Adding a new category only requires a new entry.
var CategoryLabels = map[Category]string{
	CategoryPark:           "공원",
	CategoryMuseum:         "미술관",
	CategoryLibrary:        "도서관",
	CategoryCulturalCenter: "문화센터",
	CategoryEtc:            "기타",
}

// Source records where a Place came from.
type Source string

const (
	SourceExternal Source = "external"
	SourceCurated  Source = "curated"
	SourceManual   Source = "manual"
)

// FacilityBundle carries the five raw facility text fields of a curated park
// record, merged into a matched Place. The fields are free text straight from
// the public dataset; nil means the dataset had nothing for that category.
type FacilityBundle struct {
	Sports      *string `json:"sports"`
	Play        *string `json:"play"`
	Convenience *string `json:"convenience"`
	Culture     *string `json:"culture"`
	Other       *string `json:"other"`
}

// Place is the unified output entity surfaced to callers. Lat/Lng are always
// present and valid for any place that leaves the search layer.
type Place struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Address  string   `json:"address"`
	Category Category `json:"category"`
	Source   Source   `json:"source"`

	// Distance is the distance from the user in meters, set by the search
	// layer. Nil when no user location was involved.
	Distance   *float64        `json:"distance,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	URL        string          `json:"url,omitempty"`
	Facilities *FacilityBundle `json:"facilities,omitempty"`
}

// HasCoordinates reports whether the place carries a plausible coordinate
// pair. Zero/zero is treated as absent; it is the null island sentinel of the
// external API for places without geocoding.
func (p Place) HasCoordinates() bool {
	if p.Lat == 0 && p.Lng == 0 {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
