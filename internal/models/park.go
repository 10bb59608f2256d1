package models

// FacilityFlags are six independent booleans derived from the raw facility
// text of a park record. They are recomputed from the text at conversion time,
// never stored authoritatively.
type FacilityFlags struct {
	HasPlayground     bool `json:"has_playground"`
	HasGym            bool `json:"has_gym"`
	HasToilet         bool `json:"has_toilet"`
	HasParking        bool `json:"has_parking"`
	HasBench          bool `json:"has_bench"`
	HasStageOrCulture bool `json:"has_stage_or_culture"`
}

// UrbanPark is one row of the curated public-data park registry. Created by
// bulk import, immutable afterwards except for re-import. Text fields are nil
// when the dataset had no value; Lat/Lng are nil for records without usable
// coordinates, which excludes them from spatial matching.
type UrbanPark struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParkType string `json:"park_type"`

	RoadAddress  *string `json:"road_address"`
	JibunAddress *string `json:"jibun_address"`

	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
	Area *float64 `json:"area"`

	SportsFacilities      *string `json:"sports_facilities"`
	PlayFacilities        *string `json:"play_facilities"`
	ConvenienceFacilities *string `json:"convenience_facilities"`
	CultureFacilities     *string `json:"culture_facilities"`
	OtherFacilities       *string `json:"other_facilities"`

	Flags FacilityFlags `json:"flags"`

	EstablishedAt *string `json:"established_at"` // YYYY-MM-DD
	OrgName       *string `json:"org_name"`
	Phone         *string `json:"phone"`
	DataDate      *string `json:"data_date"` // YYYY-MM-DD
	ProviderCode  *string `json:"provider_code"`
	ProviderName  *string `json:"provider_name"`
}

// HasCoordinates reports whether the record can take part in spatial queries.
func (p UrbanPark) HasCoordinates() bool {
	return p.Lat != nil && p.Lng != nil
}

// Address returns the best available address of the record, preferring the
// road address over the lot-number (jibun) address. Empty when neither is set.
func (p UrbanPark) Address() string {
	if p.RoadAddress != nil {
		return *p.RoadAddress
	}
	if p.JibunAddress != nil {
		return *p.JibunAddress
	}
	return ""
}

// FacilityBundle collects the five raw facility text fields of the record.
func (p UrbanPark) FacilityBundle() FacilityBundle {
	return FacilityBundle{
		Sports:      p.SportsFacilities,
		Play:        p.PlayFacilities,
		Convenience: p.ConvenienceFacilities,
		Culture:     p.CultureFacilities,
		Other:       p.OtherFacilities,
	}
}

// Tags returns the Korean facility tags implied by the record's flags, used
// for list display and filtering.
func (p UrbanPark) Tags() []string {
	var tags []string
	if p.Flags.HasPlayground {
		tags = append(tags, "놀이시설")
	}
	if p.Flags.HasGym {
		tags = append(tags, "운동시설")
	}
	if p.Flags.HasToilet {
		tags = append(tags, "화장실")
	}
	if p.Flags.HasParking {
		tags = append(tags, "주차장")
	}
	if p.Flags.HasBench {
		tags = append(tags, "벤치")
	}
	if p.Flags.HasStageOrCulture {
		tags = append(tags, "문화시설")
	}
	return tags
}
