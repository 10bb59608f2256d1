package urbanpark

import (
	"strings"

	"parkfinder/internal/models"
	"parkfinder/pkg/facility"
)

// DefaultParkType is the sentinel classifier for records that carry none. The
// dataset's classifier values are free text, so the original Korean label is
// preserved rather than mapped to an enum.
const DefaultParkType = "기타"

// normalizeParkType keeps the raw classifier as-is, defaulting when absent.
func normalizeParkType(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultParkType
	}
	return trimmed
}

// Convert maps one raw dataset record to a normalized UrbanPark. Facility
// flags are recomputed from the raw facility texts on every conversion.
func Convert(raw RawRecord) models.UrbanPark {
	sports := NormalizeString(raw.SportsFacilities)
	play := NormalizeString(raw.PlayFacilities)
	convenience := NormalizeString(raw.ConvenienceFacilities)
	culture := NormalizeString(raw.CultureFacilities)
	other := NormalizeString(raw.OtherFacilities)

	park := models.UrbanPark{
		ParkType:     normalizeParkType(raw.ParkType),
		RoadAddress:  NormalizeString(raw.RoadAddress),
		JibunAddress: NormalizeString(raw.JibunAddress),
		Lat:          ParseFloat(raw.Lat),
		Lng:          ParseFloat(raw.Lng),
		Area:         ParseFloat(raw.Area),

		SportsFacilities:      sports,
		PlayFacilities:        play,
		ConvenienceFacilities: convenience,
		CultureFacilities:     culture,
		OtherFacilities:       other,

		Flags: facility.BuildFlags(sports, play, convenience, culture, other),

		EstablishedAt: ParseDate(raw.EstablishedAt),
		OrgName:       NormalizeString(raw.OrgName),
		Phone:         NormalizeString(raw.Phone),
		DataDate:      ParseDate(raw.DataDate),
		ProviderCode:  NormalizeString(raw.ProviderCode),
		ProviderName:  NormalizeString(raw.ProviderName),
	}

	if id := NormalizeString(raw.ManagementNo); id != nil {
		park.ID = *id
	}
	if name := NormalizeString(raw.Name); name != nil {
		park.Name = *name
	}
	return park
}

// ConvertAll converts every record of a dataset file. A nil file yields an
// empty slice.
func ConvertAll(file *RawFile) []models.UrbanPark {
	if file == nil {
		return nil
	}
	parks := make([]models.UrbanPark, 0, len(file.Records))
	for _, raw := range file.Records {
		parks = append(parks, Convert(raw))
	}
	return parks
}
