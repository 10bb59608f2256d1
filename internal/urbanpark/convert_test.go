package urbanpark

import (
	"testing"
)

func TestConvert(t *testing.T) {
	raw := RawRecord{
		ManagementNo:          "  30170-00083 ",
		Name:                  "관저근린공원",
		ParkType:              "근린공원",
		RoadAddress:           "대전광역시 서구 관저중로 32",
		JibunAddress:          "대전광역시 서구 관저동 1996",
		Lat:                   "36.3012",
		Lng:                   "127.3405",
		Area:                  "15000.5",
		SportsFacilities:      "체력단련시설 3점",
		PlayFacilities:        "모래밭 1기+조합놀이 1기",
		ConvenienceFacilities: "화장실",
		EstablishedAt:         "2001-05-21",
		OrgName:               "대전광역시 서구청",
		Phone:                 "042-000-0000",
		DataDate:              "2023-07-01",
		ProviderCode:          "3710000",
		ProviderName:          "대전광역시",
	}

	park := Convert(raw)

	if park.ID != "30170-00083" {
		t.Errorf("ID = %q; want trimmed management number", park.ID)
	}
	if park.Name != "관저근린공원" || park.ParkType != "근린공원" {
		t.Errorf("name/type = %q/%q", park.Name, park.ParkType)
	}
	if park.Lat == nil || *park.Lat != 36.3012 || park.Lng == nil || *park.Lng != 127.3405 {
		t.Errorf("coordinates not parsed: %v %v", park.Lat, park.Lng)
	}
	if park.Area == nil || *park.Area != 15000.5 {
		t.Errorf("area not parsed: %v", park.Area)
	}
	if park.EstablishedAt == nil || *park.EstablishedAt != "2001-05-21" {
		t.Errorf("established_at = %v", park.EstablishedAt)
	}
	if !park.Flags.HasGym || !park.Flags.HasPlayground || !park.Flags.HasToilet {
		t.Errorf("facility flags not derived: %+v", park.Flags)
	}
	if park.Flags.HasParking || park.Flags.HasStageOrCulture {
		t.Errorf("unexpected flags set: %+v", park.Flags)
	}
	if park.CultureFacilities != nil {
		t.Errorf("empty facility field should be nil, got %v", *park.CultureFacilities)
	}
}

func TestConvertDegradesFieldByField(t *testing.T) {
	raw := RawRecord{
		ManagementNo:  "11000-00001",
		Name:          "이름공원",
		ParkType:      "   ",
		Lat:           "not-a-number",
		Lng:           "",
		Area:          "abc",
		EstablishedAt: "2020/01/01",
		DataDate:      "2020-13-45",
	}

	park := Convert(raw)

	if park.ParkType != DefaultParkType {
		t.Errorf("ParkType = %q; want default %q", park.ParkType, DefaultParkType)
	}
	if park.Lat != nil || park.Lng != nil || park.Area != nil {
		t.Errorf("invalid numerics should be nil: %v %v %v", park.Lat, park.Lng, park.Area)
	}
	if park.EstablishedAt != nil {
		t.Errorf("slash-formatted date should be rejected, got %v", *park.EstablishedAt)
	}
	if park.DataDate != nil {
		t.Errorf("impossible calendar date should be rejected, got %v", *park.DataDate)
	}
	if park.HasCoordinates() {
		t.Error("record without coordinates must be excluded from spatial queries")
	}
}

func TestConvertRejectsNonFiniteCoordinates(t *testing.T) {
	raw := RawRecord{
		ManagementNo: "11000-00002",
		Name:         "좌표깨진공원",
		Lat:          "NaN",
		Lng:          "127.0500",
	}

	park := Convert(raw)

	if park.Lat != nil {
		t.Errorf("Lat = %v; a NaN literal must convert to nil", *park.Lat)
	}
	if park.HasCoordinates() {
		t.Error("record with a non-finite coordinate must stay out of spatial matching")
	}
}

func TestConvertAll(t *testing.T) {
	file := &RawFile{Records: []RawRecord{
		{ManagementNo: "a", Name: "공원1"},
		{ManagementNo: "b", Name: "공원2"},
	}}
	parks := ConvertAll(file)
	if len(parks) != 2 {
		t.Fatalf("ConvertAll returned %d records; want 2", len(parks))
	}
	if parks[0].ID != "a" || parks[1].ID != "b" {
		t.Errorf("record order not preserved: %q %q", parks[0].ID, parks[1].ID)
	}
}
