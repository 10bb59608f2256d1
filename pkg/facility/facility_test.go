package facility

import (
	"reflect"
	"testing"

	"parkfinder/internal/models"
)

func str(s string) *string { return &s }

func TestBuildFlags(t *testing.T) {
	cases := []struct {
		name                                   string
		sports, play, convenience, culture, other *string
		want                                   models.FacilityFlags
	}{
		{
			name: "typical park",
			sports: str("체력단련시설 3점"),
			play:   str("모래밭 1기+조합놀이 1기"),
			convenience: str("화장실 1동, 주차장"),
			culture: str("야외무대"),
			other:   str("벤치 10개"),
			want: models.FacilityFlags{
				HasPlayground:     true,
				HasGym:            true,
				HasToilet:         true,
				HasParking:        true,
				HasBench:          true,
				HasStageOrCulture: true,
			},
		},
		{
			name: "all empty",
			want: models.FacilityFlags{},
		},
		{
			name:  "keywords not mutually exclusive within one field",
			other: str("그네 미끄럼틀 철봉 휴게의자"),
			want: models.FacilityFlags{
				HasPlayground: true,
				HasGym:        true,
				HasBench:      true,
			},
		},
		{
			name:        "whitespace-only fields skipped",
			sports:      str("   "),
			convenience: str("공중화장실"),
			want:        models.FacilityFlags{HasToilet: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildFlags(tc.sports, tc.play, tc.convenience, tc.culture, tc.other)
			if got != tc.want {
				t.Fatalf("BuildFlags() = %+v; want %+v", got, tc.want)
			}
		})
	}
}

func TestBuildFlagsFieldOrderIndependent(t *testing.T) {
	// The same keyword must produce the same flags regardless of which of the
	// five fields carries it.
	keyword := str("미끄럼틀")
	variants := []models.FacilityFlags{
		BuildFlags(keyword, nil, nil, nil, nil),
		BuildFlags(nil, keyword, nil, nil, nil),
		BuildFlags(nil, nil, keyword, nil, nil),
		BuildFlags(nil, nil, nil, keyword, nil),
		BuildFlags(nil, nil, nil, nil, keyword),
	}
	want := models.FacilityFlags{HasPlayground: true}
	for i, got := range variants {
		if got != want {
			t.Errorf("field %d: BuildFlags() = %+v; want %+v", i, got, want)
		}
	}
}

func TestParseCounts(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  map[string]int
	}{
		{"count with unit", "체력단련시설 3점", map[string]int{"체력단련시설": 3}},
		{"plus-separated tokens", "모래밭 1기+조합놀이 1기", map[string]int{"모래밭": 1, "조합놀이": 1}},
		{"and-others pattern", "시소 외3종", map[string]int{"시소": 3}},
		{"and-others no space", "화장실 외1종", map[string]int{"화장실": 1}},
		{"trailing count without unit", "야외체육시설3", map[string]int{"야외체육시설": 3}},
		{"name only counts one", "화장실", map[string]int{"화장실": 1}},
		{"repeated names accumulate", "그네 2기+그네 1기", map[string]int{"그네": 3}},
		{"zero count dropped", "볼라드 0개", map[string]int{}},
		{"empty text", "", map[string]int{}},
		{"blank tokens skipped", "시소 1기++ ", map[string]int{"시소": 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseCounts(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseCounts(%q) = %v; want %v", tc.input, got, tc.want)
			}
		})
	}
}
