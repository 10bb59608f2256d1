// Package facility extracts structured facility information from the free
// text of the public park dataset. The source text has no single grammar, so
// both the flag derivation and the count parser are pattern collections tried
// in order.
package facility

import (
	"regexp"
	"strconv"
	"strings"

	"parkfinder/internal/models"
)

var (
	playgroundRe = regexp.MustCompile(`놀이대|놀이터|그네|미끄럼틀|모래밭|조합놀이|놀이시설|유희시설|시소`)
	gymRe        = regexp.MustCompile(`운동시설|운동기구|체력단련|헬스|철봉|평행봉|운동장|야외체육|싸이클링`)
	toiletRe     = regexp.MustCompile(`화장실|변소|공중화장실`)
	parkingRe    = regexp.MustCompile(`주차장|주차`)
	benchRe      = regexp.MustCompile(`벤치|의자|휴게`)
	cultureRe    = regexp.MustCompile(`야외무대|공연장|무대|전망대|문화시설|교양시설`)
)

// BuildFlags derives the six facility flags from the raw per-category facility
// texts. The fields are concatenated (empty ones skipped) and each flag is
// tested independently against its keyword set, so multiple flags can come
// from the same field and the result does not depend on which field a keyword
// appeared in.
func BuildFlags(sports, play, convenience, culture, other *string) models.FacilityFlags {
	var parts []string
	for _, field := range []*string{sports, play, convenience, culture, other} {
		if field != nil && strings.TrimSpace(*field) != "" {
			parts = append(parts, *field)
		}
	}
	blob := strings.Join(parts, " ")

	return models.FacilityFlags{
		HasPlayground:     playgroundRe.MatchString(blob),
		HasGym:            gymRe.MatchString(blob),
		HasToilet:         toiletRe.MatchString(blob),
		HasParking:        parkingRe.MatchString(blob),
		HasBench:          benchRe.MatchString(blob),
		HasStageOrCulture: cultureRe.MatchString(blob),
	}
}

var (
	// "시소 외3종", "조합놀이대외 3종" — a named facility and N other kinds.
	andOthersRe = regexp.MustCompile(`^(.+?)\s*외\s*(\d+)\s*종$`)
	// "체력단련시설 3점", "야외체육시설3" — trailing count with optional unit.
	countedRe = regexp.MustCompile(`^(.+?)\s*(\d+)\s*(점|기|개|종|대|주|시설)?$`)
	// Strip a trailing count+unit when falling back to name-only.
	trailingCountRe = regexp.MustCompile(`\s*\d+\s*(점|기|개|종|대|주|시설)$`)
)

// ParseCounts parses a facility text into facility-name → count. Tokens are
// separated by a literal "+". Each token is tried against the "외 N종"
// pattern, then the trailing-count pattern; a token without digits counts as
// one of the named facility. Counts accumulate across repeated names. Parsed
// counts of zero or less are dropped.
func ParseCounts(text string) map[string]int {
	counts := make(map[string]int)
	if strings.TrimSpace(text) == "" {
		return counts
	}

	for _, token := range strings.Split(text, "+") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if m := andOthersRe.FindStringSubmatch(token); m != nil {
			name := strings.TrimSpace(m[1])
			n, err := strconv.Atoi(m[2])
			if name != "" && err == nil && n > 0 {
				counts[name] += n
			}
			continue
		}

		if m := countedRe.FindStringSubmatch(token); m != nil {
			name := strings.TrimSpace(m[1])
			n, err := strconv.Atoi(m[2])
			if name != "" && err == nil && n > 0 {
				counts[name] += n
			}
			continue
		}

		if name := strings.TrimSpace(trailingCountRe.ReplaceAllString(token, "")); name != "" {
			counts[name]++
		}
	}
	return counts
}
