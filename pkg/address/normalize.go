// Package address normalizes Korean addresses and scores how likely two
// addresses refer to the same location. Normalization strips the top-level
// administrative region (시/도) so that "서울특별시 중랑구 면목동 137-14" and
// "서울 중랑구 면목동 137-14" compare equal.
package address

import (
	"regexp"
	"strings"
)

// regionPrefixes match a leading province or metro-city name together with its
// common suffix variants. Only applied at the start of the address.
var regionPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`^(?i)서울(특별시|시)?\s*`),
	regexp.MustCompile(`^(?i)경기(도|남도|북도)?\s*`),
	regexp.MustCompile(`^(?i)인천(광역시|시)?\s*`),
	regexp.MustCompile(`^(?i)부산(광역시|시)?\s*`),
	regexp.MustCompile(`^(?i)대구(광역시|시)?\s*`),
	regexp.MustCompile(`^(?i)광주(광역시|시)?\s*`),
	regexp.MustCompile(`^(?i)대전(광역시|시)?\s*`),
	regexp.MustCompile(`^(?i)울산(광역시|시)?\s*`),
	regexp.MustCompile(`^(?i)세종(특별자치시|시)?\s*`),
	regexp.MustCompile(`^(?i)강원(도|특별자치도)?\s*`),
	regexp.MustCompile(`^(?i)충청(남도|북도)?\s*`),
	regexp.MustCompile(`^(?i)전라(남도|북도)?\s*`),
	regexp.MustCompile(`^(?i)경상(남도|북도)?\s*`),
	regexp.MustCompile(`^(?i)제주(특별자치도|도)?\s*`),
}

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	dongLotRe     = regexp.MustCompile(`(\S+동)\s*(\d+(?:-\d+)?)`)
	dongRe        = regexp.MustCompile(`(\S+동)`)
	lotRe         = regexp.MustCompile(`(\d+(?:-\d+)?)`)
)

// Normalize strips the administrative region prefix, collapses internal
// whitespace and trims. Returns "" for empty or whitespace-only input.
func Normalize(addr string) string {
	normalized := strings.TrimSpace(addr)
	if normalized == "" {
		return ""
	}
	for _, re := range regionPrefixes {
		normalized = re.ReplaceAllString(normalized, "")
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(normalized, " "))
}

// ExtractNeighborhoodLot pulls the neighborhood (동) and lot number out of an
// address: "중랑구 면목동 137-14" yields "면목동 137-14". Tried in order:
// neighborhood followed by lot number, neighborhood alone, bare lot number.
// Falls back to the normalized full address when nothing matches.
func ExtractNeighborhoodLot(addr string) string {
	if strings.TrimSpace(addr) == "" {
		return ""
	}
	if m := dongLotRe.FindStringSubmatch(addr); m != nil {
		return m[1] + " " + m[2]
	}
	if m := dongRe.FindStringSubmatch(addr); m != nil {
		return m[1]
	}
	if m := lotRe.FindStringSubmatch(addr); m != nil {
		return m[1]
	}
	return Normalize(addr)
}

// Similarity scores two addresses in [0,1]. Exact normalized equality scores
// 1.0 and a substring relation 0.9, which together catch the common case of a
// differing region prefix. Matching neighborhood/lot tokens score 0.8 (equal)
// or 0.7 (substring). The last resort is the shared-word ratio of the two
// normalized forms. Returns 0 when either side is empty after normalization.
func Similarity(addr1, addr2 string) float64 {
	norm1 := Normalize(addr1)
	norm2 := Normalize(addr2)
	if norm1 == "" || norm2 == "" {
		return 0
	}

	if norm1 == norm2 {
		return 1.0
	}
	if strings.Contains(norm1, norm2) || strings.Contains(norm2, norm1) {
		return 0.9
	}

	token1 := ExtractNeighborhoodLot(norm1)
	token2 := ExtractNeighborhoodLot(norm2)
	if token1 != "" && token2 != "" {
		if token1 == token2 {
			return 0.8
		}
		if strings.Contains(token1, token2) || strings.Contains(token2, token1) {
			return 0.7
		}
	}

	words1 := strings.Fields(norm1)
	words2 := strings.Fields(norm2)
	common := 0
	for _, w := range words1 {
		for _, v := range words2 {
			if w == v {
				common++
				break
			}
		}
	}
	longer := len(words1)
	if len(words2) > longer {
		longer = len(words2)
	}
	return float64(common) / float64(longer)
}
