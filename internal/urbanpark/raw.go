// Package urbanpark converts raw rows of the national urban-park public
// dataset into normalized records. Conversion is total: malformed values
// degrade to nil or a default field by field, a record is never rejected as a
// whole.
package urbanpark

// RawRecord mirrors one record of the public dataset JSON. Every value is a
// string in the source file, including numbers and dates.
type RawRecord struct {
	ManagementNo string `json:"관리번호"`
	Name         string `json:"공원명"`
	ParkType     string `json:"공원구분"`
	RoadAddress  string `json:"소재지도로명주소"`
	JibunAddress string `json:"소재지지번주소"`
	Lat          string `json:"위도"`
	Lng          string `json:"경도"`
	Area         string `json:"공원면적"`

	SportsFacilities      string `json:"공원보유시설(운동시설)"`
	PlayFacilities        string `json:"공원보유시설(유희시설)"`
	ConvenienceFacilities string `json:"공원보유시설(편익시설)"`
	CultureFacilities     string `json:"공원보유시설(교양시설)"`
	OtherFacilities       string `json:"공원보유시설(기타시설)"`

	EstablishedAt string `json:"지정고시일"`
	OrgName       string `json:"관리기관명"`
	Phone         string `json:"전화번호"`
	DataDate      string `json:"데이터기준일자"`
	ProviderCode  string `json:"제공기관코드"`
	ProviderName  string `json:"제공기관명"`
}

// RawFile is the top-level structure of a dataset file.
type RawFile struct {
	Fields []struct {
		ID string `json:"id"`
	} `json:"fields"`
	Records []RawRecord `json:"records"`
}
