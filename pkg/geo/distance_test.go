package geo

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 37.5665, 126.9780, 37.5665, 126.9780, 0, 0.001},
		{"seoul city hall to gwanghwamun", 37.5663, 126.9779, 37.5759, 126.9769, 1070, 30},
		{"one degree of latitude", 37.0, 127.0, 38.0, 127.0, 111195, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			if math.Abs(got-tc.want) > tc.tolerance {
				t.Fatalf("Distance() = %.1f; want %.1f ± %.1f", got, tc.want, tc.tolerance)
			}
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := Distance(37.5665, 126.9780, 35.1796, 129.0756)
	b := Distance(35.1796, 129.0756, 37.5665, 126.9780)
	if a != b {
		t.Fatalf("Distance is not symmetric: %f vs %f", a, b)
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	// Three nearby points: direct distance must not exceed the detour.
	var (
		p1 = [2]float64{37.5665, 126.9780}
		p2 = [2]float64{37.5700, 126.9820}
		p3 = [2]float64{37.5650, 126.9850}
	)
	direct := Distance(p1[0], p1[1], p3[0], p3[1])
	detour := Distance(p1[0], p1[1], p2[0], p2[1]) + Distance(p2[0], p2[1], p3[0], p3[1])
	if direct > detour+0.01 {
		t.Fatalf("triangle inequality violated: direct %.2f > detour %.2f", direct, detour)
	}
}

func TestDistanceNaNPropagates(t *testing.T) {
	if got := Distance(math.NaN(), 126.9780, 37.5665, 126.9780); !math.IsNaN(got) {
		t.Fatalf("Distance with NaN input = %f; want NaN", got)
	}
}

func TestFormatDistance(t *testing.T) {
	cases := []struct {
		name   string
		meters float64
		want   string
	}{
		{"rounds meters", 123.4, "123m"},
		{"rounds half up", 999.5, "1000m"},
		{"just below boundary", 999, "999m"},
		{"exact boundary", 1000, "1.0km"},
		{"kilometers one decimal", 1550, "1.6km"},
		{"zero", 0, "0m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDistance(tc.meters); got != tc.want {
				t.Fatalf("FormatDistance(%v) = %q; want %q", tc.meters, got, tc.want)
			}
		})
	}
}
