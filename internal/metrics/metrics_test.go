package metrics

import (
	"math"
	"testing"
)

func TestCalculateHIndex(t *testing.T) {
	tests := []struct {
		name      string
		citations []int
		want      int
	}{
		{
			name:      "classic example",
			citations: []int{10, 8, 5, 4, 3, 1},
			want:      4,
		},
		{
			name:      "all zero",
			citations: []int{0, 0, 0},
			want:      0,
		},
		{
			name:      "single highly cited",
			citations: []int{100},
			want:      1,
		},
		{
			name:      "uniform",
			citations: []int{3, 3, 3, 3, 3},
			want:      3,
		},
		{
			name:      "unsorted input",
			citations: []int{1, 10, 3, 8, 4, 5},
			want:      4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.citations, nil)
			if got.HIndex != tt.want {
				t.Errorf("HIndex = %d, want %d", got.HIndex, tt.want)
			}
		})
	}
}

func TestCalculateI10Index(t *testing.T) {
	tests := []struct {
		name      string
		citations []int
		want      int
	}{
		{
			name:      "two at or above ten",
			citations: []int{15, 10, 9, 2},
			want:      2,
		},
		{
			name:      "none",
			citations: []int{9, 5, 1},
			want:      0,
		},
		{
			name:      "all",
			citations: []int{10, 10, 10},
			want:      3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.citations, nil)
			if got.I10Index != tt.want {
				t.Errorf("I10Index = %d, want %d", got.I10Index, tt.want)
			}
		})
	}
}

func TestCalculateGIndex(t *testing.T) {
	tests := []struct {
		name      string
		citations []int
		want      int
	}{
		{
			// cumulative sums 25,33,38,41,44 vs squares 1,4,9,16,25
			name:      "descending with large head",
			citations: []int{25, 8, 5, 3, 3},
			want:      5,
		},
		{
			name:      "early exit stops at first failure",
			citations: []int{9, 1, 0, 0, 0, 0},
			want:      3, // 9>=1, 10>=4, 10>=9, then 10<16 stops
		},
		{
			name:      "all zero",
			citations: []int{0, 0},
			want:      0,
		},
		{
			name:      "single paper",
			citations: []int{4},
			want:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.citations, nil)
			if got.GIndex != tt.want {
				t.Errorf("GIndex = %d, want %d", got.GIndex, tt.want)
			}
		})
	}
}

func TestCalculateTotals(t *testing.T) {
	got := Calculate([]int{10, 5, 0}, nil)

	if got.TotalPublications != 3 {
		t.Errorf("TotalPublications = %d, want 3", got.TotalPublications)
	}
	if got.TotalCitations != 15 {
		t.Errorf("TotalCitations = %d, want 15", got.TotalCitations)
	}
	if got.AvgCitations != 5 {
		t.Errorf("AvgCitations = %f, want 5", got.AvgCitations)
	}
	if len(got.Percentiles) != len(DefaultPercentiles) {
		t.Errorf("got %d percentile points, want %d", len(got.Percentiles), len(DefaultPercentiles))
	}
}

func TestCalculateEmpty(t *testing.T) {
	got := Calculate(nil, nil)

	if got.TotalPublications != 0 || got.TotalCitations != 0 || got.AvgCitations != 0 {
		t.Errorf("expected zero totals, got %+v", got)
	}
	if got.HIndex != 0 || got.I10Index != 0 || got.GIndex != 0 {
		t.Errorf("expected zero indexes, got %+v", got)
	}
	if len(got.Percentiles) != 0 {
		t.Errorf("expected no percentile points, got %d", len(got.Percentiles))
	}
}

func TestPercentile(t *testing.T) {
	citations := []int{0, 10, 20, 30, 40}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 0},
		{25, 10},
		{50, 20},
		{75, 30},
		{100, 40},
		{10, 4},  // rank 0.4 between 0 and 10
		{90, 36}, // rank 3.6 between 30 and 40
	}

	for _, tt := range tests {
		got := Percentile(citations, tt.p)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Percentile(%v, %v) = %v, want %v", citations, tt.p, got, tt.want)
		}
	}
}

func TestPercentileMonotonic(t *testing.T) {
	citations := []int{3, 17, 0, 42, 8, 8, 1}

	prev := math.Inf(-1)
	for p := 0.0; p <= 100; p += 5 {
		v := Percentile(citations, p)
		if v < prev {
			t.Fatalf("Percentile not monotonic: p=%v gave %v after %v", p, v, prev)
		}
		prev = v
	}
}

func TestPercentileEmpty(t *testing.T) {
	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("Percentile(nil, 50) = %v, want 0", got)
	}
}
