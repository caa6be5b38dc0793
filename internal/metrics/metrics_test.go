package metrics

import (
	"errors"
	"testing"
)

func TestClampPercent(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-10, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{140, 100},
	}
	for _, c := range cases {
		if got := ClampPercent(c.in); got != c.want {
			t.Errorf("ClampPercent(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestColorBucketBoundaries(t *testing.T) {
	cases := []struct {
		pct  int
		want Bucket
	}{
		{100, BucketGood},
		{80, BucketGood}, // lower edge inclusive
		{79, BucketWarn},
		{50, BucketWarn}, // lower edge inclusive
		{49, BucketBad},
		{0, BucketBad},
	}
	for _, c := range cases {
		if got := ColorBucket(c.pct); got != c.want {
			t.Errorf("ColorBucket(%d) = %q, want %q", c.pct, got, c.want)
		}
	}
}

func TestOccupancyPct(t *testing.T) {
	cases := []struct {
		count, capacity, want int
	}{
		{12, 15, 80},
		{15, 15, 100},
		{0, 15, 0},
		{1, 3, 33},  // 33.33 rounds down
		{1, 6, 17},  // 16.66 rounds up
		{5, 8, 63},  // 62.5 rounds half up
		{1, 200, 1}, // 0.5 rounds half up, never hides a non-empty class
	}
	for _, c := range cases {
		got, err := OccupancyPct(c.count, c.capacity)
		if err != nil {
			t.Fatalf("OccupancyPct(%d, %d) error: %v", c.count, c.capacity, err)
		}
		if got != c.want {
			t.Errorf("OccupancyPct(%d, %d) = %d, want %d", c.count, c.capacity, got, c.want)
		}
	}
}

func TestOccupancyPctZeroCapacity(t *testing.T) {
	_, err := OccupancyPct(5, 0)
	if !errors.Is(err, ErrZeroCapacity) {
		t.Fatalf("expected ErrZeroCapacity, got %v", err)
	}
}
