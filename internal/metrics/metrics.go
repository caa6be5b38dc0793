// Package metrics derives bounded visual values from raw entity numbers.
// Every progress bar and status color in the console goes through these
// functions, so the bucket thresholds live here and nowhere else.
package metrics

import (
	"errors"
	"math"
)

// ErrZeroCapacity is returned when an occupancy percentage is requested
// for a class with zero capacity. The division is undefined and must be
// reported, never coerced to 0% or 100%.
var ErrZeroCapacity = errors.New("metrics: occupancy undefined for zero capacity")

// Bucket is the qualitative classification of a percentage.
type Bucket string

const (
	BucketGood Bucket = "good"
	BucketWarn Bucket = "warn"
	BucketBad  Bucket = "bad"
)

// Trend is the direction badge on a dashboard stat card.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// ClampPercent bounds x into [0,100]. Values already in range pass
// through unchanged.
func ClampPercent(x int) int {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}

// ColorBucket partitions [0,100] into three contiguous buckets, inclusive
// on the lower edge of each: good ≥ 80 > warn ≥ 50 > bad.
func ColorBucket(pct int) Bucket {
	switch {
	case pct >= 80:
		return BucketGood
	case pct >= 50:
		return BucketWarn
	default:
		return BucketBad
	}
}

// OccupancyPct computes round-half-up(count/capacity × 100). A zero
// capacity returns ErrZeroCapacity.
func OccupancyPct(count, capacity int) (int, error) {
	if capacity == 0 {
		return 0, ErrZeroCapacity
	}
	return int(math.Floor(float64(count)/float64(capacity)*100 + 0.5)), nil
}
