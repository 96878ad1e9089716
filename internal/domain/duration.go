package domain

import "math"

// DurationRecord is one raw time-tracking sample: the branch that was checked
// out (may be empty) and how long it was active, in seconds.
type DurationRecord struct {
	Branch  string
	Seconds float64
}

// AggregatedDuration maps ticket keys to accumulated seconds.
type AggregatedDuration map[TicketKey]float64

// TotalSeconds sums all buckets.
func (a AggregatedDuration) TotalSeconds() float64 {
	var total float64
	for _, secs := range a {
		total += secs
	}
	return total
}

// Aggregate buckets raw duration records per ticket key using the parser.
// Records whose branch names no ticket are dropped entirely: they contribute
// to no bucket and to no total, so unmatched time is invisible downstream.
func Aggregate(records []DurationRecord, parser *BranchTicketParser) AggregatedDuration {
	buckets := make(AggregatedDuration)
	for _, rec := range records {
		key, ok := parser.Parse(rec.Branch)
		if !ok {
			continue
		}
		buckets[key] += rec.Seconds
	}
	return buckets
}

// Minutes converts seconds to whole minutes, rounding half-up. The upstream
// tracker reports fractional seconds, so ties are possible; half-up is chosen
// and documented since exact tie behavior is not load-bearing.
func Minutes(seconds float64) int {
	return int(math.Round(seconds / 60))
}
