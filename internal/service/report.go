package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/developerjhp/jirawaka/internal/domain"
)

// FormatReport renders a run summary as the multi-line completion report:
// date header, assignee-mismatch lines, one minutes line per aggregated
// ticket (skipped tickets included), the raw per-ticket seconds, and the run
// total. Pure and deterministic; the date comes from the summary, not a
// clock.
func FormatReport(summary *RunSummary) string {
	lines := []string{fmt.Sprintf("Today %s", summary.Date)}

	lines = append(lines, summary.AssigneeMessages()...)

	keys := make([]domain.TicketKey, 0, len(summary.Result.Aggregated))
	for key := range summary.Result.Aggregated {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		minutes := domain.Minutes(summary.Result.Aggregated[key])
		lines = append(lines, fmt.Sprintf("%s : %dm", key, minutes))
	}

	lines = append(lines,
		fmt.Sprintf("Per-ticket work time (seconds): %s", serializeDurations(summary.Result.Aggregated)),
		fmt.Sprintf("Total work time (minutes): %s", summary.TotalWorkTime()),
	)

	return strings.Join(lines, "\n")
}

// serializeDurations renders the aggregated seconds map as compact JSON with
// stable key order.
func serializeDurations(agg domain.AggregatedDuration) string {
	plain := make(map[string]float64, len(agg))
	for key, secs := range agg {
		plain[string(key)] = secs
	}
	data, err := json.Marshal(plain)
	if err != nil {
		return "{}"
	}
	return string(data)
}
