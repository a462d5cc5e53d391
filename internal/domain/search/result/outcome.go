package result

import "github.com/kailas-cloud/docdex/internal/domain/search/mode"

// Statistics summarizes a limited result set. Derived, never stored raw.
type Statistics struct {
	DocumentsFound       int     `json:"documents_found"`
	TotalMatches         int     `json:"total_matches"`
	AverageMatchesPerDoc float64 `json:"average_matches_per_document"`
	DocumentsOmitted     int     `json:"documents_omitted,omitempty"`
}

// Summarize computes statistics over the limited result set.
// AverageMatchesPerDoc is 0 when no documents were found.
func Summarize(results []Result, omitted int) Statistics {
	stats := Statistics{
		DocumentsFound:   len(results),
		DocumentsOmitted: omitted,
	}
	for i := range results {
		stats.TotalMatches += results[i].Occurrences()
	}
	if stats.DocumentsFound > 0 {
		stats.AverageMatchesPerDoc = float64(stats.TotalMatches) / float64(stats.DocumentsFound)
	}
	return stats
}

// Outcome is the complete product of one search call, handed to the
// recorder and the transport, then discarded by the engine.
type Outcome struct {
	Query            string
	Mode             mode.Mode
	DocumentsScanned int
	Results          []Result
	Statistics       Statistics
}
