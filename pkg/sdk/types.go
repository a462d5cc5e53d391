package docdex

import "time"

// SearchMode controls the retrieval strategy.
type SearchMode string

// Search mode constants.
const (
	ModeKeyword  SearchMode = "keyword"
	ModeSemantic SearchMode = "semantic"
	ModeHybrid   SearchMode = "hybrid"
)

// MatchType tags which retrieval modes contributed to a result.
type MatchType string

// Match type constants.
const (
	MatchKeyword  MatchType = "keyword"
	MatchSemantic MatchType = "semantic"
	MatchHybrid   MatchType = "hybrid"
)

// Document is an owner-scoped plain-text document.
type Document struct {
	ID          string
	DisplayName string
	Content     string
}

// SearchQuery describes one search call.
type SearchQuery struct {
	Query string
	Mode  SearchMode // defaults to keyword
	// DocumentIDs optionally restricts the scan to the given documents.
	DocumentIDs []string
	// Limit caps the number of results (default 20, max 100).
	Limit int
}

// SearchResult is a single ranked hit.
type SearchResult struct {
	DocumentID   string
	DocumentName string
	// Relevance is the fused score in [0, 1].
	Relevance float64
	// SemanticRelevance is the raw cosine similarity.
	// Nil when the semantic scorer did not contribute.
	SemanticRelevance *float64
	// Context is an excerpt around the best match.
	Context         string
	OccurrenceCount int
	MatchType       MatchType
}

// SearchStatistics summarizes a result set.
type SearchStatistics struct {
	DocumentsFound            int
	TotalMatches              int
	AverageMatchesPerDocument float64
	// DocumentsOmitted counts documents skipped because their
	// embedding could not be computed.
	DocumentsOmitted int
}

// SearchOutcome is the complete product of one search call.
type SearchOutcome struct {
	Query            string
	Mode             SearchMode
	DocumentsScanned int
	Results          []SearchResult
	Statistics       SearchStatistics
}

// QueryLogEntry is one recorded search, as returned by the query log.
type QueryLogEntry struct {
	ID               string
	RecordedAt       time.Time
	Query            string
	Mode             SearchMode
	DocumentsScanned int
	ResultCount      int
	Statistics       SearchStatistics
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok" or "degraded"
	Checks map[string]string // component -> "ok"/"error"
}
