// Package match holds the transient per-mode hit produced by a single scan.
package match

// Hit is a single-mode relevance hit for one document. Hits live only for
// the duration of one search call; fusion turns them into result.Result.
type Hit struct {
	documentID  string
	relevance   float64
	context     string
	occurrences int
}

// NewHit creates a per-mode hit.
func NewHit(documentID string, relevance float64, context string, occurrences int) Hit {
	return Hit{
		documentID:  documentID,
		relevance:   relevance,
		context:     context,
		occurrences: occurrences,
	}
}

// DocumentID returns the matched document identifier.
func (h *Hit) DocumentID() string { return h.documentID }

// Relevance returns the mode-local relevance score.
// Lexical hits are in [0,1]; semantic hits carry the raw cosine similarity.
func (h *Hit) Relevance() float64 { return h.relevance }

// Context returns the excerpt surrounding the match.
func (h *Hit) Context() string { return h.context }

// Occurrences returns the number of captured match windows.
func (h *Hit) Occurrences() int { return h.occurrences }
