package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/docdex/internal/domain"
	"github.com/kailas-cloud/docdex/internal/domain/search/mode"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 4096
	DefaultLimit   = 20
	MaxLimit       = 100
)

// Request is a validated search query.
type Request struct {
	query       string
	searchMode  mode.Mode
	documentIDs map[string]struct{}
	limit       int
}

// New validates and normalizes search parameters.
// Defaults: mode=keyword, limit=20. A negative limit is rejected;
// zero means "use the default". documentIDs optionally restricts the scan.
func New(query string, m mode.Mode, documentIDs []string, limit int) (Request, error) {
	if strings.TrimSpace(query) == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrInvalidQuery)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	if m == "" {
		m = mode.Keyword
	}
	if !m.IsValid() {
		return Request{}, fmt.Errorf("invalid search mode: %q", m)
	}
	if limit < 0 {
		return Request{}, fmt.Errorf("%w: limit must be positive, got %d", domain.ErrInvalidLimit, limit)
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var idSet map[string]struct{}
	if len(documentIDs) > 0 {
		idSet = make(map[string]struct{}, len(documentIDs))
		for _, id := range documentIDs {
			if id != "" {
				idSet[id] = struct{}{}
			}
		}
	}

	return Request{query: query, searchMode: m, documentIDs: idSet, limit: limit}, nil
}

// Query returns the raw search query text.
func (r *Request) Query() string { return r.query }

// Mode returns the retrieval strategy.
func (r *Request) Mode() mode.Mode { return r.searchMode }

// Limit returns the maximum results to return.
func (r *Request) Limit() int { return r.limit }

// DocumentIDs returns the optional document ID filter (nil = all documents).
func (r *Request) DocumentIDs() []string {
	if r.documentIDs == nil {
		return nil
	}
	ids := make([]string, 0, len(r.documentIDs))
	for id := range r.documentIDs {
		ids = append(ids, id)
	}
	return ids
}

// WantsDocument reports whether the given document ID passes the filter.
// An empty filter admits every document.
func (r *Request) WantsDocument(id string) bool {
	if r.documentIDs == nil {
		return true
	}
	_, ok := r.documentIDs[id]
	return ok
}
