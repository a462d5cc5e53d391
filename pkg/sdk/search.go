package docdex

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/docdex/internal/domain/search/mode"
	"github.com/kailas-cloud/docdex/internal/domain/search/request"
	"github.com/kailas-cloud/docdex/internal/domain/search/result"
)

// SearchService runs searches against a single owner's documents.
type SearchService struct {
	owner string
	svc   searchUseCase
	obs   *observer
}

// Do runs a search with explicit parameters.
func (s *SearchService) Do(ctx context.Context, q SearchQuery) (out SearchOutcome, err error) {
	start := time.Now()
	defer func() { s.obs.observe("search", start, err) }()

	req, err := request.New(q.Query, mode.Mode(q.Mode), q.DocumentIDs, q.Limit)
	if err != nil {
		return SearchOutcome{}, fmt.Errorf("search: %w", err)
	}

	outcome, err := s.svc.Search(ctx, s.owner, &req)
	if err != nil {
		return SearchOutcome{}, fmt.Errorf("search: %w", err)
	}
	return fromInternalOutcome(outcome), nil
}

// Keyword runs a keyword search with default limit.
func (s *SearchService) Keyword(ctx context.Context, query string) (SearchOutcome, error) {
	return s.Do(ctx, SearchQuery{Query: query, Mode: ModeKeyword})
}

// Semantic runs a semantic search with default limit. Requires an embedder.
func (s *SearchService) Semantic(ctx context.Context, query string) (SearchOutcome, error) {
	return s.Do(ctx, SearchQuery{Query: query, Mode: ModeSemantic})
}

// Hybrid runs a hybrid search with default limit. Requires an embedder;
// degrades to keyword matching when the query cannot be vectorized.
func (s *SearchService) Hybrid(ctx context.Context, query string) (SearchOutcome, error) {
	return s.Do(ctx, SearchQuery{Query: query, Mode: ModeHybrid})
}

func fromInternalOutcome(o *result.Outcome) SearchOutcome {
	results := make([]SearchResult, len(o.Results))
	for i := range o.Results {
		results[i] = fromInternalResult(&o.Results[i])
	}
	return SearchOutcome{
		Query:            o.Query,
		Mode:             SearchMode(o.Mode),
		DocumentsScanned: o.DocumentsScanned,
		Results:          results,
		Statistics:       fromInternalStatistics(o.Statistics),
	}
}

func fromInternalResult(r *result.Result) SearchResult {
	out := SearchResult{
		DocumentID:      r.DocumentID(),
		DocumentName:    r.DocumentName(),
		Relevance:       r.Relevance(),
		Context:         r.Context(),
		OccurrenceCount: r.Occurrences(),
		MatchType:       MatchType(r.MatchType()),
	}
	if sim, ok := r.SemanticRelevance(); ok {
		out.SemanticRelevance = &sim
	}
	return out
}

func fromInternalStatistics(s result.Statistics) SearchStatistics {
	return SearchStatistics{
		DocumentsFound:            s.DocumentsFound,
		TotalMatches:              s.TotalMatches,
		AverageMatchesPerDocument: s.AverageMatchesPerDoc,
		DocumentsOmitted:          s.DocumentsOmitted,
	}
}
