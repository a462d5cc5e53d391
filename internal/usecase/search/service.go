package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/docdex/internal/domain"
	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
	"github.com/kailas-cloud/docdex/internal/domain/search/match"
	"github.com/kailas-cloud/docdex/internal/domain/search/mode"
	"github.com/kailas-cloud/docdex/internal/domain/search/request"
	"github.com/kailas-cloud/docdex/internal/domain/search/result"
)

// DefaultConcurrency bounds parallel per-document embedding calls.
const DefaultConcurrency = 8

// Service is the hybrid retrieval and relevance-ranking engine. It holds no
// cross-call state: all hits and fused results are call-local.
type Service struct {
	docs        DocumentStore
	embed       Embedder
	recorder    Recorder
	logger      *zap.Logger
	concurrency int
	timeout     time.Duration
}

// New creates a search service. recorder may be nil (recording disabled).
func New(docs DocumentStore, embed Embedder, recorder Recorder, logger *zap.Logger) *Service {
	return &Service{
		docs:        docs,
		embed:       embed,
		recorder:    recorder,
		logger:      logger,
		concurrency: DefaultConcurrency,
	}
}

// WithConcurrency sets the per-document embedding fan-out limit.
func (s *Service) WithConcurrency(n int) *Service {
	if n > 0 {
		s.concurrency = n
	}
	return s
}

// WithTimeout sets the overall per-call time budget. When exceeded the call
// fails with ErrDeadlineExceeded instead of returning partial results.
func (s *Service) WithTimeout(d time.Duration) *Service {
	s.timeout = d
	return s
}

// Search runs a query against the owner's documents in the requested mode
// and returns a ranked, deduplicated, limited outcome. The outcome is
// recorded best-effort; recorder failures never fail the response.
func (s *Service) Search(ctx context.Context, owner string, req *request.Request) (*result.Outcome, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	docs, err := s.docs.ListForOwner(ctx, owner, req.DocumentIDs())
	if err != nil {
		return nil, asDomainErr(fmt.Errorf("list documents: %w", err))
	}

	queryLower, words := normalize(req.Query())

	var lexHits map[string]match.Hit
	if req.Mode().NeedsLexical() {
		lexHits, err = s.scanLexical(ctx, docs, queryLower, words)
		if err != nil {
			return nil, asDomainErr(err)
		}
	}

	var semHits map[string]match.Hit
	var omitted int
	if req.Mode().NeedsSemantic() {
		semHits, omitted, err = s.scanSemantic(ctx, docs, req)
		if err != nil {
			return nil, asDomainErr(err)
		}
	}

	ranked := rank(fuse(docs, lexHits, semHits), req.Limit())

	outcome := &result.Outcome{
		Query:            req.Query(),
		Mode:             req.Mode(),
		DocumentsScanned: len(docs),
		Results:          ranked,
		Statistics:       result.Summarize(ranked, omitted),
	}

	s.record(ctx, owner, outcome)

	return outcome, nil
}

// scanLexical runs the lexical matcher over every document, checking for
// cancellation between documents.
func (s *Service) scanLexical(
	ctx context.Context, docs []domdoc.Document, queryLower string, words []string,
) (map[string]match.Hit, error) {
	hits := make(map[string]match.Hit, len(docs))
	for i := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if hit, ok := matchLexical(&docs[i], queryLower, words); ok {
			hits[docs[i].ID()] = hit
		}
	}
	return hits, nil
}

// scanSemantic embeds the query once, then fans out per-document scoring
// with bounded parallelism. A single document's embedding failure omits
// that document (counted in statistics); a dimension mismatch or a
// cancelled context aborts the whole call.
func (s *Service) scanSemantic(
	ctx context.Context, docs []domdoc.Document, req *request.Request,
) (map[string]match.Hit, int, error) {
	queryEmb, err := s.embed.Embed(ctx, req.Query())
	if err != nil {
		if req.Mode() == mode.Hybrid && ctx.Err() == nil {
			s.logger.Warn("Query embedding unavailable, degrading hybrid search to lexical only",
				zap.Error(err))
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("vectorize query: %w", err)
	}

	hits := make([]*match.Hit, len(docs))
	omittedFlags := make([]bool, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range docs {
		i := i
		g.Go(func() error {
			hit, ok, err := s.matchSemantic(gctx, &docs[i], queryEmb.Embedding)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				if errors.Is(err, domain.ErrVectorDimMismatch) {
					return err
				}
				s.logger.Warn("Document scoring failed, omitting from results",
					zap.String("document_id", docs[i].ID()),
					zap.Error(err))
				omittedFlags[i] = true
				return nil
			}
			if ok {
				hits[i] = &hit
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	m := make(map[string]match.Hit, len(docs))
	omitted := 0
	for i := range docs {
		if hits[i] != nil {
			m[docs[i].ID()] = *hits[i]
		}
		if omittedFlags[i] {
			omitted++
		}
	}
	return m, omitted, nil
}

// record persists the outcome best-effort. A cancelled call records nothing.
func (s *Service) record(ctx context.Context, owner string, outcome *result.Outcome) {
	if s.recorder == nil || ctx.Err() != nil {
		return
	}
	queryID, err := s.recorder.Record(ctx, owner, outcome)
	if err != nil {
		s.logger.Warn("Failed to record search outcome",
			zap.String("owner", owner),
			zap.Error(err))
		return
	}
	s.logger.Debug("Search outcome recorded",
		zap.String("owner", owner),
		zap.String("query_id", queryID),
		zap.Int("results", len(outcome.Results)))
}

// asDomainErr maps a blown time budget onto the domain sentinel.
func asDomainErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", domain.ErrDeadlineExceeded, err)
	}
	return err
}
