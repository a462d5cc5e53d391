package docdex

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/docdex/internal/domain"
	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
	"github.com/kailas-cloud/docdex/internal/domain/search/mode"
	"github.com/kailas-cloud/docdex/internal/domain/search/request"
	"github.com/kailas-cloud/docdex/internal/domain/search/result"
	"github.com/kailas-cloud/docdex/internal/repository/searchlog"
	healthuc "github.com/kailas-cloud/docdex/internal/usecase/health"
)

func TestSearchService_Do_ConvertsOutcome(t *testing.T) {
	ranked := []result.Result{
		result.NewHybrid("doc-1", "Doc One", 0.8, 0.6, "...fox...", 3),
		result.NewKeyword("doc-2", "Doc Two", 0.5, "...dog...", 1),
	}
	svc := &SearchService{
		owner: "alice",
		svc: &mockSearchUC{
			searchFn: func(_ context.Context, owner string, req *request.Request) (*result.Outcome, error) {
				if owner != "alice" {
					t.Errorf("owner: got %s, want alice", owner)
				}
				if req.Mode() != mode.Hybrid {
					t.Errorf("mode: got %s, want hybrid", req.Mode())
				}
				return &result.Outcome{
					Query:            req.Query(),
					Mode:             req.Mode(),
					DocumentsScanned: 5,
					Results:          ranked,
					Statistics:       result.Summarize(ranked, 1),
				}, nil
			},
		},
	}

	out, err := svc.Hybrid(context.Background(), "fox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Mode != ModeHybrid {
		t.Errorf("mode: got %s, want %s", out.Mode, ModeHybrid)
	}
	if out.DocumentsScanned != 5 {
		t.Errorf("scanned: got %d, want 5", out.DocumentsScanned)
	}
	if len(out.Results) != 2 {
		t.Fatalf("results: got %d, want 2", len(out.Results))
	}

	first := out.Results[0]
	if first.DocumentID != "doc-1" || first.MatchType != MatchHybrid {
		t.Errorf("first result: got %+v", first)
	}
	if first.SemanticRelevance == nil || *first.SemanticRelevance != 0.6 {
		t.Errorf("semantic relevance: got %v, want 0.6", first.SemanticRelevance)
	}
	if out.Results[1].SemanticRelevance != nil {
		t.Errorf("keyword result must not carry semantic relevance")
	}
	if out.Statistics.DocumentsOmitted != 1 {
		t.Errorf("omitted: got %d, want 1", out.Statistics.DocumentsOmitted)
	}
}

func TestSearchService_Do_InvalidQuery(t *testing.T) {
	svc := &SearchService{
		owner: "alice",
		svc: &mockSearchUC{
			searchFn: func(_ context.Context, _ string, _ *request.Request) (*result.Outcome, error) {
				t.Fatal("use case must not be called for an invalid query")
				return nil, nil
			},
		},
	}

	_, err := svc.Keyword(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestSearchService_Do_SentinelPassthrough(t *testing.T) {
	svc := &SearchService{
		owner: "alice",
		svc: &mockSearchUC{
			searchFn: func(_ context.Context, _ string, _ *request.Request) (*result.Outcome, error) {
				return nil, domain.ErrEmbeddingProviderError
			},
		},
	}

	_, err := svc.Semantic(context.Background(), "fox")
	if !errors.Is(err, ErrEmbeddingProviderError) {
		t.Errorf("expected ErrEmbeddingProviderError through wrap, got %v", err)
	}
}

func TestDocumentService_Upsert(t *testing.T) {
	svc := &DocumentService{
		owner: "alice",
		svc: &mockDocumentUC{
			upsertFn: func(_ context.Context, owner string, doc *domdoc.Document) (bool, error) {
				if owner != "alice" {
					t.Errorf("owner: got %s, want alice", owner)
				}
				if doc.ID() != "doc-1" || doc.Content() != "hello" {
					t.Errorf("document: got %s/%s", doc.ID(), doc.Content())
				}
				return true, nil
			},
		},
	}

	created, err := svc.Upsert(context.Background(), Document{ID: "doc-1", Content: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true")
	}
}

func TestDocumentService_Upsert_InvalidDocument(t *testing.T) {
	svc := &DocumentService{
		owner: "alice",
		svc: &mockDocumentUC{
			upsertFn: func(_ context.Context, _ string, _ *domdoc.Document) (bool, error) {
				t.Fatal("use case must not be called for an invalid document")
				return false, nil
			},
		},
	}

	if _, err := svc.Upsert(context.Background(), Document{ID: "doc-1"}); err == nil {
		t.Error("expected validation error for empty content")
	}
}

func TestDocumentService_Get_NotFound(t *testing.T) {
	svc := &DocumentService{
		owner: "alice",
		svc: &mockDocumentUC{
			getFn: func(_ context.Context, _, _ string) (domdoc.Document, error) {
				return domdoc.Document{}, domain.ErrDocumentNotFound
			},
		},
	}

	_, err := svc.Get(context.Background(), "ghost")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDocumentService_List(t *testing.T) {
	svc := &DocumentService{
		owner: "alice",
		svc: &mockDocumentUC{
			listFn: func(_ context.Context, _ string) ([]domdoc.Document, error) {
				return []domdoc.Document{
					domdoc.Reconstruct("a", "Doc A", "alpha"),
					domdoc.Reconstruct("b", "Doc B", "beta"),
				}, nil
			},
		},
	}

	docs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("documents: got %d, want 2", len(docs))
	}
	if docs[0].ID != "a" || docs[0].DisplayName != "Doc A" || docs[0].Content != "alpha" {
		t.Errorf("first document: got %+v", docs[0])
	}
}

func TestQueryLogService_List(t *testing.T) {
	svc := &QueryLogService{
		owner: "alice",
		svc: &mockQueryLogUC{
			listFn: func(_ context.Context, owner string) ([]searchlog.Entry, error) {
				if owner != "alice" {
					t.Errorf("owner: got %s, want alice", owner)
				}
				return []searchlog.Entry{
					{ID: "q2", Query: "fox", Mode: "hybrid", Scanned: 5, Results: 2},
					{ID: "q1", Query: "dog", Mode: "keyword", Scanned: 5, Results: 1},
				}, nil
			},
		},
	}

	entries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
	if entries[0].ID != "q2" || entries[0].Mode != ModeHybrid || entries[0].ResultCount != 2 {
		t.Errorf("first entry: got %+v", entries[0])
	}
}

func TestClient_Health(t *testing.T) {
	c := &Client{
		healthSvc: &mockHealthUC{
			report: healthuc.Report{
				Status: healthuc.Degraded,
				Checks: map[string]healthuc.CheckResult{
					"database":  healthuc.CheckOK,
					"embedding": healthuc.CheckError,
				},
			},
		},
	}

	status := c.Health(context.Background())
	if status.Status != "degraded" {
		t.Errorf("status: got %s, want degraded", status.Status)
	}
	if status.Checks["embedding"] != "error" {
		t.Errorf("embedding check: got %s, want error", status.Checks["embedding"])
	}
}

func TestNoopEmbedder_ReturnsProviderError(t *testing.T) {
	var e noopEmbedder
	_, err := e.Embed(context.Background(), "fox")
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Errorf("expected ErrEmbeddingProviderError, got %v", err)
	}
}

func TestNew_RequiresAddress(t *testing.T) {
	if _, err := New(context.Background()); err == nil {
		t.Error("expected error when no database address configured")
	}
}
