package search

import (
	"math"
	"testing"

	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
	"github.com/kailas-cloud/docdex/internal/domain/search/match"
	"github.com/kailas-cloud/docdex/internal/domain/search/result"
)

func fuseDocs() []domdoc.Document {
	return []domdoc.Document{
		domdoc.Reconstruct("a", "Doc A", "content a"),
		domdoc.Reconstruct("b", "Doc B", "content b"),
		domdoc.Reconstruct("c", "Doc C", "content c"),
	}
}

func TestFuse_KeywordOnly(t *testing.T) {
	lex := map[string]match.Hit{
		"a": match.NewHit("a", 0.4, "ctx a", 4),
	}

	results := fuse(fuseDocs(), lex, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.MatchType() != result.TypeKeyword {
		t.Errorf("expected keyword match type, got %s", r.MatchType())
	}
	if r.Relevance() != 0.4 {
		t.Errorf("expected relevance 0.4, got %f", r.Relevance())
	}
	if _, ok := r.SemanticRelevance(); ok {
		t.Error("keyword-only result must not carry a semantic relevance")
	}
}

func TestFuse_DistinctModesPerDocument(t *testing.T) {
	lex := map[string]match.Hit{
		"a": match.NewHit("a", 0.3, "lexical ctx", 3),
	}
	sem := map[string]match.Hit{
		"b": match.NewHit("b", 0.72, "semantic ctx", 1),
	}

	results := fuse(fuseDocs(), lex, sem)
	if len(results) != 2 {
		t.Fatalf("expected exactly 2 results, got %d", len(results))
	}

	byID := make(map[string]result.Result)
	for _, r := range results {
		byID[r.DocumentID()] = r
	}
	ra, rb := byID["a"], byID["b"]
	if ra.MatchType() != result.TypeKeyword {
		t.Errorf("doc a: expected keyword, got %s", ra.MatchType())
	}
	if rb.MatchType() != result.TypeSemantic {
		t.Errorf("doc b: expected semantic, got %s", rb.MatchType())
	}
	if sim, ok := rb.SemanticRelevance(); !ok || sim != 0.72 {
		t.Errorf("doc b: expected semantic relevance 0.72, got %f (%v)", sim, ok)
	}
}

func TestFuse_HybridAveragesScores(t *testing.T) {
	lex := map[string]match.Hit{
		"a": match.NewHit("a", 0.2, "lexical ctx", 2),
	}
	sem := map[string]match.Hit{
		"a": match.NewHit("a", 0.8, "semantic ctx", 1),
	}

	results := fuse(fuseDocs(), lex, sem)
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 fused result, got %d", len(results))
	}
	r := results[0]
	if r.MatchType() != result.TypeHybrid {
		t.Errorf("expected hybrid, got %s", r.MatchType())
	}
	if math.Abs(r.Relevance()-0.5) > 1e-12 {
		t.Errorf("expected averaged relevance 0.5, got %f", r.Relevance())
	}
	if sim, ok := r.SemanticRelevance(); !ok || sim != 0.8 {
		t.Errorf("expected retained similarity 0.8, got %f (%v)", sim, ok)
	}
	if r.Context() != "lexical ctx" {
		t.Errorf("lexical context must win on fusion, got %q", r.Context())
	}
	if r.Occurrences() != 2 {
		t.Errorf("expected lexical occurrence count 2, got %d", r.Occurrences())
	}
}

func TestFuse_OrderIndependentByDocumentID(t *testing.T) {
	lex := map[string]match.Hit{
		"a": match.NewHit("a", 0.3, "la", 3),
		"c": match.NewHit("c", 0.1, "lc", 1),
	}
	sem := map[string]match.Hit{
		"a": match.NewHit("a", 0.9, "sa", 1),
		"b": match.NewHit("b", 0.5, "sb", 1),
	}

	first := fuse(fuseDocs(), lex, sem)
	second := fuse(fuseDocs(), lex, sem)

	if len(first) != len(second) {
		t.Fatalf("fusion not deterministic: %d vs %d results", len(first), len(second))
	}
	for i := range first {
		if first[i].DocumentID() != second[i].DocumentID() ||
			first[i].Relevance() != second[i].Relevance() ||
			first[i].MatchType() != second[i].MatchType() {
			t.Errorf("fusion not deterministic at index %d", i)
		}
	}

	seen := make(map[string]bool)
	for _, r := range first {
		if seen[r.DocumentID()] {
			t.Errorf("duplicate document %s in fused output", r.DocumentID())
		}
		seen[r.DocumentID()] = true
	}
}
