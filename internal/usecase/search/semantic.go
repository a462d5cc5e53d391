package search

import (
	"context"
	"fmt"
	"math"

	"github.com/kailas-cloud/docdex/internal/domain"
	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
	"github.com/kailas-cloud/docdex/internal/domain/search/match"
)

const (
	// semanticFloor is the minimum cosine similarity for a semantic hit.
	semanticFloor = 0.3
	// embedContentCap bounds how much document text is embedded per call.
	embedContentCap = 8000
	// semanticWindow is the fixed excerpt length for semantic hits.
	semanticWindow = 200
)

// cosineSimilarity computes dot(a,b) / (|a|·|b|).
// Vectors must share a dimension; zero-magnitude vectors are invalid input.
func cosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", domain.ErrVectorDimMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, domain.ErrZeroVector
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// matchSemantic embeds the document (first 8000 bytes) and emits a hit when
// cosine similarity against the query vector clears the floor.
func (s *Service) matchSemantic(
	ctx context.Context, doc *domdoc.Document, queryVec []float32,
) (match.Hit, bool, error) {
	text := doc.Content()
	if len(text) > embedContentCap {
		text = text[:embedContentCap]
	}

	emb, err := s.embed.Embed(ctx, text)
	if err != nil {
		return match.Hit{}, false, fmt.Errorf("embed document %s: %w", doc.ID(), err)
	}

	sim, err := cosineSimilarity(queryVec, emb.Embedding)
	if err != nil {
		return match.Hit{}, false, fmt.Errorf("score document %s: %w", doc.ID(), err)
	}

	if sim <= semanticFloor {
		return match.Hit{}, false, nil
	}

	return match.NewHit(doc.ID(), sim, semanticExcerpt(doc.Content(), sim), 1), true, nil
}

// semanticExcerpt picks a reproducible window at an offset proportional to
// the similarity. This is a placeholder heuristic, not an alignment: it does
// not locate the actually-similar passage.
// TODO: replace with the best-scoring chunk span once chunk-level embeddings land.
func semanticExcerpt(content string, similarity float64) string {
	if len(content) <= semanticWindow {
		return content
	}
	start := int(float64(len(content))*similarity) % (len(content) - semanticWindow)
	if start < 0 {
		start = 0
	}
	return content[start : start+semanticWindow]
}
