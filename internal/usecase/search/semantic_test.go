package search

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/kailas-cloud/docdex/internal/domain"
)

func TestCosineSimilarity_Symmetric(t *testing.T) {
	a := []float32{0.3, -0.5, 0.8, 0.1}
	b := []float32{-0.2, 0.9, 0.4, -0.7}

	ab, err := cosineSimilarity(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := cosineSimilarity(b, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("similarity not symmetric: %f vs %f", ab, ba)
	}
}

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	v := []float32{0.6, 0.8}
	sim, err := cosineSimilarity(v, v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sim-1.0) > 1e-6 {
		t.Errorf("expected similarity 1.0, got %f", sim)
	}
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	sim, err := cosineSimilarity([]float32{1, 0}, []float32{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sim) > 1e-6 {
		t.Errorf("expected similarity 0, got %f", sim)
	}
}

func TestCosineSimilarity_DimensionMismatch(t *testing.T) {
	_, err := cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0})
	if !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Errorf("expected ErrVectorDimMismatch, got %v", err)
	}
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	_, err := cosineSimilarity([]float32{0, 0}, []float32{1, 0})
	if !errors.Is(err, domain.ErrZeroVector) {
		t.Errorf("expected ErrZeroVector, got %v", err)
	}
	_, err = cosineSimilarity([]float32{1, 0}, []float32{0, 0})
	if !errors.Is(err, domain.ErrZeroVector) {
		t.Errorf("expected ErrZeroVector, got %v", err)
	}
}

func TestSemanticExcerpt_ShortContent(t *testing.T) {
	content := "short document"
	if got := semanticExcerpt(content, 0.9); got != content {
		t.Errorf("expected whole content, got %q", got)
	}
}

func TestSemanticExcerpt_FixedWindowAndReproducible(t *testing.T) {
	content := strings.Repeat("abcdefghij", 100) // 1000 bytes

	first := semanticExcerpt(content, 0.42)
	second := semanticExcerpt(content, 0.42)
	if first != second {
		t.Error("excerpt must be reproducible for the same similarity")
	}
	if len(first) != semanticWindow {
		t.Errorf("expected window of %d bytes, got %d", semanticWindow, len(first))
	}

	wantStart := int(float64(len(content))*0.42) % (len(content) - semanticWindow)
	if first != content[wantStart:wantStart+semanticWindow] {
		t.Error("excerpt offset does not follow the proportional-jump formula")
	}
}
