package search

import (
	"context"

	"github.com/kailas-cloud/docdex/internal/domain"
	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
	"github.com/kailas-cloud/docdex/internal/domain/search/result"
)

// DocumentStore lists an owner's documents for scanning (read-only).
type DocumentStore interface {
	// ListForOwner returns the owner's documents, optionally restricted to
	// the given IDs. A nil filter means all documents.
	ListForOwner(ctx context.Context, owner string, ids []string) ([]domdoc.Document, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Recorder persists a finished search (write-only, best-effort).
// Failures must not fail the search response.
type Recorder interface {
	Record(ctx context.Context, owner string, outcome *result.Outcome) (string, error)
}
