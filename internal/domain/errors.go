package domain

import "errors"

var (
	// ErrInvalidQuery signals an empty or whitespace-only search query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidLimit signals a non-positive result limit.
	ErrInvalidLimit = errors.New("invalid limit")
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrZeroVector signals a degenerate all-zero embedding.
	ErrZeroVector = errors.New("zero-magnitude vector")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrDeadlineExceeded signals that a search ran past its time budget.
	ErrDeadlineExceeded = errors.New("search deadline exceeded")
)
