package document

import (
	"context"

	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
)

// Repository is the consumer interface for document persistence.
type Repository interface {
	Upsert(ctx context.Context, owner string, doc *domdoc.Document) (bool, error)
	Get(ctx context.Context, owner, id string) (domdoc.Document, error)
	Delete(ctx context.Context, owner, id string) error
	ListForOwner(ctx context.Context, owner string, ids []string) ([]domdoc.Document, error)
}
