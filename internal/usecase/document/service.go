package document

import (
	"context"
	"fmt"

	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
)

// Service handles document CRUD.
type Service struct {
	repo Repository
}

// New creates a document service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert creates or updates a document.
// Returns true if the document was created, false if updated.
func (s *Service) Upsert(ctx context.Context, owner string, doc *domdoc.Document) (bool, error) {
	created, err := s.repo.Upsert(ctx, owner, doc)
	if err != nil {
		return false, fmt.Errorf("upsert document: %w", err)
	}
	return created, nil
}

// Get retrieves a document by owner and ID.
func (s *Service) Get(ctx context.Context, owner, id string) (domdoc.Document, error) {
	doc, err := s.repo.Get(ctx, owner, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// List returns all of an owner's documents.
func (s *Service) List(ctx context.Context, owner string) ([]domdoc.Document, error) {
	docs, err := s.repo.ListForOwner(ctx, owner, nil)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Delete removes a document.
func (s *Service) Delete(ctx context.Context, owner, id string) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
