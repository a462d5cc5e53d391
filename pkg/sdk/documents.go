package docdex

import (
	"context"
	"fmt"
	"time"

	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
)

// DocumentService manages documents of a single owner.
type DocumentService struct {
	owner string
	svc   documentUseCase
	obs   *observer
}

// Upsert creates or updates a document. Returns true if created.
func (s *DocumentService) Upsert(ctx context.Context, doc Document) (created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("document_upsert", start, err) }()

	d, err := toInternalDocument(doc)
	if err != nil {
		return false, fmt.Errorf("upsert: %w", err)
	}
	created, err = s.svc.Upsert(ctx, s.owner, &d)
	if err != nil {
		return false, fmt.Errorf("upsert: %w", err)
	}
	return created, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (doc Document, err error) {
	start := time.Now()
	defer func() { s.obs.observe("document_get", start, err) }()

	d, err := s.svc.Get(ctx, s.owner, id)
	if err != nil {
		return Document{}, fmt.Errorf("get document: %w", err)
	}
	return fromInternalDocument(&d), nil
}

// List returns all of the owner's documents, sorted by ID.
func (s *DocumentService) List(ctx context.Context) (docs []Document, err error) {
	start := time.Now()
	defer func() { s.obs.observe("document_list", start, err) }()

	internal, err := s.svc.List(ctx, s.owner)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	out := make([]Document, len(internal))
	for i := range internal {
		out[i] = fromInternalDocument(&internal[i])
	}
	return out, nil
}

// Delete removes a document by ID.
func (s *DocumentService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("document_delete", start, err) }()

	if err = s.svc.Delete(ctx, s.owner, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func toInternalDocument(d Document) (domdoc.Document, error) {
	doc, err := domdoc.New(d.ID, d.DisplayName, d.Content)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("validate document: %w", err)
	}
	return doc, nil
}

func fromInternalDocument(d *domdoc.Document) Document {
	return Document{
		ID:          d.ID(),
		DisplayName: d.DisplayName(),
		Content:     d.Content(),
	}
}
