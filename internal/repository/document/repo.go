package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/docdex/internal/db"
	"github.com/kailas-cloud/docdex/internal/domain"
	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
)

// store is the consumer interface for documents (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, paths ...string) ([][]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Compile-time check: the db facade satisfies the consumer interface.
var _ store = (db.Store)(nil)

// Repo implements usecase/document.Repository and usecase/search.DocumentStore.
type Repo struct {
	store store
}

// New creates a document repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert creates or updates a document. Returns true if created.
func (r *Repo) Upsert(ctx context.Context, owner string, doc *domdoc.Document) (bool, error) {
	key := docKey(owner, doc.ID())
	data, err := json.Marshal(buildJSONDoc(doc))
	if err != nil {
		return false, fmt.Errorf("marshal document: %w", err)
	}

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return false, fmt.Errorf("json.set %s: %w", key, err)
	}

	return !exists, nil
}

// Get returns a document by ID.
func (r *Repo) Get(ctx context.Context, owner, id string) (domdoc.Document, error) {
	key := docKey(owner, id)
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domdoc.Document{}, domain.ErrDocumentNotFound
		}
		return domdoc.Document{}, fmt.Errorf("json.get %s: %w", key, err)
	}
	return parseJSONGetResult(id, raw)
}

// Delete removes a document.
func (r *Repo) Delete(ctx context.Context, owner, id string) error {
	key := docKey(owner, id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrDocumentNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// ListForOwner returns an owner's documents. When ids is non-empty, only those
// documents are fetched; IDs with no stored document are skipped silently.
// Results are ordered by document ID for deterministic scans.
func (r *Repo) ListForOwner(ctx context.Context, owner string, ids []string) ([]domdoc.Document, error) {
	var keys []string
	if len(ids) > 0 {
		keys = make([]string, 0, len(ids))
		for _, id := range ids {
			keys = append(keys, docKey(owner, id))
		}
	} else {
		scanned, err := r.store.Scan(ctx, docKey(owner, "*"))
		if err != nil {
			return nil, fmt.Errorf("scan documents for %s: %w", owner, err)
		}
		keys = scanned
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		return nil, nil
	}

	raws, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("json.get multi for %s: %w", owner, err)
	}

	docs := make([]domdoc.Document, 0, len(keys))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		doc, err := parseJSONGetResult(extractDocID(keys[i], owner), raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func docKey(owner, id string) string {
	return fmt.Sprintf("%s%s:doc:%s", domain.KeyPrefix, owner, id)
}

func extractDocID(key, owner string) string {
	prefix := fmt.Sprintf("%s%s:doc:", domain.KeyPrefix, owner)
	return strings.TrimPrefix(key, prefix)
}
