package document

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/kailas-cloud/docdex/internal/db"
	"github.com/kailas-cloud/docdex/internal/domain"
)

// --- Upsert ---

func TestUpsert_Create(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()
	doc := testDocument(t)

	ms.existsFn = func(_ context.Context, key string) (bool, error) {
		if key != "docdex:alice:doc:doc-1" {
			t.Errorf("unexpected key: %s", key)
		}
		return false, nil
	}
	ms.jsonSetFn = func(_ context.Context, key, path string, data []byte) error {
		if key != "docdex:alice:doc:doc-1" {
			t.Errorf("unexpected key: %s", key)
		}
		if path != "$" {
			t.Errorf("unexpected path: %s", path)
		}
		var stored jsonDoc
		if err := json.Unmarshal(data, &stored); err != nil {
			t.Fatalf("stored data is not valid JSON: %v", err)
		}
		if stored.Content != "hello world" {
			t.Errorf("unexpected stored content: %q", stored.Content)
		}
		return nil
	}

	created, err := repo.Upsert(ctx, "alice", &doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected created=true for new doc")
	}
}

func TestUpsert_Update(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()
	doc := testDocument(t)

	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return true, nil }

	created, err := repo.Upsert(ctx, "alice", &doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("expected created=false for existing doc")
	}
}

func TestUpsert_JSONSetError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()
	doc := testDocument(t)

	ms.jsonSetFn = func(_ context.Context, _ string, _ string, _ []byte) error {
		return errors.New("OOM")
	}

	_, err := repo.Upsert(ctx, "alice", &doc)
	if err == nil {
		t.Fatal("expected error on JSON.SET failure")
	}
}

// --- Get ---

func TestGet_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	jsonResult := `[{"id":"doc-1","display_name":"Doc One","content":"hello world"}]`
	ms.jsonGetFn = func(_ context.Context, key string, _ ...string) ([]byte, error) {
		if key != "docdex:alice:doc:doc-1" {
			t.Errorf("unexpected key: %s", key)
		}
		return []byte(jsonResult), nil
	}

	doc, err := repo.Get(ctx, "alice", "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID() != "doc-1" {
		t.Fatalf("expected ID doc-1, got %s", doc.ID())
	}
	if doc.DisplayName() != "Doc One" {
		t.Fatalf("expected display name 'Doc One', got %s", doc.DisplayName())
	}
	if doc.Content() != "hello world" {
		t.Fatalf("expected content 'hello world', got %s", doc.Content())
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.jsonGetFn = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return nil, db.ErrKeyNotFound
	}

	_, err := repo.Get(ctx, "alice", "nonexistent")
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

// --- Delete ---

func TestDelete_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	deleted := false
	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return true, nil }
	ms.delFn = func(_ context.Context, key string) error {
		if key != "docdex:alice:doc:doc-1" {
			t.Errorf("unexpected key: %s", key)
		}
		deleted = true
		return nil
	}

	if err := repo.Delete(ctx, "alice", "doc-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected Del to be called")
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }

	err := repo.Delete(ctx, "alice", "ghost")
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

// --- ListForOwner ---

func TestListForOwner_ScansWhenNoFilter(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.scanFn = func(_ context.Context, pattern string) ([]string, error) {
		if pattern != "docdex:alice:doc:*" {
			t.Errorf("unexpected scan pattern: %s", pattern)
		}
		// Out of key order on purpose: the repo must sort.
		return []string{"docdex:alice:doc:b", "docdex:alice:doc:a"}, nil
	}
	ms.jsonGetMultiFn = func(_ context.Context, keys []string, _ ...string) ([][]byte, error) {
		if len(keys) != 2 || keys[0] != "docdex:alice:doc:a" || keys[1] != "docdex:alice:doc:b" {
			t.Errorf("expected sorted keys, got %v", keys)
		}
		return [][]byte{
			[]byte(`[{"id":"a","display_name":"A","content":"alpha"}]`),
			[]byte(`[{"id":"b","display_name":"B","content":"beta"}]`),
		}, nil
	}

	docs, err := repo.ListForOwner(ctx, "alice", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ID() != "a" || docs[1].ID() != "b" {
		t.Fatalf("unexpected order: %s, %s", docs[0].ID(), docs[1].ID())
	}
}

func TestListForOwner_FetchesByIDs(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	scanCalled := false
	ms.scanFn = func(_ context.Context, _ string) ([]string, error) {
		scanCalled = true
		return nil, nil
	}
	ms.jsonGetMultiFn = func(_ context.Context, keys []string, _ ...string) ([][]byte, error) {
		if len(keys) != 2 {
			t.Fatalf("expected 2 keys, got %v", keys)
		}
		return [][]byte{
			[]byte(`[{"id":"a","display_name":"A","content":"alpha"}]`),
			nil, // missing document
		}, nil
	}

	docs, err := repo.ListForOwner(ctx, "alice", []string{"a", "ghost"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scanCalled {
		t.Fatal("expected no scan when IDs are given")
	}
	if len(docs) != 1 {
		t.Fatalf("expected missing document skipped, got %d docs", len(docs))
	}
	if docs[0].ID() != "a" {
		t.Fatalf("unexpected document: %s", docs[0].ID())
	}
}

func TestListForOwner_Empty(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.scanFn = func(_ context.Context, _ string) ([]string, error) { return nil, nil }

	docs, err := repo.ListForOwner(ctx, "alice", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docs != nil {
		t.Fatalf("expected nil docs, got %v", docs)
	}
}
