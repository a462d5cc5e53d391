package document

import (
	"fmt"
	"regexp"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxContentSize is the maximum document content size in bytes.
const MaxContentSize = 163840 // 160KB

// Document is an ingested text document (immutable value object).
// Content is assumed to be plain text extracted by the ingestion side.
type Document struct {
	id          string
	displayName string
	content     string
}

// New validates and creates a Document.
// ID: ^[a-zA-Z0-9_-]+$, 1-256 chars. Content: non-empty, max 160KB.
// DisplayName falls back to the ID when empty.
func New(id, displayName, content string) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if len(id) > 256 {
		return Document{}, fmt.Errorf("document ID too long (max 256)")
	}
	if !idRegex.MatchString(id) {
		return Document{}, fmt.Errorf("document ID must be alphanumeric with underscores and hyphens")
	}
	if content == "" {
		return Document{}, fmt.Errorf("content is required")
	}
	if len(content) > MaxContentSize {
		return Document{}, fmt.Errorf("content too large (max %d bytes)", MaxContentSize)
	}
	if displayName == "" {
		displayName = id
	}

	return Document{id: id, displayName: displayName, content: content}, nil
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(id, displayName, content string) Document {
	return Document{id: id, displayName: displayName, content: content}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// DisplayName returns the human-readable document name.
func (d *Document) DisplayName() string { return d.displayName }

// Content returns the plain-text document content.
func (d *Document) Content() string { return d.content }
