package document

import (
	"encoding/json"
	"fmt"

	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
)

// jsonDoc is the stored JSON shape of a document.
type jsonDoc struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Content     string `json:"content"`
}

func buildJSONDoc(doc *domdoc.Document) jsonDoc {
	return jsonDoc{
		ID:          doc.ID(),
		DisplayName: doc.DisplayName(),
		Content:     doc.Content(),
	}
}

// parseJSONGetResult parses a JSON.GET "$" result, which wraps the document in an array.
func parseJSONGetResult(id string, raw []byte) (domdoc.Document, error) {
	var docs []jsonDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return domdoc.Document{}, fmt.Errorf("unmarshal document %s: %w", id, err)
	}
	if len(docs) == 0 {
		return domdoc.Document{}, fmt.Errorf("empty JSON.GET result for %s", id)
	}
	d := docs[0]
	return domdoc.Reconstruct(id, d.DisplayName, d.Content), nil
}
