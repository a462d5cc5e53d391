package search

import (
	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
	"github.com/kailas-cloud/docdex/internal/domain/search/match"
	"github.com/kailas-cloud/docdex/internal/domain/search/result"
)

// fuse merges per-mode hits into at most one Result per document.
// Documents with hits in both modes become hybrid results: relevance is the
// arithmetic mean of the two scores and the lexical excerpt wins. Output
// order follows scan order, which keeps the later stable sort deterministic.
func fuse(docs []domdoc.Document, lexical, semantic map[string]match.Hit) []result.Result {
	results := make([]result.Result, 0, len(lexical)+len(semantic))

	for i := range docs {
		id := docs[i].ID()
		name := docs[i].DisplayName()

		lex, hasLex := lexical[id]
		sem, hasSem := semantic[id]

		switch {
		case hasLex && hasSem:
			results = append(results, result.NewHybrid(
				id, name, lex.Relevance(), sem.Relevance(), lex.Context(), lex.Occurrences(),
			))
		case hasLex:
			results = append(results, result.NewKeyword(
				id, name, lex.Relevance(), lex.Context(), lex.Occurrences(),
			))
		case hasSem:
			results = append(results, result.NewSemantic(
				id, name, sem.Relevance(), sem.Context(), sem.Occurrences(),
			))
		}
	}

	return results
}
