package result

// MatchType tags which retrieval modes contributed to a result.
type MatchType string

// Match type constants.
const (
	// TypeKeyword means only the lexical matcher hit.
	TypeKeyword MatchType = "keyword"
	// TypeSemantic means only the vector scorer hit.
	TypeSemantic MatchType = "semantic"
	// TypeHybrid means both modes hit and the scores were fused.
	TypeHybrid MatchType = "hybrid"
)

// Result is a fused, final search hit. At most one Result per document ID
// exists in the output of a single search call.
type Result struct {
	documentID        string
	documentName      string
	relevance         float64
	semanticRelevance float64
	hasSemantic       bool
	context           string
	occurrences       int
	matchType         MatchType
}

// NewKeyword creates a lexical-only result.
func NewKeyword(documentID, documentName string, relevance float64, context string, occurrences int) Result {
	return Result{
		documentID:   documentID,
		documentName: documentName,
		relevance:    relevance,
		context:      context,
		occurrences:  occurrences,
		matchType:    TypeKeyword,
	}
}

// NewSemantic creates a semantic-only result.
func NewSemantic(documentID, documentName string, similarity float64, context string, occurrences int) Result {
	return Result{
		documentID:        documentID,
		documentName:      documentName,
		relevance:         similarity,
		semanticRelevance: similarity,
		hasSemantic:       true,
		context:           context,
		occurrences:       occurrences,
		matchType:         TypeSemantic,
	}
}

// NewHybrid creates a fused result. Relevance is the arithmetic mean of the
// lexical score and the cosine similarity; the raw similarity is retained
// separately for transparency. Context keeps the lexical excerpt.
func NewHybrid(
	documentID, documentName string,
	lexicalRelevance, similarity float64,
	lexicalContext string, occurrences int,
) Result {
	return Result{
		documentID:        documentID,
		documentName:      documentName,
		relevance:         (lexicalRelevance + similarity) / 2,
		semanticRelevance: similarity,
		hasSemantic:       true,
		context:           lexicalContext,
		occurrences:       occurrences,
		matchType:         TypeHybrid,
	}
}

// DocumentID returns the document identifier.
func (r *Result) DocumentID() string { return r.documentID }

// DocumentName returns the human-readable document name.
func (r *Result) DocumentName() string { return r.documentName }

// Relevance returns the fused relevance score.
func (r *Result) Relevance() float64 { return r.relevance }

// SemanticRelevance returns the raw cosine similarity and whether the
// semantic scorer contributed to this result.
func (r *Result) SemanticRelevance() (float64, bool) {
	return r.semanticRelevance, r.hasSemantic
}

// Context returns the excerpt used for result preview.
func (r *Result) Context() string { return r.context }

// Occurrences returns the match window count carried into statistics.
func (r *Result) Occurrences() int { return r.occurrences }

// MatchType returns which modes produced this result.
func (r *Result) MatchType() MatchType { return r.matchType }
