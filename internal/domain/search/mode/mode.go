package mode

// Mode is the retrieval strategy.
type Mode string

// Search mode constants.
const (
	// Keyword ranks by literal substring and per-word presence.
	Keyword Mode = "keyword"
	// Semantic ranks by embedding cosine similarity.
	Semantic Mode = "semantic"
	// Hybrid runs both and fuses per-document scores.
	Hybrid Mode = "hybrid"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Keyword || m == Semantic || m == Hybrid
}

// NeedsLexical reports whether the mode runs the lexical matcher.
func (m Mode) NeedsLexical() bool { return m == Keyword || m == Hybrid }

// NeedsSemantic reports whether the mode runs the vector scorer.
func (m Mode) NeedsSemantic() bool { return m == Semantic || m == Hybrid }
