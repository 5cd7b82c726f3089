package domain

// NoRelevantDocuments is the literal sentinel downstream consumers key off.
// It must be preserved exactly when rendering an empty result.
const NoRelevantDocuments = "No relevant documents found."

// SearchResult is the tagged outcome of a filtered retrieval: either a
// non-empty ordered document set or the empty case. The sentinel string is
// only produced when rendering for the tool-dispatch boundary.
type SearchResult struct {
	docs []string
}

func Found(docs []string) SearchResult {
	return SearchResult{docs: docs}
}

func Empty() SearchResult {
	return SearchResult{}
}

func (r SearchResult) IsEmpty() bool {
	return len(r.docs) == 0
}

func (r SearchResult) Docs() []string {
	return r.docs
}

// Render serializes the result for the tool boundary, which always returns a
// non-empty sequence of strings.
func (r SearchResult) Render() []string {
	if r.IsEmpty() {
		return []string{NoRelevantDocuments}
	}
	return r.docs
}
