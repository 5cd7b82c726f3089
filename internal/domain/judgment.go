package domain

// Judgment is the outcome of grading one document against one query.
// It is built per (query, document) pair and consumed immediately.
type Judgment struct {
	Document   string
	Confidence float64
	Included   bool
}
