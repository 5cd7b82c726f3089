package domain

import "parthunter/internal/apperr"

// Table identifies a searchable document collection. The set is closed:
// anything outside it fails before retrieval.
type Table string

const (
	TableRepairs Table = "repairs"
	TableBlogs   Table = "blogs"
)

func Tables() []Table {
	return []Table{TableRepairs, TableBlogs}
}

func ParseTable(s string) (Table, error) {
	switch Table(s) {
	case TableRepairs:
		return TableRepairs, nil
	case TableBlogs:
		return TableBlogs, nil
	default:
		return "", &apperr.InvalidTableError{Table: s}
	}
}

func (t Table) String() string {
	return string(t)
}
