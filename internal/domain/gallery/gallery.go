package gallery

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

// SortCriteria orders a gallery listing.
type SortCriteria string

// Supported sort orders.
const (
	SortRecent     SortCriteria = "recent"
	SortPopularity SortCriteria = "popularity"
)

// IsValid returns true if the criteria is one of the defined constants.
func (s SortCriteria) IsValid() bool {
	switch s {
	case SortRecent, SortPopularity:
		return true
	default:
		return false
	}
}

// MaxPageSize caps the number of items one query may return.
const MaxPageSize = 100

// Item is a published gallery entry.
type Item struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	URL        string    `json:"url"`
	Popularity int       `json:"popularity"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Query selects a window of gallery items. StartIndex is inclusive and
// EndIndex exclusive.
type Query struct {
	SortCriteria SortCriteria `json:"sortCriteria"`
	Category     string       `json:"category,omitempty"`
	StartIndex   int          `json:"startIndex"`
	EndIndex     int          `json:"endIndex"`
}

// Validate checks the query window and sort order.
// Returns a *domain.ValidationError with per-field details, or nil.
func (q *Query) Validate() error {
	verr := domain.NewValidationError()

	if !q.SortCriteria.IsValid() {
		verr.Add("sortCriteria", "must be one of: recent, popularity")
	}
	if q.StartIndex < 0 {
		verr.Add("startIndex", "must not be negative")
	}
	if q.EndIndex < q.StartIndex {
		verr.Add("endIndex", "must not be less than startIndex")
	} else if q.EndIndex-q.StartIndex > MaxPageSize {
		verr.Add("endIndex", "window must not exceed 100 items")
	}
	if len(q.Category) > 64 || strings.ContainsAny(q.Category, "\r\n") {
		verr.Add("category", "is invalid")
	}

	return verr.ErrOrNil()
}

// Limit is the number of items the window spans.
func (q *Query) Limit() int {
	return q.EndIndex - q.StartIndex
}

// Page is one window of a gallery listing.
type Page struct {
	Items      []Item `json:"items"`
	Total      int    `json:"total"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}
