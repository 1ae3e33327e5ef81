// Package query derives views from the user collection: substring
// filtering, match highlighting, sorting and counts. Nothing here mutates
// its input; the collection stays owned by the store.
package query

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
)

// SortKey selects the attribute records are ordered by.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByEmail     SortKey = "email"
	SortByCreatedAt SortKey = "createdAt"
	SortByUpdatedAt SortKey = "updatedAt"
)

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortKey maps user input to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortByName, nil
	case "email":
		return SortByEmail, nil
	case "created", "createdat":
		return SortByCreatedAt, nil
	case "updated", "updatedat":
		return SortByUpdatedAt, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// ParseOrder maps user input to a SortOrder. Empty input means ascending.
func ParseOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return OrderAsc, nil
	case "desc":
		return OrderDesc, nil
	default:
		return "", fmt.Errorf("unknown sort order %q", s)
	}
}

// Filter returns the records whose name or email contains the trimmed query
// as a case-insensitive substring. An empty (or whitespace-only) query
// returns the input slice unchanged, in the same order.
func Filter(users []models.User, query string) []models.User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return users
	}

	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// Segment is one run of text in a highlight result.
type Segment struct {
	Text      string `json:"text"`
	Highlight bool   `json:"isHighlight"`
}

// HighlightResult carries the text split around the first match of a query.
type HighlightResult struct {
	Highlighted bool      `json:"highlighted"`
	Parts       []Segment `json:"parts"`
}

// Highlight splits text into at most three segments around the first
// case-insensitive occurrence of the trimmed query. The matched segment
// preserves the original casing of text. When the query is empty or does
// not occur, the whole text comes back as a single non-highlighted segment.
func Highlight(text, query string) HighlightResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return HighlightResult{Parts: []Segment{{Text: text}}}
	}

	idx := strings.Index(strings.ToLower(text), q)
	if idx < 0 {
		return HighlightResult{Parts: []Segment{{Text: text}}}
	}

	parts := make([]Segment, 0, 3)
	if idx > 0 {
		parts = append(parts, Segment{Text: text[:idx]})
	}
	parts = append(parts, Segment{Text: text[idx : idx+len(q)], Highlight: true})
	if idx+len(q) < len(text) {
		parts = append(parts, Segment{Text: text[idx+len(q):]})
	}

	return HighlightResult{Highlighted: true, Parts: parts}
}

// collator state is not safe for concurrent use, so comparisons are
// serialized. Sorting happens on small, user-facing collections.
var (
	collMu   sync.Mutex
	collator = collate.New(language.Und)
)

func compareCollated(a, b string) int {
	collMu.Lock()
	defer collMu.Unlock()
	return collator.CompareString(a, b)
}

// Sort returns a new slice ordered by the given key. Name and email compare
// with locale-aware collation; timestamps compare numerically. Descending
// order negates the comparison. The input slice is left untouched.
func Sort(users []models.User, key SortKey, order SortOrder) []models.User {
	sorted := make([]models.User, len(users))
	copy(sorted, users)

	cmp := func(a, b models.User) int {
		var c int
		switch key {
		case SortByName:
			c = compareCollated(a.Name, b.Name)
		case SortByEmail:
			c = compareCollated(a.Email, b.Email)
		case SortByCreatedAt:
			c = a.CreatedAt.Compare(b.CreatedAt)
		case SortByUpdatedAt:
			c = a.UpdatedAt.Compare(b.UpdatedAt)
		}
		if order == OrderDesc {
			return -c
		}
		return c
	}

	slices.SortStableFunc(sorted, cmp)
	return sorted
}

// StatsFor recomputes the derived counts for the given collection and query.
func StatsFor(users []models.User, query string) models.Stats {
	return models.Stats{
		Total:    len(users),
		Filtered: len(Filter(users, query)),
	}
}
