package docs

import (
	"sort"
	"strings"
)

// SortKey selects the field a document listing is ordered by.
type SortKey string

const (
	SortByName SortKey = "name"
	SortByDate SortKey = "date"
	SortBySize SortKey = "size"
	SortByType SortKey = "type"
)

// SortOrder is the listing direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortKeys lists the selectable sort keys in cycle order.
var SortKeys = []SortKey{SortByName, SortByDate, SortBySize, SortByType}

// Filter describes the ephemeral view criteria over a document collection.
// It is UI state only and never persisted.
type Filter struct {
	Search    string
	Type      string
	SortBy    SortKey
	SortOrder SortOrder
}

// DefaultFilter matches the initial view: everything, newest-first ordering.
func DefaultFilter() Filter {
	return Filter{
		Type:      "all",
		SortBy:    SortByDate,
		SortOrder: OrderDesc,
	}
}

// Apply returns the filtered, sorted view of docs. It is a pure function of
// its inputs: the input slice is not mutated, the sort is stable, and an
// empty search term passes every document through in order.
//
// The sort comparator reproduces the backend UI it replaces: "name" compares
// lowercased names, "date" compares lowercased content (there is no client
// date field to compare), and the remaining keys compare equal so the input
// order survives.
func (f Filter) Apply(documents []Document) []Document {
	out := make([]Document, 0, len(documents))
	search := strings.ToLower(f.Search)
	for _, d := range documents {
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Content), search) {
			continue
		}
		out = append(out, d)
	}

	key := func(d Document) (string, bool) {
		switch f.SortBy {
		case SortByName:
			return strings.ToLower(d.Name), true
		case SortByDate:
			return strings.ToLower(d.Content), true
		default:
			return "", false
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ki, ok := key(out[i])
		if !ok {
			return false
		}
		kj, _ := key(out[j])
		if f.SortOrder == OrderAsc {
			return ki < kj
		}
		return ki > kj
	})

	return out
}
