// Package listview implements the data-presentation core of the expense
// table: a pure derivation pipeline (category filter, free-text search,
// date-range bounding, multi-key sorting) over the loaded expense list,
// plus the view-state container that owns the list and applies mutation
// intents after server round-trips.
package listview

import (
	"sort"
	"strings"
	"time"

	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
)

// SortKey selects the column an explicit sort compares by. The empty key
// means "no explicit sort, preserve filtered order".
type SortKey string

const (
	SortKeyNone        SortKey = ""
	SortKeyDescription SortKey = "description"
	SortKeyCategory    SortKey = "category"
	SortKeyDate        SortKey = "date"
	SortKeyAmount      SortKey = "amount"
)

// SortDirection toggles ascending/descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec is the active sort selection.
type SortSpec struct {
	Key       SortKey
	Direction SortDirection
}

// Toggle returns the spec after selecting key: choosing the active key
// flips its direction, choosing a different key resets to ascending.
func (s SortSpec) Toggle(key SortKey) SortSpec {
	if s.Key == key {
		if s.Direction == SortAsc {
			return SortSpec{Key: key, Direction: SortDesc}
		}
		return SortSpec{Key: key, Direction: SortAsc}
	}
	return SortSpec{Key: key, Direction: SortAsc}
}

// Query bundles the four derivation inputs applied to the base list.
// Zero-valued date bounds are treated as unset.
type Query struct {
	Category  string
	Search    string
	StartDate time.Time
	EndDate   time.Time
	Sort      SortSpec
}

// Derive produces the exact ordered row sequence to render. Each stage
// consumes the previous stage's output; none of them mutate the input.
func Derive(base []domain.Expense, q Query) []domain.Expense {
	rows := FilterByCategory(base, q.Category)
	rows = FilterBySearch(rows, q.Search)
	rows = FilterByDateRange(rows, q.StartDate, q.EndDate)
	return SortRows(rows, q.Sort)
}

// FilterByCategory keeps rows whose category equals the filter exactly.
// An empty filter passes everything through.
func FilterByCategory(rows []domain.Expense, category string) []domain.Expense {
	if category == "" {
		return rows
	}
	out := make([]domain.Expense, 0, len(rows))
	for _, row := range rows {
		if row.Category == category {
			out = append(out, row)
		}
	}
	return out
}

// FilterBySearch keeps rows whose lower-cased description or category
// contains the lower-cased term. A row without a description must still
// match on category to survive.
func FilterBySearch(rows []domain.Expense, term string) []domain.Expense {
	if term == "" {
		return rows
	}
	needle := strings.ToLower(term)
	out := make([]domain.Expense, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Description), needle) ||
			strings.Contains(strings.ToLower(row.Category), needle) {
			out = append(out, row)
		}
	}
	return out
}

// FilterByDateRange drops rows strictly earlier than the start bound's
// midnight or strictly later than the end bound's end of day. Both bounds
// are inclusive at their edges; zero values are unset.
func FilterByDateRange(rows []domain.Expense, start, end time.Time) []domain.Expense {
	if start.IsZero() && end.IsZero() {
		return rows
	}
	var startBound, endBound time.Time
	if !start.IsZero() {
		startBound = startOfDay(start)
	}
	if !end.IsZero() {
		endBound = endOfDay(end)
	}
	out := make([]domain.Expense, 0, len(rows))
	for _, row := range rows {
		if !startBound.IsZero() && row.Date.Before(startBound) {
			continue
		}
		if !endBound.IsZero() && row.Date.After(endBound) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// SortRows returns a new ordered sequence for an explicit sort key, or the
// input unchanged when no key is set. Amount compares numerically, date as
// calendar instants, the remaining keys lexicographically. Ties are not
// explicitly broken.
func SortRows(rows []domain.Expense, spec SortSpec) []domain.Expense {
	if spec.Key == SortKeyNone {
		return rows
	}
	out := make([]domain.Expense, len(rows))
	copy(out, rows)
	sort.Slice(out, func(i, j int) bool {
		cmp := compareRows(&out[i], &out[j], spec.Key)
		if spec.Direction == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func compareRows(a, b *domain.Expense, key SortKey) int {
	switch key {
	case SortKeyAmount:
		return a.Amount.Cmp(b.Amount)
	case SortKeyDate:
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	case SortKeyCategory:
		return strings.Compare(a.Category, b.Category)
	default:
		return strings.Compare(a.Description, b.Description)
	}
}

// CategoryOptions returns the distinct non-blank categories of the
// unfiltered base list, sorted ascending, for the filter selector.
func CategoryOptions(rows []domain.Expense) []string {
	seen := make(map[string]struct{}, len(rows))
	options := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Category == "" {
			continue
		}
		if _, ok := seen[row.Category]; ok {
			continue
		}
		seen[row.Category] = struct{}{}
		options = append(options, row.Category)
	}
	sort.Strings(options)
	return options
}

// CanEdit reports whether the view should enable the edit action for a row.
func CanEdit(row *domain.Expense) bool {
	return row.Status == domain.StatusPending
}

// CanDelete reports whether the view should enable the delete action.
func CanDelete(row *domain.Expense) bool {
	return row.Status == domain.StatusPending
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
