package listview

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func expense(id, category, description, date string, amount float64) domain.Expense {
	return domain.Expense{
		ID:          id,
		Category:    category,
		Description: description,
		Amount:      decimal.NewFromFloat(amount),
		Date:        day(date),
		Status:      domain.StatusPending,
	}
}

func ids(rows []domain.Expense) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ID)
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterByCategory_ExactMatchOnly(t *testing.T) {
	rows := []domain.Expense{
		expense("1", "Food", "lunch", "2024-05-01", 10),
		expense("2", "food", "groceries", "2024-05-02", 20),
		expense("3", "Foodie", "snack", "2024-05-03", 5),
		expense("4", "Food", "dinner", "2024-05-04", 30),
	}

	got := FilterByCategory(rows, "Food")
	if !equalIDs(ids(got), "1", "4") {
		t.Fatalf("expected exact case-sensitive matches, got %v", ids(got))
	}

	for _, row := range got {
		if row.Category != "Food" {
			t.Fatalf("row %s leaked through with category %q", row.ID, row.Category)
		}
	}
}

func TestFilterByCategory_EmptyFilterPassesThrough(t *testing.T) {
	rows := []domain.Expense{
		expense("1", "Food", "", "2024-05-01", 10),
		expense("2", "Travel", "", "2024-05-02", 20),
	}
	got := FilterByCategory(rows, "")
	if !equalIDs(ids(got), "1", "2") {
		t.Fatalf("empty filter must keep everything, got %v", ids(got))
	}
}

func TestFilterBySearch_CaseInsensitiveOnDescriptionOrCategory(t *testing.T) {
	rows := []domain.Expense{
		expense("1", "Travel", "Taxi to AIRPORT", "2024-05-01", 40),
		expense("2", "Food", "lunch", "2024-05-02", 12),
		expense("3", "Airport Fees", "", "2024-05-03", 8),
		expense("4", "Office", "", "2024-05-04", 5),
	}

	got := FilterBySearch(rows, "airport")
	if !equalIDs(ids(got), "1", "3") {
		t.Fatalf("expected description and category matches, got %v", ids(got))
	}
}

func TestFilterBySearch_MissingDescriptionMustMatchCategory(t *testing.T) {
	rows := []domain.Expense{
		expense("1", "Food", "", "2024-05-01", 10),
	}
	if got := FilterBySearch(rows, "lunch"); len(got) != 0 {
		t.Fatalf("row without description must not match on description, got %v", ids(got))
	}
	if got := FilterBySearch(rows, "foo"); !equalIDs(ids(got), "1") {
		t.Fatalf("row should survive via category, got %v", ids(got))
	}
}

func TestFilterByDateRange_BoundsAreInclusive(t *testing.T) {
	rows := []domain.Expense{
		expense("before", "Food", "", "2024-04-30", 1),
		expense("start", "Food", "", "2024-05-01", 1),
		expense("mid", "Food", "", "2024-05-10", 1),
		expense("end", "Food", "", "2024-05-31", 1),
		expense("after", "Food", "", "2024-06-01", 1),
	}

	got := FilterByDateRange(rows, day("2024-05-01"), day("2024-05-31"))
	if !equalIDs(ids(got), "start", "mid", "end") {
		t.Fatalf("bounds must be inclusive, got %v", ids(got))
	}
}

func TestFilterByDateRange_EndOfDayRetained(t *testing.T) {
	late := expense("late", "Food", "", "2024-05-31", 1)
	late.Date = time.Date(2024, 5, 31, 23, 59, 59, 999_000_000, time.UTC)

	got := FilterByDateRange([]domain.Expense{late}, time.Time{}, day("2024-05-31"))
	if !equalIDs(ids(got), "late") {
		t.Fatalf("row at 23:59:59.999 of the end bound must be retained, got %v", ids(got))
	}
}

func TestFilterByDateRange_OpenEnds(t *testing.T) {
	rows := []domain.Expense{
		expense("1", "Food", "", "2024-04-30", 1),
		expense("2", "Food", "", "2024-05-02", 1),
	}

	if got := FilterByDateRange(rows, day("2024-05-01"), time.Time{}); !equalIDs(ids(got), "2") {
		t.Fatalf("start-only bound failed, got %v", ids(got))
	}
	if got := FilterByDateRange(rows, time.Time{}, day("2024-05-01")); !equalIDs(ids(got), "1") {
		t.Fatalf("end-only bound failed, got %v", ids(got))
	}
	if got := FilterByDateRange(rows, time.Time{}, time.Time{}); !equalIDs(ids(got), "1", "2") {
		t.Fatalf("unset bounds must pass through, got %v", ids(got))
	}
}

func TestSortRows_AmountIsNumeric(t *testing.T) {
	rows := []domain.Expense{
		expense("a", "Food", "", "2024-05-01", 50),
		expense("b", "Food", "", "2024-05-02", 5),
		expense("c", "Food", "", "2024-05-03", 20),
	}

	asc := SortRows(rows, SortSpec{Key: SortKeyAmount, Direction: SortAsc})
	if !equalIDs(ids(asc), "b", "c", "a") {
		t.Fatalf("ascending amount sort wrong: %v", ids(asc))
	}

	desc := SortRows(rows, SortSpec{Key: SortKeyAmount, Direction: SortDesc})
	if !equalIDs(ids(desc), "a", "c", "b") {
		t.Fatalf("descending amount sort wrong: %v", ids(desc))
	}
}

func TestSortRows_DateIsCalendarOrder(t *testing.T) {
	rows := []domain.Expense{
		expense("feb", "Food", "", "2024-02-01", 1),
		expense("jan", "Food", "", "2024-01-31", 1),
		expense("dec", "Food", "", "2023-12-31", 1),
	}

	got := SortRows(rows, SortSpec{Key: SortKeyDate, Direction: SortAsc})
	if !equalIDs(ids(got), "dec", "jan", "feb") {
		t.Fatalf("calendar order across month/year boundaries wrong: %v", ids(got))
	}
}

func TestSortRows_NoKeyPreservesOrder(t *testing.T) {
	rows := []domain.Expense{
		expense("2", "B", "", "2024-05-02", 2),
		expense("1", "A", "", "2024-05-01", 1),
	}
	got := SortRows(rows, SortSpec{})
	if !equalIDs(ids(got), "2", "1") {
		t.Fatalf("no sort key must preserve upstream order, got %v", ids(got))
	}
}

func TestSortRows_DoesNotMutateInput(t *testing.T) {
	rows := []domain.Expense{
		expense("b", "Food", "", "2024-05-02", 2),
		expense("a", "Food", "", "2024-05-01", 1),
	}
	_ = SortRows(rows, SortSpec{Key: SortKeyDate, Direction: SortAsc})
	if !equalIDs(ids(rows), "b", "a") {
		t.Fatalf("input slice was mutated: %v", ids(rows))
	}
}

func TestSortSpecToggle(t *testing.T) {
	spec := SortSpec{}

	spec = spec.Toggle(SortKeyAmount)
	if spec.Key != SortKeyAmount || spec.Direction != SortAsc {
		t.Fatalf("new key must reset to ascending, got %+v", spec)
	}

	spec = spec.Toggle(SortKeyAmount)
	if spec.Key != SortKeyAmount || spec.Direction != SortDesc {
		t.Fatalf("same key must flip direction, got %+v", spec)
	}

	spec = spec.Toggle(SortKeyDate)
	if spec.Key != SortKeyDate || spec.Direction != SortAsc {
		t.Fatalf("switching keys must reset to ascending, got %+v", spec)
	}
}

func TestCategoryOptions_DistinctSortedNonBlank(t *testing.T) {
	rows := []domain.Expense{
		expense("1", "Travel", "", "2024-05-01", 1),
		expense("2", "Food", "", "2024-05-02", 1),
		expense("3", "", "", "2024-05-03", 1),
		expense("4", "Food", "", "2024-05-04", 1),
		expense("5", "Office", "", "2024-05-05", 1),
	}

	got := CategoryOptions(rows)
	want := []string{"Food", "Office", "Travel"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDerive_StageOrder(t *testing.T) {
	rows := []domain.Expense{
		expense("1", "Food", "team lunch", "2024-05-01", 30),
		expense("2", "Food", "solo lunch", "2024-05-15", 10),
		expense("3", "Travel", "lunch on the road", "2024-05-10", 20),
		expense("4", "Food", "dinner", "2024-05-20", 40),
		expense("5", "Food", "lunch again", "2024-06-02", 15),
	}

	got := Derive(rows, Query{
		Category:  "Food",
		Search:    "lunch",
		StartDate: day("2024-05-01"),
		EndDate:   day("2024-05-31"),
		Sort:      SortSpec{Key: SortKeyAmount, Direction: SortDesc},
	})
	if !equalIDs(ids(got), "1", "2") {
		t.Fatalf("pipeline output wrong: %v", ids(got))
	}
}

func TestRowGating(t *testing.T) {
	pending := expense("1", "Food", "", "2024-05-01", 1)
	approved := expense("2", "Food", "", "2024-05-02", 1)
	approved.Status = domain.StatusApproved
	rejected := expense("3", "Food", "", "2024-05-03", 1)
	rejected.Status = domain.StatusRejected

	if !CanEdit(&pending) || !CanDelete(&pending) {
		t.Fatal("pending rows must be editable and deletable")
	}
	if CanEdit(&approved) || CanDelete(&approved) {
		t.Fatal("approved rows must be locked")
	}
	if CanEdit(&rejected) || CanDelete(&rejected) {
		t.Fatal("rejected rows must be locked")
	}
}
