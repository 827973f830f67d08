package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortItemsByDate(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(time.Hour)},
		{ID: "mid", CreatedAt: base.Add(time.Minute)},
	}

	newest := SortItems(items, SortNewest)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(newest))

	oldest := SortItems(items, SortOldest)
	assert.Equal(t, []string{"old", "mid", "new"}, ids(oldest))

	// input order untouched
	assert.Equal(t, []string{"old", "new", "mid"}, ids(items))
}

func TestSortItemsByTitle(t *testing.T) {
	items := []Item{
		{ID: "c", Title: "Cashier"},
		{ID: "a", Title: "Analyst"},
		{ID: "b", Title: "Barista"},
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(SortItems(items, SortTitleAsc)))
	assert.Equal(t, []string{"c", "b", "a"}, ids(SortItems(items, SortTitleDesc)))
}

func TestSortItemsBySalaryPutsUnparsableLast(t *testing.T) {
	items := []Item{
		{ID: "none", SalaryRange: "Competitive"},
		{ID: "low", SalaryRange: "1000 - 2000"},
		{ID: "high", SalaryRange: "5000 - 9000"},
	}

	assert.Equal(t, []string{"high", "low", "none"}, ids(SortItems(items, SortSalaryHigh)))
	assert.Equal(t, []string{"low", "high", "none"}, ids(SortItems(items, SortSalaryLow)))
}

func TestSortItemsIsStable(t *testing.T) {
	ts := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{
		{ID: "1", CreatedAt: ts},
		{ID: "2", CreatedAt: ts},
		{ID: "3", CreatedAt: ts},
	}

	got := SortItems(items, SortNewest)
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestSortItemsUnknownOptionReturnsCopy(t *testing.T) {
	items := []Item{{ID: "1"}, {ID: "2"}}
	got := SortItems(items, SortOption("bogus"))
	assert.Equal(t, ids(items), ids(got))
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
