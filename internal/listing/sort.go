package listing

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOption string

const (
	SortNewest     SortOption = "newest"
	SortOldest     SortOption = "oldest"
	SortTitleAsc   SortOption = "title-asc"
	SortTitleDesc  SortOption = "title-desc"
	SortSalaryHigh SortOption = "salary-high"
	SortSalaryLow  SortOption = "salary-low"
	SortStatus     SortOption = "status"
)

var titleCollator = collate.New(language.Und)

// SortItems returns a stably sorted copy; equal items keep their relative
// order. Salary sorts place items with unparsable salary text at the end
// regardless of direction. An unknown option returns the list unchanged.
func SortItems(items []Item, by SortOption) []Item {
	out := append([]Item(nil), items...)

	var less func(a, b Item) bool
	switch by {
	case SortNewest:
		less = func(a, b Item) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortOldest:
		less = func(a, b Item) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortTitleAsc:
		less = func(a, b Item) bool { return titleCollator.CompareString(a.Title, b.Title) < 0 }
	case SortTitleDesc:
		less = func(a, b Item) bool { return titleCollator.CompareString(b.Title, a.Title) < 0 }
	case SortSalaryHigh:
		less = salaryLess(func(a, b *SalaryRange) bool { return a.Max > b.Max })
	case SortSalaryLow:
		less = salaryLess(func(a, b *SalaryRange) bool { return a.Min < b.Min })
	case SortStatus:
		less = func(a, b Item) bool { return a.Status < b.Status }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func salaryLess(cmp func(a, b *SalaryRange) bool) func(a, b Item) bool {
	return func(a, b Item) bool {
		sa := ParseSalaryRange(a.SalaryRange)
		sb := ParseSalaryRange(b.SalaryRange)
		if sa == nil && sb == nil {
			return false
		}
		if sa == nil {
			return false // unparsable sorts last
		}
		if sb == nil {
			return true
		}
		return cmp(sa, sb)
	}
}
