package listing

import (
	"strings"
)

// All is the sentinel for categorical filters meaning "no filtering".
const All = "all"

// Filters is the full criterion set applied to a list view. Zero-value
// semantics match the identity pipeline; use NewFilters for the defaults the
// UI starts from.
type Filters struct {
	SearchQuery     string     `form:"search" json:"search"`
	StatusFilter    string     `form:"status" json:"status"`
	LocationFilter  string     `form:"location" json:"location"`
	EmploymentTypes []string   `form:"employment_type[]" json:"employment_types"`
	SalaryMin       *int       `form:"salary_min" json:"salary_min"`
	SalaryMax       *int       `form:"salary_max" json:"salary_max"`
	SortBy          SortOption `form:"sort" json:"sort"`
}

func NewFilters() Filters {
	return Filters{
		StatusFilter:   All,
		LocationFilter: All,
		SortBy:         SortNewest,
	}
}

// ActiveCount reports how many filter criteria deviate from the defaults,
// for the "n filters active" badge. Search and sort are not counted.
func (f Filters) ActiveCount() int {
	count := 0
	if f.LocationFilter != "" && f.LocationFilter != All {
		count++
	}
	if f.StatusFilter != "" && f.StatusFilter != All {
		count++
	}
	count += len(f.EmploymentTypes)
	if f.SalaryMin != nil || f.SalaryMax != nil {
		count++
	}
	return count
}

// FilterBySearch keeps items whose title, description, or location contains
// the query, case-insensitive, OR semantics across fields. Blank query is
// the identity.
func FilterBySearch(items []Item, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	var out []Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), query) ||
			strings.Contains(strings.ToLower(item.Description), query) ||
			strings.Contains(strings.ToLower(item.Location), query) {
			out = append(out, item)
		}
	}
	return out
}

// FilterByLocation keeps items whose location matches exactly. The "all"
// sentinel (or blank) short-circuits to identity.
func FilterByLocation(items []Item, location string) []Item {
	if location == "" || location == All {
		return items
	}
	var out []Item
	for _, item := range items {
		if item.Location == location {
			out = append(out, item)
		}
	}
	return out
}

// FilterByStatus keeps items whose status matches exactly. Rows without a
// status (job rows) always pass.
func FilterByStatus(items []Item, status string) []Item {
	if status == "" || status == All {
		return items
	}
	var out []Item
	for _, item := range items {
		if item.Status == "" || item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

// FilterByEmploymentType keeps items whose employment type is in the
// selected set. An empty selection is the identity.
func FilterByEmploymentType(items []Item, selected []string) []Item {
	if len(selected) == 0 {
		return items
	}
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		set[s] = struct{}{}
	}
	var out []Item
	for _, item := range items {
		if item.EmploymentType == "" {
			continue
		}
		if _, ok := set[item.EmploymentType]; ok {
			out = append(out, item)
		}
	}
	return out
}

// FilterBySalaryRange keeps items whose parsed salary interval overlaps the
// query interval, inclusive on both bounds. Items with unparsable salary
// text are excluded whenever either bound is set; both bounds nil is the
// identity.
func FilterBySalaryRange(items []Item, min, max *int) []Item {
	if min == nil && max == nil {
		return items
	}
	var out []Item
	for _, item := range items {
		parsed := ParseSalaryRange(item.SalaryRange)
		if parsed == nil {
			continue
		}
		minMatch := min == nil || parsed.Max >= *min
		maxMatch := max == nil || parsed.Min <= *max
		if minMatch && maxMatch {
			out = append(out, item)
		}
	}
	return out
}

// Apply runs the full pipeline in the fixed stage order:
// search -> location -> status -> employment type -> salary range -> sort.
func Apply(items []Item, f Filters) []Item {
	filtered := FilterBySearch(items, f.SearchQuery)
	filtered = FilterByLocation(filtered, f.LocationFilter)
	filtered = FilterByStatus(filtered, f.StatusFilter)
	filtered = FilterByEmploymentType(filtered, f.EmploymentTypes)
	filtered = FilterBySalaryRange(filtered, f.SalaryMin, f.SalaryMax)
	return SortItems(filtered, f.SortBy)
}

// ExtractUniqueLocations returns the distinct non-empty locations in the
// unfiltered list, first-seen order preserved, for populating filter UI.
func ExtractUniqueLocations(items []Item) []string {
	return extractUnique(items, func(i Item) string { return i.Location })
}

// ExtractUniqueEmploymentTypes is ExtractUniqueLocations for employment type.
func ExtractUniqueEmploymentTypes(items []Item) []string {
	return extractUnique(items, func(i Item) string { return i.EmploymentType })
}

func extractUnique(items []Item, value func(Item) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		v := value(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
