package listing

import (
	"regexp"
	"strconv"
	"strings"
)

// SalaryRange is the interval inferred from a job's free-text salary field.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var (
	jutaPattern  = regexp.MustCompile(`(\d+)\s*juta`)
	jtPattern    = regexp.MustCompile(`(\d+)\s*jt`)
	thouPattern  = regexp.MustCompile(`(\d+)\s*k\b`)
	digitPattern = regexp.MustCompile(`\d+`)
)

// ParseSalaryRange extracts {min, max} from free text like
// "Rp 5.000.000 - Rp 10.000.000" or "$80k - $120k". Currency markers are
// stripped, magnitude suffixes (juta/jt -> x1e6, k -> x1e3) are expanded onto
// the adjacent number, and thousands separators are removed; the separator
// strip also eats decimal points, which is an accepted lossy behavior for
// free text. Fewer than two digit runs means no range: a single well-formed
// number yields nil, not a point range. Callers treat nil as "exclude from
// range filtering", never as zero.
func ParseSalaryRange(text string) *SalaryRange {
	if text == "" {
		return nil
	}

	cleaned := strings.ToLower(text)
	for _, marker := range []string{"$", "rp", "idr"} {
		cleaned = strings.ReplaceAll(cleaned, marker, "")
	}
	cleaned = jutaPattern.ReplaceAllString(cleaned, "${1}000000")
	cleaned = jtPattern.ReplaceAllString(cleaned, "${1}000000")
	cleaned = thouPattern.ReplaceAllString(cleaned, "${1}000")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")

	runs := digitPattern.FindAllString(cleaned, -1)
	if len(runs) < 2 {
		return nil
	}

	min, err := strconv.Atoi(runs[0])
	if err != nil {
		return nil
	}
	max, err := strconv.Atoi(runs[1])
	if err != nil {
		return nil
	}
	return &SalaryRange{Min: min, Max: max}
}
