package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalaryRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *SalaryRange
	}{
		{"rupiah with dot separators", "Rp 5.000.000 - Rp 10.000.000", &SalaryRange{Min: 5000000, Max: 10000000}},
		{"dollars with k suffix", "$80k - $120k", &SalaryRange{Min: 80000, Max: 120000}},
		{"juta suffix", "5 juta - 10 juta", &SalaryRange{Min: 5000000, Max: 10000000}},
		{"jt suffix", "7jt - 9jt", &SalaryRange{Min: 7000000, Max: 9000000}},
		{"comma separators", "50,000 - 70,000", &SalaryRange{Min: 50000, Max: 70000}},
		{"plain text", "Competitive", nil},
		{"empty", "", nil},
		{"single number", "From 5000000", nil},
		{"single juta", "5 juta", nil},
		{"negotiable with number", "Negotiable", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSalaryRange(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseSalaryRangeExtraNumbersIgnored(t *testing.T) {
	got := ParseSalaryRange("3000 - 5000 - 9000")
	require.NotNil(t, got)
	assert.Equal(t, 3000, got.Min)
	assert.Equal(t, 5000, got.Max)
}
