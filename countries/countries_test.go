package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlpha2(t *testing.T) {
	table, err := NewTable()
	assert.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{
			name:     "english full name",
			input:    "Germany",
			expected: "DE",
			found:    true,
		},
		{
			name:     "lookup is case-insensitive",
			input:    "gErMaNy",
			expected: "DE",
			found:    true,
		},
		{
			name:     "german alias for germany",
			input:    "Deutschland",
			expected: "DE",
			found:    true,
		},
		{
			name:     "codes come back uppercased",
			input:    "United States of America",
			expected: "US",
			found:    true,
		},
		{
			name:  "unknown name",
			input: "Atlantis",
			found: false,
		},
		{
			name:  "alpha-2 codes are not names",
			input: "DE",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := table.Alpha2(tt.input)

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, code)
		})
	}
}
