package sscc_test

import (
	"testing"

	"shipnotice/internal/core/domain/model/sscc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit(t *testing.T) {
	t.Run("known GS1 reference values", func(t *testing.T) {
		testCases := []struct {
			name      string
			extension string
			prefix    string
			serial    string
			expected  string
		}{
			{"GS1 documentation example", "0", "0614141", "123456789", "0"},
			{"first serial", "0", "0614141", "000000001", "2"},
			{"all zeros", "0", "0000000", "000000000", "0"},
			{"extension digit contributes", "1", "0614141", "000000001", "9"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				check, err := sscc.CheckDigit(tc.extension, tc.prefix, tc.serial)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, check)
			})
		}
	})

	t.Run("should reject non-digit input", func(t *testing.T) {
		_, err := sscc.CheckDigit("0", "06X4141", "000000001")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a digit string")
	})
}
