package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSKU(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizeSKU("  abc123  "))
	assert.Equal(t, "MS123", NormalizeSKU("ms123"))
	assert.Equal(t, "IP15PRO", NormalizeSKU("ip15pro"))
	assert.Equal(t, "", NormalizeSKU("   "))
}

func TestNormalizeSerial(t *testing.T) {
	assert.Equal(t, "SN-001-A", NormalizeSerial(" sn-001-a "))
	assert.Equal(t, "C02XK1JHG8WN", NormalizeSerial("c02xk1jhg8wn"))
}

func TestValidateSKUAccepts(t *testing.T) {
	// Validation runs on the normalized form, so lowercase input is fine.
	for _, sku := range []string{"ABC123", "MS123", "IP15PRO", "abc123", "A.B", "X_Y-Z", "AB"} {
		require.NoError(t, ValidateSKU(sku), "sku %q", sku)
	}
}

func TestValidateSKURejects(t *testing.T) {
	long := strings.Repeat("A", 41)
	for _, sku := range []string{"", "A", "ABC@123", "AB C123", long} {
		err := ValidateSKU(sku)
		require.Error(t, err, "sku %q", sku)
		assert.ErrorIs(t, err, ErrInvalidSKU)
	}
}

func TestValidateStoreLocation(t *testing.T) {
	for _, loc := range []string{"CAR", "SYD", "MEL", "BRI"} {
		require.NoError(t, ValidateStoreLocation(loc))
	}
	for _, loc := range []string{"", "PER", "car", "SYDNEY"} {
		assert.ErrorIs(t, ValidateStoreLocation(loc), ErrInvalidStoreLocation, "location %q", loc)
	}
}
