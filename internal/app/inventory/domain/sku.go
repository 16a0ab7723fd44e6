package domain

import (
	"regexp"
	"strings"
)

// SKU format: 2-40 characters, letters, digits, dots, underscores, hyphens.
var skuPattern = regexp.MustCompile(`^[A-Z0-9._-]{2,40}$`)

// NormalizeSKU trims surrounding whitespace and uppercases the catalog code.
// SKUs are shared by all units of the same model and are not unique.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// NormalizeSerial trims and uppercases a serial number. Serial numbers are
// always compared and stored in normalized form; the uniqueness index is
// keyed by the normalized value.
func NormalizeSerial(serial string) string {
	return strings.ToUpper(strings.TrimSpace(serial))
}

// ValidateSKU checks the normalized SKU against the allowed format.
func ValidateSKU(sku string) error {
	if !skuPattern.MatchString(NormalizeSKU(sku)) {
		return ErrInvalidSKU
	}
	return nil
}
