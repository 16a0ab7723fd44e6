package ident

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProductID_Prefix(t *testing.T) {
	id := NewProductID()
	assert.True(t, strings.HasPrefix(id, "prod_"))
	assert.Greater(t, len(id), len("prod_"))
}

func TestNewRentalID_Prefix(t *testing.T) {
	id := NewRentalID()
	assert.True(t, strings.HasPrefix(id, "rent_"))
}

func TestIDs_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewProductID()
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}
