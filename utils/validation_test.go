package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("a@b.com"))
	assert.True(t, ValidateEmail("  ana.garcia@example.co.uk "))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail(""))
}

func TestParseAmount(t *testing.T) {
	n, err := ParseAmount(" 30.00 ")
	require.NoError(t, err)
	assert.InDelta(t, 30.00, n, 1e-9)

	// Negative amounts are valid compensating entries.
	n, err = ParseAmount("-12.50")
	require.NoError(t, err)
	assert.InDelta(t, -12.50, n, 1e-9)

	_, err = ParseAmount("")
	assert.Error(t, err)
	_, err = ParseAmount("abc")
	assert.Error(t, err)
	_, err = ParseAmount("NaN")
	assert.Error(t, err)
	_, err = ParseAmount("Inf")
	assert.Error(t, err)
}
