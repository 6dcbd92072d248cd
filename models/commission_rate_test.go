package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRateBoundsPercentage(t *testing.T) {
	assert.NoError(t, ValidateRateBounds(0, RateTypePercentage, DefaultFixedRateCeiling))
	assert.NoError(t, ValidateRateBounds(12.5, RateTypePercentage, DefaultFixedRateCeiling))
	assert.NoError(t, ValidateRateBounds(100, RateTypePercentage, DefaultFixedRateCeiling))

	assert.Error(t, ValidateRateBounds(-0.01, RateTypePercentage, DefaultFixedRateCeiling))
	assert.Error(t, ValidateRateBounds(100.01, RateTypePercentage, DefaultFixedRateCeiling))
}

func TestValidateRateBoundsFixed(t *testing.T) {
	assert.NoError(t, ValidateRateBounds(0, RateTypeFixed, 1000))
	assert.NoError(t, ValidateRateBounds(500, RateTypeFixed, 1000))
	assert.NoError(t, ValidateRateBounds(1000, RateTypeFixed, 1000))

	assert.Error(t, ValidateRateBounds(-1, RateTypeFixed, 1000))
	assert.Error(t, ValidateRateBounds(1000.01, RateTypeFixed, 1000))

	// The ceiling is configurable, not tied to 100
	assert.NoError(t, ValidateRateBounds(4999, RateTypeFixed, 5000))
}

func TestValidateRateBoundsUnknownType(t *testing.T) {
	assert.Error(t, ValidateRateBounds(10, "flat", DefaultFixedRateCeiling))
	assert.Error(t, ValidateRateBounds(10, "", DefaultFixedRateCeiling))
}

func TestFixedRateCeiling(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("COMMISSION_FIXED_MAX", "")
		assert.Equal(t, DefaultFixedRateCeiling, FixedRateCeiling())
	})

	t.Run("configured", func(t *testing.T) {
		t.Setenv("COMMISSION_FIXED_MAX", "2500")
		assert.Equal(t, 2500.0, FixedRateCeiling())
	})

	t.Run("invalid value falls back", func(t *testing.T) {
		t.Setenv("COMMISSION_FIXED_MAX", "not-a-number")
		assert.Equal(t, DefaultFixedRateCeiling, FixedRateCeiling())
	})

	t.Run("non-positive value falls back", func(t *testing.T) {
		t.Setenv("COMMISSION_FIXED_MAX", "-10")
		assert.Equal(t, DefaultFixedRateCeiling, FixedRateCeiling())
	})
}

func TestValidRateCategory(t *testing.T) {
	for _, category := range []string{
		RateCategoryProduct, RateCategoryService, RateCategoryReferral, RateCategoryGeneral,
	} {
		assert.True(t, ValidRateCategory(category), category)
	}

	assert.False(t, ValidRateCategory("subscription"))
	assert.False(t, ValidRateCategory(""))
	assert.False(t, ValidRateCategory("Product"))
}
