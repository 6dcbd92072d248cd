package models

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Commission rate types
const (
	RateTypePercentage = "percentage"
	RateTypeFixed      = "fixed"
)

// Commission rate categories
const (
	RateCategoryProduct  = "product"
	RateCategoryService  = "service"
	RateCategoryReferral = "referral"
	RateCategoryGeneral  = "general"
)

// DefaultFixedRateCeiling bounds fixed-amount rates when
// COMMISSION_FIXED_MAX is not configured.
const DefaultFixedRateCeiling = 1000.0

// CommissionRate is an admin-configured rate definition used when computing
// commissions on qualifying sales.
type CommissionRate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Rate        float64            `bson:"rate" json:"rate"`
	Type        string             `bson:"type" json:"type"`         // "percentage" or "fixed"
	Category    string             `bson:"category" json:"category"` // "product", "service", "referral", "general"
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FixedRateCeiling returns the configured upper bound for fixed-amount rates.
func FixedRateCeiling() float64 {
	if v := os.Getenv("COMMISSION_FIXED_MAX"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil && max > 0 {
			return max
		}
	}
	return DefaultFixedRateCeiling
}

// ValidateRateBounds checks a rate value against the bounds of its type.
// Percentage rates are 0-100; fixed rates are 0 up to the configured ceiling.
func ValidateRateBounds(rate float64, rateType string, fixedMax float64) error {
	switch rateType {
	case RateTypePercentage:
		if rate < 0 || rate > 100 {
			return errors.New("percentage rate must be between 0 and 100")
		}
	case RateTypeFixed:
		if rate < 0 || rate > fixedMax {
			return fmt.Errorf("fixed rate must be between 0 and %.2f", fixedMax)
		}
	default:
		return errors.New("rate type must be 'percentage' or 'fixed'")
	}
	return nil
}

// ValidRateCategory reports whether category is one of the known categories.
func ValidRateCategory(category string) bool {
	switch category {
	case RateCategoryProduct, RateCategoryService, RateCategoryReferral, RateCategoryGeneral:
		return true
	}
	return false
}
