package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanChangeCommissionStatus(t *testing.T) {
	assert.True(t, CanChangeCommissionStatus(CommissionStatusPending, CommissionStatusAvailable))
	assert.True(t, CanChangeCommissionStatus(CommissionStatusPending, CommissionStatusRejected))
	assert.True(t, CanChangeCommissionStatus(CommissionStatusAvailable, CommissionStatusWithdrawn))

	// pending cannot skip straight to withdrawn
	assert.False(t, CanChangeCommissionStatus(CommissionStatusPending, CommissionStatusWithdrawn))

	// terminal states
	assert.False(t, CanChangeCommissionStatus(CommissionStatusWithdrawn, CommissionStatusAvailable))
	assert.False(t, CanChangeCommissionStatus(CommissionStatusRejected, CommissionStatusAvailable))
	assert.False(t, CanChangeCommissionStatus(CommissionStatusRejected, CommissionStatusPending))

	// no self transitions or unknown statuses
	assert.False(t, CanChangeCommissionStatus(CommissionStatusPending, CommissionStatusPending))
	assert.False(t, CanChangeCommissionStatus("unknown", CommissionStatusAvailable))
	assert.False(t, CanChangeCommissionStatus(CommissionStatusAvailable, "unknown"))
}
