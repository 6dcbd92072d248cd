package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextWithdrawalStatus(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		action     string
		wantStatus string
		wantOK     bool
	}{
		{"approve pending", WithdrawalStatusPending, WithdrawalActionApprove, WithdrawalStatusApproved, true},
		{"reject pending", WithdrawalStatusPending, WithdrawalActionReject, WithdrawalStatusRejected, true},
		{"mark approved processed", WithdrawalStatusApproved, WithdrawalActionMarkProcessed, WithdrawalStatusProcessed, true},

		// Double decisions must fail
		{"approve already approved", WithdrawalStatusApproved, WithdrawalActionApprove, "", false},
		{"reject already approved", WithdrawalStatusApproved, WithdrawalActionReject, "", false},
		{"approve already rejected", WithdrawalStatusRejected, WithdrawalActionApprove, "", false},
		{"reject already rejected", WithdrawalStatusRejected, WithdrawalActionReject, "", false},

		// Terminal states stay terminal
		{"mark rejected processed", WithdrawalStatusRejected, WithdrawalActionMarkProcessed, "", false},
		{"approve processed", WithdrawalStatusProcessed, WithdrawalActionApprove, "", false},
		{"reject processed", WithdrawalStatusProcessed, WithdrawalActionReject, "", false},
		{"re-mark processed", WithdrawalStatusProcessed, WithdrawalActionMarkProcessed, "", false},

		// mark_processed skips the approval step
		{"mark pending processed", WithdrawalStatusPending, WithdrawalActionMarkProcessed, "", false},

		{"unknown action", WithdrawalStatusPending, "cancel", "", false},
		{"unknown status", "draft", WithdrawalActionApprove, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := NextWithdrawalStatus(tt.current, tt.action)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}
