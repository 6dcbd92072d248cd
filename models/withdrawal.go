package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Withdrawal statuses
const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusApproved  = "approved"
	WithdrawalStatusRejected  = "rejected"
	WithdrawalStatusProcessed = "processed"
)

// Admin actions on a withdrawal
const (
	WithdrawalActionApprove       = "approve"
	WithdrawalActionReject        = "reject"
	WithdrawalActionMarkProcessed = "mark_processed"
)

type Withdrawal struct {
	ID                   primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	AffiliateID          primitive.ObjectID  `bson:"affiliateId" json:"affiliateId"`
	Amount               float64             `bson:"amount" json:"amount"`
	BankName             string              `bson:"bankName" json:"bankName"`
	AccountNumber        string              `bson:"accountNumber" json:"accountNumber"`
	AccountName          string              `bson:"accountName" json:"accountName"`
	Status               string              `bson:"status" json:"status"` // "pending", "approved", "rejected", "processed"
	RequestedAt          time.Time           `bson:"requestedAt" json:"requestedAt"`
	ProcessedAt          *time.Time          `bson:"processedAt,omitempty" json:"processedAt,omitempty"`
	AdminID              *primitive.ObjectID `bson:"adminId,omitempty" json:"adminId,omitempty"`
	AdminNote            string              `bson:"adminNote,omitempty" json:"adminNote,omitempty"`
	TransactionReference string              `bson:"transactionReference,omitempty" json:"transactionReference,omitempty"`
}

// NextWithdrawalStatus returns the status a withdrawal moves to when the
// given action is applied in the given current status. The second return is
// false for any pair outside the transition table:
//
//	pending  --approve-->        approved
//	pending  --reject-->         rejected
//	approved --mark_processed--> processed
//
// "rejected" and "processed" are terminal.
func NextWithdrawalStatus(current, action string) (string, bool) {
	switch {
	case current == WithdrawalStatusPending && action == WithdrawalActionApprove:
		return WithdrawalStatusApproved, true
	case current == WithdrawalStatusPending && action == WithdrawalActionReject:
		return WithdrawalStatusRejected, true
	case current == WithdrawalStatusApproved && action == WithdrawalActionMarkProcessed:
		return WithdrawalStatusProcessed, true
	}
	return "", false
}
