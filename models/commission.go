package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Commission statuses
const (
	CommissionStatusPending   = "pending"
	CommissionStatusAvailable = "available"
	CommissionStatusWithdrawn = "withdrawn"
	CommissionStatusRejected  = "rejected"
)

// Commission is a per-sale commission record. Creation is driven by
// sale-completion logic; admins can move it through its statuses.
type Commission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Amount    float64            `bson:"amount" json:"amount"`
	Status    string             `bson:"status" json:"status"` // "pending", "available", "withdrawn", "rejected"
	Type      string             `bson:"type,omitempty" json:"type,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CanChangeCommissionStatus reports whether an admin may move a commission
// from one status to another. "withdrawn" and "rejected" are terminal.
func CanChangeCommissionStatus(from, to string) bool {
	switch from {
	case CommissionStatusPending:
		return to == CommissionStatusAvailable || to == CommissionStatusRejected
	case CommissionStatusAvailable:
		return to == CommissionStatusWithdrawn
	}
	return false
}
