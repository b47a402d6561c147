package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoanNotification is the idempotency marker for due-date reminders, keyed by
// "{memberId}_{transactionId}". Once written, the scanner never re-sends for
// that transaction id; only a manual resend bypasses it.
type LoanNotification struct {
	ID            primitive.ObjectID `bson:"_id" json:"-"`
	Key           string             `bson:"key" json:"key"`
	MemberID      string             `bson:"memberId" json:"memberId"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	DueDate       time.Time          `bson:"dueDate" json:"dueDate"`
	SentAt        time.Time          `bson:"sentAt" json:"sentAt"`
	ResendCount   int32              `bson:"resendCount" json:"resendCount"`
}
