package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RejectedLoan records a decline. No balances move when one is written.
type RejectedLoan struct {
	ID                    primitive.ObjectID `bson:"_id" json:"-"`
	MemberID              string             `bson:"memberId" json:"memberId"`
	TransactionID         string             `bson:"transactionId" json:"transactionId"`
	OriginalTransactionID string             `bson:"originalTransactionId" json:"originalTransactionId"`
	Email                 string             `bson:"email" json:"email"`
	FirstName             string             `bson:"firstName" json:"firstName"`
	LastName              string             `bson:"lastName" json:"lastName"`
	LoanType              string             `bson:"loanType" json:"loanType"`
	LoanAmount            float64            `bson:"loanAmount" json:"loanAmount"`
	Term                  string             `bson:"term" json:"term"`
	DateApplied           time.Time          `bson:"dateApplied" json:"dateApplied"`
	DateRejected          time.Time          `bson:"dateRejected" json:"dateRejected"`
	RejectionReason       string             `bson:"rejectionReason" json:"rejectionReason"`
	Status                string             `bson:"status" json:"status"`
}
