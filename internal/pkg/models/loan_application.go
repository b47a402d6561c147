package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoanApplication is a pending loan request filed from the member-facing app.
// It is never mutated in place: approval or rejection copies it into a new
// record under a freshly issued transaction id and deletes the original.
type LoanApplication struct {
	ID                 primitive.ObjectID `bson:"_id" json:"-"`
	MemberID           string             `bson:"memberId" json:"memberId"`
	TransactionID      string             `bson:"transactionId" json:"transactionId"`
	Email              string             `bson:"email" json:"email"`
	FirstName          string             `bson:"firstName" json:"firstName"`
	LastName           string             `bson:"lastName" json:"lastName"`
	LoanType           string             `bson:"loanType" json:"loanType"`
	LoanAmount         float64            `bson:"loanAmount" json:"loanAmount"`
	Term               string             `bson:"term" json:"term"`
	DisbursementMethod string             `bson:"disbursement" json:"disbursement"`
	AccountName        string             `bson:"accountName" json:"accountName"`
	AccountNumber      string             `bson:"accountNumber" json:"accountNumber"`
	DateApplied        time.Time          `bson:"dateApplied" json:"dateApplied"`
	DocumentURLs       []string           `bson:"documentUrls,omitempty" json:"documentUrls,omitempty"`
}
