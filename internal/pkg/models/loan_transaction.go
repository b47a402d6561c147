package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoanTransaction is the append-only transaction log entry written alongside
// every approval or rejection. PublishedToKafka is flipped once the reporting
// event lands on the transactions topic.
type LoanTransaction struct {
	ID                    primitive.ObjectID `bson:"_id" json:"-"`
	GUID                  string             `bson:"GUID" json:"guid"`
	MemberID              string             `bson:"memberId" json:"memberId"`
	TransactionID         string             `bson:"transactionId" json:"transactionId"`
	OriginalTransactionID string             `bson:"originalTransactionId" json:"originalTransactionId"`
	Type                  string             `bson:"type" json:"type"`
	LoanType              string             `bson:"loanType" json:"loanType"`
	LoanAmount            float64            `bson:"loanAmount" json:"loanAmount"`
	Term                  string             `bson:"term" json:"term"`
	InterestRate          float64            `bson:"interestRate,omitempty" json:"interestRate,omitempty"`
	TotalTermPayment      float64            `bson:"totalTermPayment,omitempty" json:"totalTermPayment,omitempty"`
	ReleaseAmount         float64            `bson:"releaseAmount,omitempty" json:"releaseAmount,omitempty"`
	ProcessingFee         float64            `bson:"processingFee,omitempty" json:"processingFee,omitempty"`
	BorrowedFromSavings   float64            `bson:"borrowedFromSavings,omitempty" json:"borrowedFromSavings,omitempty"`
	RejectionReason       string             `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	Status                string             `bson:"status" json:"status"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
	PublishedToKafka      bool               `bson:"publishedToKafka" json:"publishedToKafka"`
}
