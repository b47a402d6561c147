package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApprovedLoan is the immutable record of an approval decision, keyed by
// (memberId, transactionId). All monetary figures are stored rounded to two
// decimal places.
type ApprovedLoan struct {
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
	InterestRate          float64            `bson:"interestRate" json:"interestRate"`
	InterestPerTerm       float64            `bson:"interest" json:"interest"`
	TotalInterest         float64            `bson:"totalInterest" json:"totalInterest"`
	TotalTermPayment      float64            `bson:"totalTermPayment" json:"totalTermPayment"`
	MonthlyPayment        float64            `bson:"monthlyPayment" json:"monthlyPayment"`
	TotalMonthlyPayment   float64            `bson:"totalMonthlyPayment" json:"totalMonthlyPayment"`
	ReleaseAmount         float64            `bson:"releaseAmount" json:"releaseAmount"`
	ProcessingFee         float64            `bson:"processingFee" json:"processingFee"`
	BorrowedFromSavings   float64            `bson:"borrowedFromSavings" json:"borrowedFromSavings"`
	DisbursementMethod    string             `bson:"disbursement" json:"disbursement"`
	AccountName           string             `bson:"accountName" json:"accountName"`
	AccountNumber         string             `bson:"accountNumber" json:"accountNumber"`
	DateApplied           time.Time          `bson:"dateApplied" json:"dateApplied"`
	DateApproved          time.Time          `bson:"dateApproved" json:"dateApproved"`
	DueDate               time.Time          `bson:"dueDate" json:"dueDate"`
	Status                string             `bson:"status" json:"status"`
}

// CurrentLoan is the mutable repayment projection of an ApprovedLoan.
// LoanAmount stays the original principal; RemainingBalance is the figure the
// repayment flow draws down.
type CurrentLoan struct {
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
	InterestRate          float64            `bson:"interestRate" json:"interestRate"`
	InterestPerTerm       float64            `bson:"interest" json:"interest"`
	TotalInterest         float64            `bson:"totalInterest" json:"totalInterest"`
	TotalTermPayment      float64            `bson:"totalTermPayment" json:"totalTermPayment"`
	MonthlyPayment        float64            `bson:"monthlyPayment" json:"monthlyPayment"`
	TotalMonthlyPayment   float64            `bson:"totalMonthlyPayment" json:"totalMonthlyPayment"`
	ReleaseAmount         float64            `bson:"releaseAmount" json:"releaseAmount"`
	ProcessingFee         float64            `bson:"processingFee" json:"processingFee"`
	BorrowedFromSavings   float64            `bson:"borrowedFromSavings" json:"borrowedFromSavings"`
	DateApproved          time.Time          `bson:"dateApproved" json:"dateApproved"`
	DueDate               time.Time          `bson:"dueDate" json:"dueDate"`
	PaymentsMade          int32              `bson:"paymentsMade" json:"paymentsMade"`
	AmountPaid            float64            `bson:"amountPaid" json:"amountPaid"`
	RemainingBalance      float64            `bson:"remainingBalance" json:"remainingBalance"`
}
