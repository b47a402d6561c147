package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settings is the single cooperative-wide configuration and aggregate
// document. Funds is the pooled lending capital; Savings the fee-fed reserve
// used as a fallback funding source. LoanTypes maps loan type -> term ->
// interest rate percentage; term keys may appear as "12" or 12 in source data
// so both forms are probed at read time.
type Settings struct {
	ID               primitive.ObjectID            `bson:"_id" json:"-"`
	Funds            float64                       `bson:"funds" json:"funds"`
	Savings          float64                       `bson:"savings" json:"savings"`
	ProcessingFee    float64                       `bson:"processingFee" json:"processingFee"`
	LoanReminderDays int32                         `bson:"loanReminderDays" json:"loanReminderDays"`
	LoanTypes        map[string]map[string]float64 `bson:"loanTypes" json:"loanTypes"`
}

// FundsSnapshot is an append-only point-in-time reading of the Funds pool,
// written on every approval for the dashboard charts.
type FundsSnapshot struct {
	ID        primitive.ObjectID `bson:"_id" json:"-"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Funds     float64            `bson:"funds" json:"funds"`
}

// SavingsSnapshot is the Savings reserve reading, keyed by calendar date.
type SavingsSnapshot struct {
	ID      primitive.ObjectID `bson:"_id" json:"-"`
	Date    string             `bson:"date" json:"date"`
	Savings float64            `bson:"savings" json:"savings"`
}
