package common

import (
	"time"

	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SerializeApprovedLoan builds the approval record from the pending
// application and the computed amortization. Monetary figures are rounded
// here, at the point of storage.
func SerializeApprovedLoan(app models.LoanApplication, transactionID string, amort models.Amortization, borrowedFromSavings float64, approvedAt time.Time) models.ApprovedLoan {
	return models.ApprovedLoan{
		ID:                    primitive.NewObjectID(),
		MemberID:              app.MemberID,
		TransactionID:         transactionID,
		OriginalTransactionID: app.TransactionID,
		Email:                 app.Email,
		FirstName:             app.FirstName,
		LastName:              app.LastName,
		LoanType:              app.LoanType,
		LoanAmount:            Round2(app.LoanAmount),
		Term:                  app.Term,
		InterestRate:          amort.InterestRate,
		InterestPerTerm:       Round2(amort.InterestPerTerm),
		TotalInterest:         Round2(amort.TotalInterest),
		TotalTermPayment:      Round2(amort.TotalTermPayment),
		MonthlyPayment:        Round2(amort.MonthlyPayment),
		TotalMonthlyPayment:   Round2(amort.TotalMonthlyPayment),
		ReleaseAmount:         Round2(amort.ReleaseAmount),
		ProcessingFee:         Round2(amort.ProcessingFee),
		BorrowedFromSavings:   Round2(borrowedFromSavings),
		DisbursementMethod:    app.DisbursementMethod,
		AccountName:           app.AccountName,
		AccountNumber:         app.AccountNumber,
		DateApplied:           app.DateApplied,
		DateApproved:          approvedAt,
		DueDate:               DueDateFrom(approvedAt),
		Status:                consts.StatusApproved,
	}
}

// SerializeCurrentLoan projects the approval into the repayment tracker.
// RemainingBalance starts at the total term payment.
func SerializeCurrentLoan(approved models.ApprovedLoan) models.CurrentLoan {
	return models.CurrentLoan{
		ID:                    primitive.NewObjectID(),
		MemberID:              approved.MemberID,
		TransactionID:         approved.TransactionID,
		OriginalTransactionID: approved.OriginalTransactionID,
		Email:                 approved.Email,
		FirstName:             approved.FirstName,
		LastName:              approved.LastName,
		LoanType:              approved.LoanType,
		LoanAmount:            approved.LoanAmount,
		Term:                  approved.Term,
		InterestRate:          approved.InterestRate,
		InterestPerTerm:       approved.InterestPerTerm,
		TotalInterest:         approved.TotalInterest,
		TotalTermPayment:      approved.TotalTermPayment,
		MonthlyPayment:        approved.MonthlyPayment,
		TotalMonthlyPayment:   approved.TotalMonthlyPayment,
		ReleaseAmount:         approved.ReleaseAmount,
		ProcessingFee:         approved.ProcessingFee,
		BorrowedFromSavings:   approved.BorrowedFromSavings,
		DateApproved:          approved.DateApproved,
		DueDate:               approved.DueDate,
		PaymentsMade:          0,
		AmountPaid:            0,
		RemainingBalance:      approved.TotalTermPayment,
	}
}

// SerializeRejectedLoan copies the application into the rejected ledger under
// a new transaction id.
func SerializeRejectedLoan(app models.LoanApplication, transactionID string, reason string, rejectedAt time.Time) models.RejectedLoan {
	return models.RejectedLoan{
		ID:                    primitive.NewObjectID(),
		MemberID:              app.MemberID,
		TransactionID:         transactionID,
		OriginalTransactionID: app.TransactionID,
		Email:                 app.Email,
		FirstName:             app.FirstName,
		LastName:              app.LastName,
		LoanType:              app.LoanType,
		LoanAmount:            Round2(app.LoanAmount),
		Term:                  app.Term,
		DateApplied:           app.DateApplied,
		DateRejected:          rejectedAt,
		RejectionReason:       reason,
		Status:                consts.StatusRejected,
	}
}

func SerializeApprovalTransaction(approved models.ApprovedLoan) models.LoanTransaction {
	return models.LoanTransaction{
		ID:                    primitive.NewObjectID(),
		GUID:                  uuid.NewString(),
		MemberID:              approved.MemberID,
		TransactionID:         approved.TransactionID,
		OriginalTransactionID: approved.OriginalTransactionID,
		Type:                  consts.TransactionTypeLoanApproval,
		LoanType:              approved.LoanType,
		LoanAmount:            approved.LoanAmount,
		Term:                  approved.Term,
		InterestRate:          approved.InterestRate,
		TotalTermPayment:      approved.TotalTermPayment,
		ReleaseAmount:         approved.ReleaseAmount,
		ProcessingFee:         approved.ProcessingFee,
		BorrowedFromSavings:   approved.BorrowedFromSavings,
		Status:                consts.StatusApproved,
		CreatedAt:             time.Now(),
		PublishedToKafka:      false,
	}
}

func SerializeRejectionTransaction(rejected models.RejectedLoan) models.LoanTransaction {
	return models.LoanTransaction{
		ID:                    primitive.NewObjectID(),
		GUID:                  uuid.NewString(),
		MemberID:              rejected.MemberID,
		TransactionID:         rejected.TransactionID,
		OriginalTransactionID: rejected.OriginalTransactionID,
		Type:                  consts.TransactionTypeLoanRejection,
		LoanType:              rejected.LoanType,
		LoanAmount:            rejected.LoanAmount,
		Term:                  rejected.Term,
		RejectionReason:       rejected.RejectionReason,
		Status:                consts.StatusRejected,
		CreatedAt:             time.Now(),
		PublishedToKafka:      false,
	}
}

func SerializeFundsSnapshot(funds float64, at time.Time) models.FundsSnapshot {
	return models.FundsSnapshot{
		ID:        primitive.NewObjectID(),
		Timestamp: at,
		Funds:     Round2(funds),
	}
}

func SerializeSavingsSnapshot(savings float64, at time.Time) models.SavingsSnapshot {
	return models.SavingsSnapshot{
		ID:      primitive.NewObjectID(),
		Date:    ISODate(at),
		Savings: Round2(savings),
	}
}

func SerializeLoanNotification(memberID, transactionID string, dueDate time.Time, sentAt time.Time) models.LoanNotification {
	return models.LoanNotification{
		ID:            primitive.NewObjectID(),
		Key:           NotificationKey(memberID, transactionID),
		MemberID:      memberID,
		TransactionID: transactionID,
		DueDate:       dueDate,
		SentAt:        sentAt,
		ResendCount:   0,
	}
}
