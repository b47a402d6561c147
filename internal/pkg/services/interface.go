package services

import (
	"context"

	"fiveki/coop_loan_management/internal/pkg/models"
)

type LoanApplicationStoreInterface interface {
	ApplicationByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.LoanApplication, error)
	ListApplications(ctx context.Context) ([]models.LoanApplication, error)
	DeleteApplication(ctx context.Context, memberID, transactionID string) error
}

type ApprovedLoanStoreInterface interface {
	CreateApprovedLoan(ctx context.Context, loan models.ApprovedLoan) error
	ApprovedLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.ApprovedLoan, error)
}

type CurrentLoanStoreInterface interface {
	CreateCurrentLoan(ctx context.Context, loan models.CurrentLoan) error
	AllCurrentLoans(ctx context.Context) ([]models.CurrentLoan, error)
	CurrentLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.CurrentLoan, error)
}

type RejectedLoanStoreInterface interface {
	CreateRejectedLoan(ctx context.Context, loan models.RejectedLoan) error
	RejectedLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.RejectedLoan, error)
}

type LoanTransactionStoreInterface interface {
	CreateLoanTransaction(ctx context.Context, transaction models.LoanTransaction) error
	SetKafkaFlag(ctx context.Context, guid string) error
}

type TxnRunnerInterface interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type MemberStoreInterface interface {
	MemberByID(ctx context.Context, memberID string) (*models.Member, error)
	UpdateBalance(ctx context.Context, memberID string, newBalance float64) error
	AttachLoan(ctx context.Context, memberID string, loan models.ApprovedLoan) error
}

type SettingsStoreInterface interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	GetSettingsFresh(ctx context.Context) (*models.Settings, error)
	UpdateFundsAndSavings(ctx context.Context, funds, savings float64) error
	AppendFundsSnapshot(ctx context.Context, snapshot models.FundsSnapshot) error
	UpsertSavingsSnapshot(ctx context.Context, snapshot models.SavingsSnapshot) error
}

type LoanNotificationStoreInterface interface {
	NotificationExists(ctx context.Context, memberID, transactionID string) (bool, error)
	NotificationByKey(ctx context.Context, memberID, transactionID string) (*models.LoanNotification, error)
	CreateNotification(ctx context.Context, notification models.LoanNotification) error
	IncrementResendCount(ctx context.Context, memberID, transactionID string) error
}

type NotificationServiceInterface interface {
	SendApprovalNotification(ctx context.Context, memberID, transactionID string) error
	SendRejectionNotification(ctx context.Context, memberID, transactionID string) error
	SendDueReminder(ctx context.Context, loan models.CurrentLoan, daysUntilDue int) error
}

type KafkaPublisherInterface interface {
	PublishLoanTransactionToKafka(ctx context.Context, transaction models.LoanTransaction) error
}

type LoanApprovalServiceInterface interface {
	ApproveLoan(ctx context.Context, request models.LoanApprovalRequest) (*models.ApprovedLoan, error)
}

type LoanRejectionServiceInterface interface {
	RejectLoan(ctx context.Context, request models.LoanRejectionRequest) (*models.RejectedLoan, error)
}

type LoanReminderServiceInterface interface {
	ScanOnce(ctx context.Context) (*models.ReminderScanResult, error)
	Resend(ctx context.Context, memberID, transactionID string) error
}
