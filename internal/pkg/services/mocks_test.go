package services

import (
	"context"

	"fiveki/coop_loan_management/internal/pkg/models"

	"github.com/stretchr/testify/mock"
)

type MockLoanApplicationStore struct{ mock.Mock }

func (m *MockLoanApplicationStore) ApplicationByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.LoanApplication, error) {
	args := m.Called(ctx, memberID, transactionID)
	if res := args.Get(0); res != nil {
		return res.(*models.LoanApplication), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanApplicationStore) ListApplications(ctx context.Context) ([]models.LoanApplication, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.LoanApplication), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanApplicationStore) DeleteApplication(ctx context.Context, memberID, transactionID string) error {
	args := m.Called(ctx, memberID, transactionID)
	return args.Error(0)
}

type MockApprovedLoanStore struct{ mock.Mock }

func (m *MockApprovedLoanStore) CreateApprovedLoan(ctx context.Context, loan models.ApprovedLoan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockApprovedLoanStore) ApprovedLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.ApprovedLoan, error) {
	args := m.Called(ctx, memberID, transactionID)
	if res := args.Get(0); res != nil {
		return res.(*models.ApprovedLoan), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCurrentLoanStore struct{ mock.Mock }

func (m *MockCurrentLoanStore) CreateCurrentLoan(ctx context.Context, loan models.CurrentLoan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockCurrentLoanStore) AllCurrentLoans(ctx context.Context) ([]models.CurrentLoan, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.CurrentLoan), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCurrentLoanStore) CurrentLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.CurrentLoan, error) {
	args := m.Called(ctx, memberID, transactionID)
	if res := args.Get(0); res != nil {
		return res.(*models.CurrentLoan), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRejectedLoanStore struct{ mock.Mock }

func (m *MockRejectedLoanStore) CreateRejectedLoan(ctx context.Context, loan models.RejectedLoan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockRejectedLoanStore) RejectedLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.RejectedLoan, error) {
	args := m.Called(ctx, memberID, transactionID)
	if res := args.Get(0); res != nil {
		return res.(*models.RejectedLoan), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockLoanTransactionStore struct{ mock.Mock }

func (m *MockLoanTransactionStore) CreateLoanTransaction(ctx context.Context, transaction models.LoanTransaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockLoanTransactionStore) SetKafkaFlag(ctx context.Context, guid string) error {
	args := m.Called(ctx, guid)
	return args.Error(0)
}

type MockMemberStore struct{ mock.Mock }

func (m *MockMemberStore) MemberByID(ctx context.Context, memberID string) (*models.Member, error) {
	args := m.Called(ctx, memberID)
	if res := args.Get(0); res != nil {
		return res.(*models.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberStore) UpdateBalance(ctx context.Context, memberID string, newBalance float64) error {
	args := m.Called(ctx, memberID, newBalance)
	return args.Error(0)
}

func (m *MockMemberStore) AttachLoan(ctx context.Context, memberID string, loan models.ApprovedLoan) error {
	args := m.Called(ctx, memberID, loan)
	return args.Error(0)
}

type MockSettingsStore struct{ mock.Mock }

func (m *MockSettingsStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*models.Settings), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSettingsStore) GetSettingsFresh(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*models.Settings), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSettingsStore) UpdateFundsAndSavings(ctx context.Context, funds, savings float64) error {
	args := m.Called(ctx, funds, savings)
	return args.Error(0)
}

func (m *MockSettingsStore) AppendFundsSnapshot(ctx context.Context, snapshot models.FundsSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSettingsStore) UpsertSavingsSnapshot(ctx context.Context, snapshot models.SavingsSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type MockLoanNotificationStore struct{ mock.Mock }

func (m *MockLoanNotificationStore) NotificationExists(ctx context.Context, memberID, transactionID string) (bool, error) {
	args := m.Called(ctx, memberID, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoanNotificationStore) NotificationByKey(ctx context.Context, memberID, transactionID string) (*models.LoanNotification, error) {
	args := m.Called(ctx, memberID, transactionID)
	if res := args.Get(0); res != nil {
		return res.(*models.LoanNotification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanNotificationStore) CreateNotification(ctx context.Context, notification models.LoanNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockLoanNotificationStore) IncrementResendCount(ctx context.Context, memberID, transactionID string) error {
	args := m.Called(ctx, memberID, transactionID)
	return args.Error(0)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) SendApprovalNotification(ctx context.Context, memberID, transactionID string) error {
	args := m.Called(ctx, memberID, transactionID)
	return args.Error(0)
}

func (m *MockNotificationService) SendRejectionNotification(ctx context.Context, memberID, transactionID string) error {
	args := m.Called(ctx, memberID, transactionID)
	return args.Error(0)
}

func (m *MockNotificationService) SendDueReminder(ctx context.Context, loan models.CurrentLoan, daysUntilDue int) error {
	args := m.Called(ctx, loan, daysUntilDue)
	return args.Error(0)
}

type MockKafkaPublisher struct{ mock.Mock }

func (m *MockKafkaPublisher) PublishLoanTransactionToKafka(ctx context.Context, transaction models.LoanTransaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// passthroughTxnRunner runs the commit callback directly, standing in for
// the Mongo session runner.
type passthroughTxnRunner struct{}

func (passthroughTxnRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
