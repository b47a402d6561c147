package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockApprovedLoanStore struct{ mock.Mock }

func (m *MockApprovedLoanStore) ApprovedLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.ApprovedLoan, error) {
	args := m.Called(ctx, memberID, transactionID)
	if res := args.Get(0); res != nil {
		return res.(*models.ApprovedLoan), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRejectedLoanStore struct{ mock.Mock }

func (m *MockRejectedLoanStore) RejectedLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.RejectedLoan, error) {
	args := m.Called(ctx, memberID, transactionID)
	if res := args.Get(0); res != nil {
		return res.(*models.RejectedLoan), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPubSubPublisher struct{ mock.Mock }

func (m *MockPubSubPublisher) Publish(ctx context.Context, topic string, data []byte, attributes map[string]string) (string, error) {
	args := m.Called(ctx, topic, data, attributes)
	return args.String(0), args.Error(1)
}

func (m *MockPubSubPublisher) Stop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPubSubPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func storedApprovedLoan() *models.ApprovedLoan {
	return &models.ApprovedLoan{
		MemberID:            "M001",
		TransactionID:       "111222",
		Email:               "member@example.com",
		FirstName:           "Maria",
		LastName:            "Santos",
		LoanType:            "Regular Loan",
		LoanAmount:          10000,
		Term:                "6",
		InterestRate:        2,
		InterestPerTerm:     200,
		TotalTermPayment:    11200,
		MonthlyPayment:      1666.67,
		TotalMonthlyPayment: 1866.67,
		ReleaseAmount:       9900,
		ProcessingFee:       100,
		DisbursementMethod:  "GCash",
		DateApplied:         time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
		DateApproved:        time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		DueDate:             time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestSendApprovalNotification_UsesStoredFigures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	approvedStore := new(MockApprovedLoanStore)
	rejectedStore := new(MockRejectedLoanStore)
	publisher := new(MockPubSubPublisher)

	approvedStore.On("ApprovedLoanByMemberAndTransaction", ctx, "M001", "111222").Return(storedApprovedLoan(), nil)

	var published models.EmailNotificationRequest
	publisher.On("Publish", ctx, mock.AnythingOfType("string"), mock.Anything, map[string]string{"event": consts.LoanApprovedEvent}).
		Run(func(args mock.Arguments) {
			require.NoError(t, json.Unmarshal(args.Get(2).([]byte), &published))
		}).
		Return("msg-1", nil)

	service := NewNotificationService(publisher, approvedStore, rejectedStore)
	err := service.SendApprovalNotification(ctx, "M001", "111222")
	require.NoError(t, err)

	assert.Equal(t, consts.LoanApprovedEvent, published.Event)
	assert.Equal(t, "member@example.com", published.Email)

	params := map[string]string{}
	for _, p := range published.Parameters {
		params[p.Name] = p.Value
	}
	// Figures come straight from the stored record, not a recompute. The
	// mail relay templates read every field, so each one must be present.
	assert.Equal(t, "Maria", params["firstName"])
	assert.Equal(t, "Santos", params["lastName"])
	assert.Equal(t, "Regular Loan", params["loanType"])
	assert.Equal(t, "10000.00", params["loanAmount"])
	assert.Equal(t, "6", params["term"])
	assert.Equal(t, "2.00", params["interestRate"])
	assert.Equal(t, "200.00", params["interest"])
	assert.Equal(t, "1666.67", params["monthlyPayment"])
	assert.Equal(t, "1866.67", params["totalMonthlyPayment"])
	assert.Equal(t, "11200.00", params["totalTermPayment"])
	assert.Equal(t, "9900.00", params["releaseAmount"])
	assert.Equal(t, "100.00", params["processingFee"])
	assert.Equal(t, "GCash", params["disbursement"])
	assert.Equal(t, "2025-02-05", params["dateApplied"])
	assert.Equal(t, "2025-02-10", params["dateApproved"])
	assert.Equal(t, "2025-03-12", params["dueDate"])

	publisher.AssertExpectations(t)
}

func TestSendApprovalNotification_LoanNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	approvedStore := new(MockApprovedLoanStore)
	publisher := new(MockPubSubPublisher)

	approvedStore.On("ApprovedLoanByMemberAndTransaction", ctx, "M001", "999999").
		Return(nil, consts.ErrorApprovedLoanNotFound)

	service := NewNotificationService(publisher, approvedStore, new(MockRejectedLoanStore))
	err := service.SendApprovalNotification(ctx, "M001", "999999")

	assert.ErrorIs(t, err, consts.ErrorApprovedLoanNotFound)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendRejectionNotification_CannedMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	rejectedStore := new(MockRejectedLoanStore)
	publisher := new(MockPubSubPublisher)

	rejectedStore.On("RejectedLoanByMemberAndTransaction", ctx, "M001", "333444").Return(&models.RejectedLoan{
		MemberID:        "M001",
		TransactionID:   "333444",
		Email:           "member@example.com",
		LoanType:        "Regular Loan",
		LoanAmount:      10000,
		Term:            "6",
		DateApplied:     time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
		DateRejected:    time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		RejectionReason: "Declined: No deposit activity in the last 90 days",
	}, nil)

	var published models.EmailNotificationRequest
	publisher.On("Publish", ctx, mock.AnythingOfType("string"), mock.Anything, map[string]string{"event": consts.LoanRejectedEvent}).
		Run(func(args mock.Arguments) {
			require.NoError(t, json.Unmarshal(args.Get(2).([]byte), &published))
		}).
		Return("msg-2", nil)

	service := NewNotificationService(publisher, new(MockApprovedLoanStore), rejectedStore)
	err := service.SendRejectionNotification(ctx, "M001", "333444")
	require.NoError(t, err)

	params := map[string]string{}
	for _, p := range published.Parameters {
		params[p.Name] = p.Value
	}
	// Substring match against the stored reason picks the canned message,
	// and the raw reason travels alongside it for the template.
	assert.Equal(t, consts.RejectionMessages[consts.ReasonNoDepositActivity], params["message"])
	assert.Equal(t, "Declined: No deposit activity in the last 90 days", params["rejectionReason"])
	assert.Equal(t, "6", params["term"])
	assert.Equal(t, "2025-02-05", params["dateApplied"])
	assert.Equal(t, "2025-02-10", params["dateRejected"])
}

func TestRejectionMessageFor_CatalogOrder(t *testing.T) {
	t.Parallel()

	// A reason naming two canned entries resolves to the earlier catalog
	// entry on every call.
	reason := consts.ReasonNoDepositActivity + " and " + consts.ReasonSuspiciousActivity
	for i := 0; i < 50; i++ {
		assert.Equal(t, consts.RejectionMessages[consts.ReasonNoDepositActivity], RejectionMessageFor(reason))
	}
}

func TestRejectionMessageFor_GenericFallback(t *testing.T) {
	t.Parallel()

	message := RejectionMessageFor("Applied twice in one day")
	assert.Contains(t, message, "Applied twice in one day")
	assert.NotContains(t, message, "deposit activity")
}

func TestSendDueReminder_PublishError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	publisher := new(MockPubSubPublisher)
	publishErr := errors.New("pubsub unavailable")
	publisher.On("Publish", ctx, mock.AnythingOfType("string"), mock.Anything, mock.Anything).Return("", publishErr)

	service := NewNotificationService(publisher, new(MockApprovedLoanStore), new(MockRejectedLoanStore))
	err := service.SendDueReminder(ctx, models.CurrentLoan{
		MemberID:         "M001",
		TransactionID:    "111222",
		Email:            "member@example.com",
		RemainingBalance: 11200,
		DueDate:          time.Now().AddDate(0, 0, 3),
	}, 3)

	assert.ErrorIs(t, err, publishErr)
}
