package services

import (
	"context"
	"errors"
	"testing"

	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rejectionFixture() (*LoanRejectionService, *MockLoanApplicationStore, *MockRejectedLoanStore, *MockLoanTransactionStore, *MockKafkaPublisher) {
	applications := new(MockLoanApplicationStore)
	rejected := new(MockRejectedLoanStore)
	transactions := new(MockLoanTransactionStore)
	kafka := new(MockKafkaPublisher)

	service := NewLoanRejectionService(applications, rejected, transactions, kafka, passthroughTxnRunner{})
	return service, applications, rejected, transactions, kafka
}

func TestRejectLoan_Success(t *testing.T) {
	t.Parallel()

	service, applications, rejected, transactions, kafka := rejectionFixture()

	applications.On("ApplicationByMemberAndTransaction", mock.Anything, "M001", "654321").Return(pendingApplication(), nil)
	rejected.On("CreateRejectedLoan", mock.Anything, mock.MatchedBy(func(loan models.RejectedLoan) bool {
		return loan.RejectionReason == "No deposit activity" && loan.OriginalTransactionID == "654321"
	})).Return(nil)
	transactions.On("CreateLoanTransaction", mock.Anything, mock.MatchedBy(func(txn models.LoanTransaction) bool {
		return txn.Type == consts.TransactionTypeLoanRejection
	})).Return(nil)
	applications.On("DeleteApplication", mock.Anything, "M001", "654321").Return(nil)
	kafka.On("PublishLoanTransactionToKafka", mock.Anything, mock.AnythingOfType("models.LoanTransaction")).Return(nil)
	transactions.On("SetKafkaFlag", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	result, err := service.RejectLoan(context.Background(), models.LoanRejectionRequest{
		MemberID:        "M001",
		TransactionID:   "654321",
		RejectionReason: "No deposit activity",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, consts.StatusRejected, result.Status)
	assert.NotEqual(t, "654321", result.TransactionID)

	applications.AssertExpectations(t)
	rejected.AssertExpectations(t)
	transactions.AssertExpectations(t)
}

func TestRejectLoan_MissingReason(t *testing.T) {
	t.Parallel()

	service, _, _, _, _ := rejectionFixture()

	_, err := service.RejectLoan(context.Background(), models.LoanRejectionRequest{MemberID: "M001", TransactionID: "654321"})
	assert.ErrorIs(t, err, consts.ErrorMissingRequiredInputs)
}

func TestRejectLoan_ApplicationNotFound(t *testing.T) {
	t.Parallel()

	service, applications, rejected, _, _ := rejectionFixture()

	applications.On("ApplicationByMemberAndTransaction", mock.Anything, "M001", "654321").
		Return(nil, consts.ErrorLoanApplicationNotFound)

	_, err := service.RejectLoan(context.Background(), models.LoanRejectionRequest{
		MemberID:        "M001",
		TransactionID:   "654321",
		RejectionReason: "Suspicious activity",
	})
	assert.ErrorIs(t, err, consts.ErrorLoanApplicationNotFound)
	rejected.AssertNotCalled(t, "CreateRejectedLoan", mock.Anything, mock.Anything)
}

func TestRejectLoan_CommitFailureSurfaces(t *testing.T) {
	t.Parallel()

	service, applications, rejected, _, kafka := rejectionFixture()

	applications.On("ApplicationByMemberAndTransaction", mock.Anything, "M001", "654321").Return(pendingApplication(), nil)
	writeErr := errors.New("write failed")
	rejected.On("CreateRejectedLoan", mock.Anything, mock.AnythingOfType("models.RejectedLoan")).Return(writeErr)

	_, err := service.RejectLoan(context.Background(), models.LoanRejectionRequest{
		MemberID:        "M001",
		TransactionID:   "654321",
		RejectionReason: "Existing unpaid loan",
	})
	assert.ErrorIs(t, err, writeErr)
	kafka.AssertNotCalled(t, "PublishLoanTransactionToKafka", mock.Anything, mock.Anything)
}
