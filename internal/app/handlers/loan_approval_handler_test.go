package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockApprovalService struct{ mock.Mock }

func (m *MockApprovalService) ApproveLoan(ctx context.Context, request models.LoanApprovalRequest) (*models.ApprovedLoan, error) {
	args := m.Called(ctx, request)
	if res := args.Get(0); res != nil {
		return res.(*models.ApprovedLoan), args.Error(1)
	}
	return nil, args.Error(1)
}

func approvalRouter(service *MockApprovalService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewLoanApprovalHandler(service)
	r.POST("/LoanServices/Coop/LoanApproval", handler.ApproveLoan)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApproveLoanHandler_Success(t *testing.T) {
	service := new(MockApprovalService)
	service.On("ApproveLoan", mock.Anything, mock.AnythingOfType("models.LoanApprovalRequest")).
		Return(&models.ApprovedLoan{MemberID: "M001", TransactionID: "111222", TotalTermPayment: 11200}, nil)

	w := postJSON(t, approvalRouter(service), "/LoanServices/Coop/LoanApproval",
		models.LoanApprovalRequest{MemberID: "M001", TransactionID: "654321"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "111222")
}

func TestApproveLoanHandler_ConfirmationRequired(t *testing.T) {
	service := new(MockApprovalService)
	service.On("ApproveLoan", mock.Anything, mock.AnythingOfType("models.LoanApprovalRequest")).
		Return(nil, &models.ConfirmationRequired{
			Kind:             models.MemberBalanceShortfall,
			Amount:           3000,
			AvailableSavings: 5000,
		})

	w := postJSON(t, approvalRouter(service), "/LoanServices/Coop/LoanApproval",
		models.LoanApprovalRequest{MemberID: "M001", TransactionID: "654321"})

	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["confirmationRequired"])
	assert.Equal(t, models.MemberBalanceShortfall, body["shortfallType"])
	assert.Equal(t, 3000.0, body["shortfallAmount"])
}

func TestApproveLoanHandler_BusinessError(t *testing.T) {
	service := new(MockApprovalService)
	service.On("ApproveLoan", mock.Anything, mock.AnythingOfType("models.LoanApprovalRequest")).
		Return(nil, consts.ErrorInsufficientFunds)

	w := postJSON(t, approvalRouter(service), "/LoanServices/Coop/LoanApproval",
		models.LoanApprovalRequest{MemberID: "M001", TransactionID: "654321"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), consts.ErrorInsufficientFunds.Code)
}

func TestApproveLoanHandler_BadRequest(t *testing.T) {
	service := new(MockApprovalService)

	// memberId is required by the binding.
	w := postJSON(t, approvalRouter(service), "/LoanServices/Coop/LoanApproval",
		map[string]string{"transactionId": "654321"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "ApproveLoan", mock.Anything, mock.Anything)
}
