package handlers

import (
	"errors"
	"net/http"

	"fiveki/coop_loan_management/internal/pkg/models"
	"fiveki/coop_loan_management/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type LoanApprovalHandler struct {
	approvalService services.LoanApprovalServiceInterface
}

func NewLoanApprovalHandler(approvalService services.LoanApprovalServiceInterface) *LoanApprovalHandler {
	return &LoanApprovalHandler{approvalService: approvalService}
}

// ApproveLoan commits an approval. A shortfall that savings can cover is not
// a failure: it comes back as 409 with the figures the dashboard needs for
// its confirmation modal, and the client re-posts with confirmed=true.
func (h *LoanApprovalHandler) ApproveLoan(c *gin.Context) {
	var request models.LoanApprovalRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	approved, err := h.approvalService.ApproveLoan(c.Request.Context(), request)
	if err != nil {
		var confirmation *models.ConfirmationRequired
		if errors.As(err, &confirmation) {
			c.JSON(http.StatusConflict, gin.H{
				"confirmationRequired": true,
				"shortfallType":        confirmation.Kind,
				"shortfallAmount":      confirmation.Amount,
				"availableSavings":     confirmation.AvailableSavings,
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"approvedLoan": approved})
}
