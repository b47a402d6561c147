package handlers

import (
	"net/http"

	"fiveki/coop_loan_management/internal/pkg/models"
	"fiveki/coop_loan_management/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type LoanRejectionHandler struct {
	rejectionService services.LoanRejectionServiceInterface
}

func NewLoanRejectionHandler(rejectionService services.LoanRejectionServiceInterface) *LoanRejectionHandler {
	return &LoanRejectionHandler{rejectionService: rejectionService}
}

func (h *LoanRejectionHandler) RejectLoan(c *gin.Context) {
	var request models.LoanRejectionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rejected, err := h.rejectionService.RejectLoan(c.Request.Context(), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rejectedLoan": rejected})
}
