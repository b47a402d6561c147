package handlers

import (
	"net/http"

	"fiveki/coop_loan_management/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type LoanApplicationHandler struct {
	applications services.LoanApplicationStoreInterface
}

func NewLoanApplicationHandler(applications services.LoanApplicationStoreInterface) *LoanApplicationHandler {
	return &LoanApplicationHandler{applications: applications}
}

// ListApplications returns the pending loan applications for the dashboard
// review table.
func (h *LoanApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.applications.ListApplications(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications, "count": len(applications)})
}
