package handlers

import (
	"net/http"

	"fiveki/coop_loan_management/internal/pkg/models"
	"fiveki/coop_loan_management/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderService services.LoanReminderServiceInterface
}

func NewReminderHandler(reminderService services.LoanReminderServiceInterface) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// ScanNow runs one reminder pass outside the schedule, for manual kicks from
// the dashboard.
func (h *ReminderHandler) ScanNow(c *gin.Context) {
	result, err := h.reminderService.ScanOnce(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Resend re-sends one member's due reminder regardless of the idempotency
// marker.
func (h *ReminderHandler) Resend(c *gin.Context) {
	var request models.ReminderResendRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reminderService.Resend(c.Request.Context(), request.MemberID, request.TransactionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder re-sent"})
}
