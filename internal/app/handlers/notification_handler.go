package handlers

import (
	"net/http"

	"fiveki/coop_loan_management/internal/pkg/models"
	"fiveki/coop_loan_management/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

// NotificationHandler triggers the member emails for already-committed
// decisions. Notification is an explicit second call from the dashboard, not
// a side effect of the commit.
type NotificationHandler struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationHandler(notificationService services.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) SendApprovalNotification(c *gin.Context) {
	var request models.NotificationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.notificationService.SendApprovalNotification(c.Request.Context(), request.MemberID, request.TransactionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Approval notification sent"})
}

func (h *NotificationHandler) SendRejectionNotification(c *gin.Context) {
	var request models.NotificationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.notificationService.SendRejectionNotification(c.Request.Context(), request.MemberID, request.TransactionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rejection notification sent"})
}
