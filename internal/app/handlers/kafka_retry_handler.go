package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type KafkaRetryService interface {
	RetryLoanTransactionMessages(ctx context.Context) ([]string, []string, error)
}

type KafkaRetryHandler struct {
	service KafkaRetryService
}

func NewKafkaRetryHandler(service KafkaRetryService) *KafkaRetryHandler {
	return &KafkaRetryHandler{service: service}
}

func (h *KafkaRetryHandler) RetryLoanTransactionMessages(c *gin.Context) {
	successMessages, failedMessages, err := h.service.RetryLoanTransactionMessages(c.Request.Context())
	if err != nil && len(successMessages) > 0 {
		c.JSON(http.StatusOK, gin.H{"successMessages": successMessages, "failedMessages": failedMessages, "error": err.Error()})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"successMessages": successMessages, "failedMessages": failedMessages})
}
