package handlers

import (
	"errors"
	"net/http"

	"fiveki/coop_loan_management/internal/pkg/models"
	"fiveki/coop_loan_management/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the dashboard's response shape.
// Business errors carry their catalog code; anything else is a plain 500.
func respondError(c *gin.Context, err error) {
	var customErr *models.CustomError
	if errors.As(err, &customErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errorCode": utils.GetErrorCode(err),
			"error":     customErr.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
