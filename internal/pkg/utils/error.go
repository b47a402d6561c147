package utils

import (
	"errors"

	"fiveki/coop_loan_management/internal/pkg/models"
)

func GetErrorCode(err error) string {
	var customErr *models.CustomError
	if errors.As(err, &customErr) {
		return customErr.ErrorCode()
	}
	return "FIVEKI_INTERNAL_ERROR"
}
