package consts

import "fiveki/coop_loan_management/internal/pkg/models"

var (
	ErrorLoanApplicationNotFound = &models.CustomError{
		Code:    "FIVEKI_LOAN_APPROVAL_APPLICATION_NOT_FOUND",
		Message: "Loan application no longer exists",
	}
	ErrorMemberNotFound = &models.CustomError{
		Code:    "FIVEKI_LOAN_APPROVAL_MEMBER_NOT_FOUND",
		Message: "Member record not found",
	}
	ErrorMissingLoanRate = &models.CustomError{
		Code:    "FIVEKI_LOAN_APPROVAL_CONFIGURATION_RATE_NOT_FOUND",
		Message: "No interest rate configured for the loan type and term",
	}
	ErrorMissingSettings = &models.CustomError{
		Code:    "FIVEKI_LOAN_APPROVAL_CONFIGURATION_SETTINGS_NOT_FOUND",
		Message: "Cooperative settings document not found",
	}
	ErrorInvalidLoanTerms = &models.CustomError{
		Code:    "FIVEKI_LOAN_APPROVAL_VALIDATION_INVALID_LOAN_TERMS",
		Message: "Loan principal, rate or term is not valid",
	}
	ErrorMissingRequiredInputs = &models.CustomError{
		Code:    "FIVEKI_LOAN_APPROVAL_VALIDATION_MISSING_REQUIRED_INPUTS",
		Message: "Required request fields are missing",
	}
	ErrorInsufficientFunds = &models.CustomError{
		Code:    "FIVEKI_LOAN_APPROVAL_INSUFFICIENT_FUNDS",
		Message: "Requested amount cannot be covered by member balance, funds and savings",
	}
	ErrorInsufficientSavings = &models.CustomError{
		Code:    "FIVEKI_LOAN_APPROVAL_INSUFFICIENT_SAVINGS_FOR_COMBINED_SHORTFALL",
		Message: "Savings reserve cannot cover the combined shortfall",
	}
	ErrorInvalidShortfallType = &models.CustomError{
		Code:    "FIVEKI_LOAN_APPROVAL_VALIDATION_INVALID_SHORTFALL_TYPE",
		Message: "Unknown shortfall type on confirmed approval",
	}
	ErrorLoanTransactionFailed = &models.CustomError{
		Code:    "FIVEKI_LOAN_APPROVAL_TRANSACTION_FAILED",
		Message: "Loan ledger transaction failed",
	}
	ErrorApprovedLoanNotFound = &models.CustomError{
		Code:    "FIVEKI_LOAN_NOTIFICATION_APPROVED_LOAN_NOT_FOUND",
		Message: "Approved loan record not found",
	}
	ErrorRejectedLoanNotFound = &models.CustomError{
		Code:    "FIVEKI_LOAN_NOTIFICATION_REJECTED_LOAN_NOT_FOUND",
		Message: "Rejected loan record not found",
	}
	ErrorCurrentLoanNotFound = &models.CustomError{
		Code:    "FIVEKI_LOAN_REMINDER_CURRENT_LOAN_NOT_FOUND",
		Message: "Current loan record not found",
	}
	ErrorReminderAlreadySent = &models.CustomError{
		Code:    "FIVEKI_LOAN_REMINDER_ALREADY_SENT",
		Message: "Reminder already sent for this loan",
	}
)
