package consts

// Email events consumed by the mail relay.
const (
	LoanApprovedEvent    = "LOAN_APPROVED"
	LoanRejectedEvent    = "LOAN_REJECTED"
	LoanDueReminderEvent = "LOAN_DUE_REMINDER"
)

// Enumerated rejection reasons offered in the dashboard. Free text falls
// through to the generic template.
const (
	ReasonNoDepositActivity  = "No deposit activity"
	ReasonBelowSavingsFloor  = "Savings below required threshold"
	ReasonExistingUnpaidLoan = "Existing unpaid loan"
	ReasonSuspiciousActivity = "Suspicious activity"
)

// Canned rejection reasons in match order. Lookup walks this slice so a
// reason containing two keys always resolves to the first.
var RejectionReasonOrder = []string{
	ReasonNoDepositActivity,
	ReasonBelowSavingsFloor,
	ReasonExistingUnpaidLoan,
	ReasonSuspiciousActivity,
}

// Canned rejection messages, matched by substring against the stored reason.
var RejectionMessages = map[string]string{
	ReasonNoDepositActivity:  "Your loan application was declined because your account shows no recent deposit activity. Please make a deposit and re-apply.",
	ReasonBelowSavingsFloor:  "Your loan application was declined because your savings balance is below the required threshold for this loan amount.",
	ReasonExistingUnpaidLoan: "Your loan application was declined because you have an existing unpaid loan. Please settle your current balance first.",
	ReasonSuspiciousActivity: "Your loan application was declined following a review of recent account activity. Please contact the cooperative office.",
}

// GenericRejectionMessage is the fallback template when the stored reason
// matches none of the canned entries.
const GenericRejectionMessage = "Your loan application was declined. Reason: %s. Please contact the cooperative office for details."

// Transaction log entry types.
const (
	TransactionTypeLoanApproval  = "loanApproval"
	TransactionTypeLoanRejection = "loanRejection"
)

// Loan record statuses.
const (
	StatusApproved = "approved"
	StatusRejected = "rejected"
)
