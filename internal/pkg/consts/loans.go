package consts

// Business constants fixed by the cooperative's rules.
const (
	// Due date is always approval date + 30 calendar days, independent of
	// term.
	DueDateOffsetDays = 30

	// Re-issued transaction ids are 6-digit random strings. Collisions are
	// an accepted risk, matching the dashboard's behavior.
	TransactionIDMin = 100000
	TransactionIDMax = 999999

	// Reminder window fallback when Settings.loanReminderDays is unset.
	DefaultLoanReminderDays = 7
)

// Header keys masked by the request-detail middleware before logging.
var SensitiveKeys = []string{"Authorization", "X-Api-Key", "Cookie"}
