package consts

// Ledger collections. These mirror the dashboard's path layout:
// Loans/{LoanApplications,ApprovedLoans,CurrentLoans,RejectedLoans},
// Transactions/Loans, Members, Settings and the two chart histories.
const (
	LoanApplicationsCollection  = "LoanApplications"
	ApprovedLoansCollection     = "ApprovedLoans"
	CurrentLoansCollection      = "CurrentLoans"
	RejectedLoansCollection     = "RejectedLoans"
	LoanTransactionsCollection  = "LoanTransactions"
	MembersCollection           = "Members"
	SettingsCollection          = "Settings"
	FundsHistoryCollection      = "FundsHistory"
	SavingsHistoryCollection    = "SavingsHistory"
	LoanNotificationsCollection = "LoanNotifications"
)
