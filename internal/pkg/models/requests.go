package models

// LoanApprovalRequest is the admin dashboard approve call. Confirmed is set
// on re-entry after a shortfall confirmation modal; ShortfallType and
// ShortfallAmount then carry the figures from the first pass.
type LoanApprovalRequest struct {
	MemberID        string  `json:"memberId" binding:"required"`
	TransactionID   string  `json:"transactionId" binding:"required"`
	Confirmed       bool    `json:"confirmed"`
	ShortfallType   string  `json:"shortfallType,omitempty"`
	ShortfallAmount float64 `json:"shortfallAmount,omitempty"`
}

type LoanRejectionRequest struct {
	MemberID        string `json:"memberId" binding:"required"`
	TransactionID   string `json:"transactionId" binding:"required"`
	RejectionReason string `json:"rejectionReason" binding:"required"`
}

// NotificationRequest triggers the outbound email for an already committed
// decision. The figures are taken from the stored record.
type NotificationRequest struct {
	MemberID      string `json:"memberId" binding:"required"`
	TransactionID string `json:"transactionId" binding:"required"`
}

type ReminderResendRequest struct {
	MemberID      string `json:"memberId" binding:"required"`
	TransactionID string `json:"transactionId" binding:"required"`
}
