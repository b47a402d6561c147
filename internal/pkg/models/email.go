package models

// EmailNotificationRequest is the payload published to the notification topic
// and consumed by the mail relay. Parameters carry the template placeholders.
type EmailNotificationRequest struct {
	MemberID      string                   `json:"memberId"`
	Email         string                   `json:"email"`
	Event         string                   `json:"event"`
	TransactionID string                   `json:"transactionId"`
	Parameters    []EmailTemplateParameter `json:"parameters"`
}

type EmailTemplateParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
