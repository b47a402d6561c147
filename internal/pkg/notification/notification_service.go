package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fiveki/coop_loan_management/configs"
	"fiveki/coop_loan_management/internal/pkg/common"
	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"
	"fiveki/coop_loan_management/internal/pkg/pubsub"
)

type ApprovedLoanStore interface {
	ApprovedLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.ApprovedLoan, error)
}

type RejectedLoanStore interface {
	RejectedLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.RejectedLoan, error)
}

// NotificationService builds member email payloads from stored loan records
// and hands them to the mail relay via Pub/Sub. Figures are taken verbatim
// from the stored records, never recomputed.
type NotificationService struct {
	publisher     pubsub.PubSubPublisherInterface
	approvedLoans ApprovedLoanStore
	rejectedLoans RejectedLoanStore
}

func NewNotificationService(
	publisher pubsub.PubSubPublisherInterface,
	approvedLoans ApprovedLoanStore,
	rejectedLoans RejectedLoanStore,
) *NotificationService {
	return &NotificationService{
		publisher:     publisher,
		approvedLoans: approvedLoans,
		rejectedLoans: rejectedLoans,
	}
}

// SendApprovalNotification emails the member the figures of their approved
// loan as recorded at commit time.
func (n *NotificationService) SendApprovalNotification(ctx context.Context, memberID, transactionID string) error {
	approved, err := n.approvedLoans.ApprovedLoanByMemberAndTransaction(ctx, memberID, transactionID)
	if err != nil {
		return err
	}

	request := models.EmailNotificationRequest{
		MemberID:      approved.MemberID,
		Email:         approved.Email,
		Event:         consts.LoanApprovedEvent,
		TransactionID: approved.TransactionID,
		Parameters: []models.EmailTemplateParameter{
			{Name: "firstName", Value: approved.FirstName},
			{Name: "lastName", Value: approved.LastName},
			{Name: "loanType", Value: approved.LoanType},
			{Name: "loanAmount", Value: formatAmount(approved.LoanAmount)},
			{Name: "term", Value: approved.Term},
			{Name: "interestRate", Value: formatAmount(approved.InterestRate)},
			{Name: "interest", Value: formatAmount(approved.InterestPerTerm)},
			{Name: "monthlyPayment", Value: formatAmount(approved.MonthlyPayment)},
			{Name: "totalMonthlyPayment", Value: formatAmount(approved.TotalMonthlyPayment)},
			{Name: "totalTermPayment", Value: formatAmount(approved.TotalTermPayment)},
			{Name: "releaseAmount", Value: formatAmount(approved.ReleaseAmount)},
			{Name: "processingFee", Value: formatAmount(approved.ProcessingFee)},
			{Name: "disbursement", Value: approved.DisbursementMethod},
			{Name: "dateApplied", Value: common.ISODate(approved.DateApplied)},
			{Name: "dateApproved", Value: common.ISODate(approved.DateApproved)},
			{Name: "dueDate", Value: common.ISODate(approved.DueDate)},
		},
	}

	return n.publish(ctx, request)
}

// SendRejectionNotification emails the member the decline message matching
// the recorded rejection reason.
func (n *NotificationService) SendRejectionNotification(ctx context.Context, memberID, transactionID string) error {
	rejected, err := n.rejectedLoans.RejectedLoanByMemberAndTransaction(ctx, memberID, transactionID)
	if err != nil {
		return err
	}

	request := models.EmailNotificationRequest{
		MemberID:      rejected.MemberID,
		Email:         rejected.Email,
		Event:         consts.LoanRejectedEvent,
		TransactionID: rejected.TransactionID,
		Parameters: []models.EmailTemplateParameter{
			{Name: "firstName", Value: rejected.FirstName},
			{Name: "lastName", Value: rejected.LastName},
			{Name: "loanType", Value: rejected.LoanType},
			{Name: "loanAmount", Value: formatAmount(rejected.LoanAmount)},
			{Name: "term", Value: rejected.Term},
			{Name: "dateApplied", Value: common.ISODate(rejected.DateApplied)},
			{Name: "dateRejected", Value: common.ISODate(rejected.DateRejected)},
			{Name: "rejectionReason", Value: rejected.RejectionReason},
			{Name: "message", Value: RejectionMessageFor(rejected.RejectionReason)},
		},
	}

	return n.publish(ctx, request)
}

// SendDueReminder emails the member ahead of their due date. The amount is
// the live remaining balance, not the original term payment.
func (n *NotificationService) SendDueReminder(ctx context.Context, loan models.CurrentLoan, daysUntilDue int) error {
	request := models.EmailNotificationRequest{
		MemberID:      loan.MemberID,
		Email:         loan.Email,
		Event:         consts.LoanDueReminderEvent,
		TransactionID: loan.TransactionID,
		Parameters: []models.EmailTemplateParameter{
			{Name: "firstName", Value: loan.FirstName},
			{Name: "lastName", Value: loan.LastName},
			{Name: "loanType", Value: loan.LoanType},
			{Name: "remainingBalance", Value: formatAmount(loan.RemainingBalance)},
			{Name: "dueDate", Value: common.ISODate(loan.DueDate)},
			{Name: "daysUntilDue", Value: fmt.Sprintf("%d", daysUntilDue)},
		},
	}

	return n.publish(ctx, request)
}

func (n *NotificationService) publish(ctx context.Context, request models.EmailNotificationRequest) error {
	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal email notification for member %s: %w", request.MemberID, err)
	}

	attributes := map[string]string{"event": request.Event}
	messageID, err := n.publisher.Publish(ctx, configs.PUBSUB_TOPIC, payload, attributes)
	if err != nil {
		return err
	}

	logger.Info(ctx, "Published %s notification for member %s transaction %s with message ID %s",
		request.Event, request.MemberID, request.TransactionID, messageID)
	return nil
}

// RejectionMessageFor maps a stored rejection reason to its member-facing
// message by substring match in catalog order, falling back to the generic
// template.
func RejectionMessageFor(reason string) string {
	for _, key := range consts.RejectionReasonOrder {
		if strings.Contains(reason, key) {
			return consts.RejectionMessages[key]
		}
	}
	return fmt.Sprintf(consts.GenericRejectionMessage, reason)
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
