package services

import (
	"context"
	"time"

	"fiveki/coop_loan_management/internal/pkg/common"
	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"
)

// LoanRejectionService records a decline: the application fields plus the
// rejection reason are copied into the rejected ledger and the transaction
// log, and the pending application is removed. No balances move.
type LoanRejectionService struct {
	applications LoanApplicationStoreInterface
	rejected     RejectedLoanStoreInterface
	transactions LoanTransactionStoreInterface
	kafka        KafkaPublisherInterface
	txnRunner    TxnRunnerInterface
}

func NewLoanRejectionService(
	applications LoanApplicationStoreInterface,
	rejected RejectedLoanStoreInterface,
	transactions LoanTransactionStoreInterface,
	kafka KafkaPublisherInterface,
	txnRunner TxnRunnerInterface,
) *LoanRejectionService {
	return &LoanRejectionService{
		applications: applications,
		rejected:     rejected,
		transactions: transactions,
		kafka:        kafka,
		txnRunner:    txnRunner,
	}
}

func (s *LoanRejectionService) RejectLoan(ctx context.Context, request models.LoanRejectionRequest) (*models.RejectedLoan, error) {
	if request.MemberID == "" || request.TransactionID == "" || request.RejectionReason == "" {
		return nil, consts.ErrorMissingRequiredInputs
	}

	application, err := s.applications.ApplicationByMemberAndTransaction(ctx, request.MemberID, request.TransactionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	transactionID := common.NewLoanTransactionID()

	rejectedLoan := common.SerializeRejectedLoan(*application, transactionID, request.RejectionReason, now)
	transaction := common.SerializeRejectionTransaction(rejectedLoan)

	txnErr := s.txnRunner.RunInTransaction(ctx, func(sessCtx context.Context) error {
		if err := s.rejected.CreateRejectedLoan(sessCtx, rejectedLoan); err != nil {
			return err
		}
		if err := s.transactions.CreateLoanTransaction(sessCtx, transaction); err != nil {
			return err
		}
		return s.applications.DeleteApplication(sessCtx, request.MemberID, request.TransactionID)
	})
	if txnErr != nil {
		logger.Error(ctx, "Rejection commit failed for member %s transaction %s: %v", request.MemberID, request.TransactionID, txnErr)
		return nil, txnErr
	}

	logger.Info(ctx, "Rejected loan application for member %s: transaction %s, reason %q",
		request.MemberID, transactionID, request.RejectionReason)

	if err := s.kafka.PublishLoanTransactionToKafka(ctx, transaction); err != nil {
		logger.Error(ctx, "Failed to publish loan transaction %s to Kafka: %v", transaction.GUID, err)
	} else if err := s.transactions.SetKafkaFlag(ctx, transaction.GUID); err != nil {
		logger.Error(ctx, "Failed to flag loan transaction %s as published: %v", transaction.GUID, err)
	}

	return &rejectedLoan, nil
}
