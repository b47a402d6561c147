package services

import (
	"context"
	"time"

	"fiveki/coop_loan_management/internal/pkg/common"
	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"
)

// LoanApprovalService sequences the end-to-end approval of a pending
// application: validate, resolve the rate, compute the amortization, select
// the funding split, then commit the ledger writes in one Mongo transaction.
type LoanApprovalService struct {
	applications LoanApplicationStoreInterface
	members      MemberStoreInterface
	settings     SettingsStoreInterface
	approved     ApprovedLoanStoreInterface
	current      CurrentLoanStoreInterface
	transactions LoanTransactionStoreInterface
	rates        *RateResolverService
	funding      *FundingService
	kafka        KafkaPublisherInterface
	txnRunner    TxnRunnerInterface
}

func NewLoanApprovalService(
	applications LoanApplicationStoreInterface,
	members MemberStoreInterface,
	settings SettingsStoreInterface,
	approved ApprovedLoanStoreInterface,
	current CurrentLoanStoreInterface,
	transactions LoanTransactionStoreInterface,
	rates *RateResolverService,
	funding *FundingService,
	kafka KafkaPublisherInterface,
	txnRunner TxnRunnerInterface,
) *LoanApprovalService {
	return &LoanApprovalService{
		applications: applications,
		members:      members,
		settings:     settings,
		approved:     approved,
		current:      current,
		transactions: transactions,
		rates:        rates,
		funding:      funding,
		kafka:        kafka,
		txnRunner:    txnRunner,
	}
}

// ApproveLoan runs the approval state machine for one application. A
// shortfall that savings can cover returns ConfirmationRequired; the caller
// re-invokes with Confirmed and the shortfall kind, and the commit then
// re-validates the savings draw against fresh balances before writing.
func (s *LoanApprovalService) ApproveLoan(ctx context.Context, request models.LoanApprovalRequest) (*models.ApprovedLoan, error) {
	if request.MemberID == "" || request.TransactionID == "" {
		return nil, consts.ErrorMissingRequiredInputs
	}

	// Fresh reads: the application may have been decided from another
	// session, and the pools move with every approval.
	application, err := s.applications.ApplicationByMemberAndTransaction(ctx, request.MemberID, request.TransactionID)
	if err != nil {
		return nil, err
	}

	member, err := s.members.MemberByID(ctx, request.MemberID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetSettingsFresh(ctx)
	if err != nil {
		return nil, err
	}

	rate, err := s.rates.ResolveRate(ctx, application.LoanType, application.Term)
	if err != nil {
		return nil, err
	}

	amortization, err := ComputeAmortization(application.LoanAmount, rate, application.Term, settings.ProcessingFee)
	if err != nil {
		return nil, err
	}

	var plan models.FundingPlan
	if request.Confirmed {
		plan, err = s.funding.ConfirmedPlan(request.ShortfallType, application.LoanAmount, member.Balance, settings.Funds, settings.Savings)
	} else {
		plan, err = s.funding.SelectFunding(application.LoanAmount, member.Balance, settings.Funds, settings.Savings)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	transactionID := common.NewLoanTransactionID()

	approvedLoan := common.SerializeApprovedLoan(*application, transactionID, amortization, plan.FromSavings, now)
	currentLoan := common.SerializeCurrentLoan(approvedLoan)
	transaction := common.SerializeApprovalTransaction(approvedLoan)

	newBalance := common.CeilBalance(member.Balance - plan.FromMember)
	newFunds := settings.Funds - plan.FromFunds
	newSavings := settings.Savings - plan.FromSavings + settings.ProcessingFee

	txnErr := s.txnRunner.RunInTransaction(ctx, func(sessCtx context.Context) error {
		if err := s.approved.CreateApprovedLoan(sessCtx, approvedLoan); err != nil {
			return err
		}
		if err := s.current.CreateCurrentLoan(sessCtx, currentLoan); err != nil {
			return err
		}
		if err := s.transactions.CreateLoanTransaction(sessCtx, transaction); err != nil {
			return err
		}
		if err := s.members.AttachLoan(sessCtx, member.MemberID, approvedLoan); err != nil {
			return err
		}
		if err := s.members.UpdateBalance(sessCtx, member.MemberID, newBalance); err != nil {
			return err
		}
		if err := s.settings.UpdateFundsAndSavings(sessCtx, newFunds, newSavings); err != nil {
			return err
		}
		if err := s.settings.AppendFundsSnapshot(sessCtx, common.SerializeFundsSnapshot(newFunds, now)); err != nil {
			return err
		}
		if err := s.settings.UpsertSavingsSnapshot(sessCtx, common.SerializeSavingsSnapshot(newSavings, now)); err != nil {
			return err
		}
		return s.applications.DeleteApplication(sessCtx, request.MemberID, request.TransactionID)
	})
	if txnErr != nil {
		logger.Error(ctx, "Approval commit failed for member %s transaction %s: %v", request.MemberID, request.TransactionID, txnErr)
		return nil, txnErr
	}

	logger.Info(ctx, "Approved loan for member %s: transaction %s, funded %.2f/%.2f/%.2f from member/funds/savings",
		member.MemberID, transactionID, plan.FromMember, plan.FromFunds, plan.FromSavings)

	s.publishTransaction(ctx, transaction)

	return &approvedLoan, nil
}

// publishTransaction reports the committed transaction to the reporting
// topic. Failures leave publishedToKafka false for the retry endpoint.
func (s *LoanApprovalService) publishTransaction(ctx context.Context, transaction models.LoanTransaction) {
	if err := s.kafka.PublishLoanTransactionToKafka(ctx, transaction); err != nil {
		logger.Error(ctx, "Failed to publish loan transaction %s to Kafka: %v", transaction.GUID, err)
		return
	}
	if err := s.transactions.SetKafkaFlag(ctx, transaction.GUID); err != nil {
		logger.Error(ctx, "Failed to flag loan transaction %s as published: %v", transaction.GUID, err)
	}
}
