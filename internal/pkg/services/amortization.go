package services

import (
	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/models"
	"fiveki/coop_loan_management/internal/pkg/utils"
)

// ComputeAmortization derives the repayment figures for a flat per-term rate
// loan. The rate applies to the original principal every month of the term:
//
//	interestPerTerm     = principal * rate / 100
//	totalInterest       = interestPerTerm * months
//	totalTermPayment    = principal + totalInterest
//	monthlyPayment      = principal / months
//	totalMonthlyPayment = totalTermPayment / months
//	releaseAmount       = principal - processingFee
//
// Figures are returned unrounded; serialization rounds to two decimals when
// the record is stored.
func ComputeAmortization(principal, rate float64, term string, processingFee float64) (models.Amortization, error) {
	months, err := utils.TermMonths(term)
	if err != nil {
		return models.Amortization{}, err
	}
	if !utils.IsFiniteAmount(principal, rate, processingFee) || principal <= 0 {
		return models.Amortization{}, consts.ErrorInvalidLoanTerms
	}

	interestPerTerm := principal * rate / 100
	totalInterest := interestPerTerm * float64(months)
	totalTermPayment := principal + totalInterest

	return models.Amortization{
		InterestRate:        rate,
		InterestPerTerm:     interestPerTerm,
		TotalInterest:       totalInterest,
		TotalTermPayment:    totalTermPayment,
		MonthlyPayment:      principal / float64(months),
		TotalMonthlyPayment: totalTermPayment / float64(months),
		ReleaseAmount:       principal - processingFee,
		ProcessingFee:       processingFee,
	}, nil
}
