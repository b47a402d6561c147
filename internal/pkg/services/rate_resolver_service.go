package services

import (
	"context"

	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/utils"
)

// RateResolverService looks up interest rates and the processing fee from the
// cooperative settings document.
type RateResolverService struct {
	settingsStore SettingsStoreInterface
}

func NewRateResolverService(settingsStore SettingsStoreInterface) *RateResolverService {
	return &RateResolverService{settingsStore: settingsStore}
}

// ResolveRate returns the interest rate percentage configured for a loan
// type and term. Term keys appear in the settings data both as entered
// ("12") and normalized, so both forms are probed. A missing rate is fatal
// and must be fixed by the admin, never defaulted.
func (s *RateResolverService) ResolveRate(ctx context.Context, loanType, term string) (float64, error) {
	settings, err := s.settingsStore.GetSettings(ctx)
	if err != nil {
		return 0, err
	}

	terms, ok := settings.LoanTypes[loanType]
	if !ok {
		logger.Error(ctx, "No rate table configured for loan type %q", loanType)
		return 0, consts.ErrorMissingLoanRate
	}

	raw, canonical, isNumeric := utils.NormalizeTerm(term)
	if rate, ok := terms[raw]; ok {
		return rate, nil
	}
	if isNumeric && canonical != raw {
		if rate, ok := terms[canonical]; ok {
			return rate, nil
		}
	}

	logger.Error(ctx, "No interest rate configured for loan type %q term %q", loanType, term)
	return 0, consts.ErrorMissingLoanRate
}

// ResolveFee returns the flat processing fee charged on every approval.
func (s *RateResolverService) ResolveFee(ctx context.Context) (float64, error) {
	settings, err := s.settingsStore.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	return settings.ProcessingFee, nil
}
