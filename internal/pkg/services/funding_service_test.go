package services

import (
	"errors"
	"testing"

	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFunding_FundedOutright(t *testing.T) {
	t.Parallel()
	s := NewFundingService()

	// memberBalance=9000, requested=8000, funds=100000
	plan, err := s.SelectFunding(8000, 9000, 100000, 0)
	require.NoError(t, err)

	assert.Equal(t, 8000.0, plan.FromMember)
	assert.Equal(t, 8000.0, plan.FromFunds)
	assert.Equal(t, 0.0, plan.FromSavings)
}

func TestSelectFunding_Monotonicity(t *testing.T) {
	t.Parallel()
	s := NewFundingService()

	// A sufficient member balance funds outright regardless of the pools.
	for _, funds := range []float64{1e6, 8000, 8000.01} {
		for _, savings := range []float64{0, 500, 1e6} {
			plan, err := s.SelectFunding(8000, 8000, funds, savings)
			require.NoError(t, err, "funds=%.2f savings=%.2f", funds, savings)
			assert.Equal(t, 0.0, plan.FromSavings)
		}
	}
}

func TestSelectFunding_MemberShortfallNeedsConfirmation(t *testing.T) {
	t.Parallel()
	s := NewFundingService()

	_, err := s.SelectFunding(8000, 5000, 100000, 5000)
	require.Error(t, err)

	var confirmation *models.ConfirmationRequired
	require.True(t, errors.As(err, &confirmation))
	assert.Equal(t, models.MemberBalanceShortfall, confirmation.Kind)
	assert.Equal(t, 3000.0, confirmation.Amount)
	assert.Equal(t, 5000.0, confirmation.AvailableSavings)
}

func TestSelectFunding_MemberShortfallExceedsSavings(t *testing.T) {
	t.Parallel()
	s := NewFundingService()

	// memberBalance=5000, requested=8000, savings=2000
	_, err := s.SelectFunding(8000, 5000, 100000, 2000)
	assert.ErrorIs(t, err, consts.ErrorInsufficientFunds)
}

func TestSelectFunding_ShortfallSavingsBoundary(t *testing.T) {
	t.Parallel()
	s := NewFundingService()

	// Shortfall exactly equal to savings still confirms.
	_, err := s.SelectFunding(8000, 5000, 100000, 3000)
	var confirmation *models.ConfirmationRequired
	require.True(t, errors.As(err, &confirmation))

	// One centavo over tips into failure.
	_, err = s.SelectFunding(8000.01, 5000, 100000, 3000)
	assert.ErrorIs(t, err, consts.ErrorInsufficientFunds)
}

func TestSelectFunding_FundsShortfallNeedsConfirmation(t *testing.T) {
	t.Parallel()
	s := NewFundingService()

	_, err := s.SelectFunding(8000, 9000, 6000, 5000)
	require.Error(t, err)

	var confirmation *models.ConfirmationRequired
	require.True(t, errors.As(err, &confirmation))
	assert.Equal(t, models.FundsShortfall, confirmation.Kind)
	assert.Equal(t, 2000.0, confirmation.Amount)
}

func TestConfirmedPlan_MemberShortfall(t *testing.T) {
	t.Parallel()
	s := NewFundingService()

	plan, err := s.ConfirmedPlan(models.MemberBalanceShortfall, 8000, 5000, 100000, 5000)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, plan.FromMember)
	assert.Equal(t, 8000.0, plan.FromFunds)
	assert.Equal(t, 3000.0, plan.FromSavings)
	assert.Equal(t, 3000.0, plan.MemberShortfall)
	assert.Equal(t, 0.0, plan.FundsShortfall)
}

func TestConfirmedPlan_CombinedShortfall(t *testing.T) {
	t.Parallel()
	s := NewFundingService()

	// Both the member balance and the pool are short. The savings draw is
	// the sum of both gaps, validated together: 3000 + 2000 against 4000
	// fails even though savings covers either gap alone.
	_, err := s.ConfirmedPlan(models.MemberBalanceShortfall, 8000, 5000, 6000, 4000)
	assert.ErrorIs(t, err, consts.ErrorInsufficientSavings)

	plan, err := s.ConfirmedPlan(models.MemberBalanceShortfall, 8000, 5000, 6000, 5000)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, plan.FromSavings)
	assert.Equal(t, 3000.0, plan.MemberShortfall)
	assert.Equal(t, 2000.0, plan.FundsShortfall)
	assert.Equal(t, 6000.0, plan.FromFunds)
}

func TestConfirmedPlan_FundsShortfall(t *testing.T) {
	t.Parallel()
	s := NewFundingService()

	plan, err := s.ConfirmedPlan(models.FundsShortfall, 8000, 9000, 6000, 5000)
	require.NoError(t, err)

	assert.Equal(t, 8000.0, plan.FromMember)
	assert.Equal(t, 6000.0, plan.FromFunds)
	assert.Equal(t, 2000.0, plan.FromSavings)

	_, err = s.ConfirmedPlan(models.FundsShortfall, 8000, 9000, 6000, 1999.99)
	assert.ErrorIs(t, err, consts.ErrorInsufficientSavings)
}

func TestConfirmedPlan_InvalidShortfallType(t *testing.T) {
	t.Parallel()
	s := NewFundingService()

	_, err := s.ConfirmedPlan("SOMETHING_ELSE", 8000, 5000, 6000, 5000)
	assert.ErrorIs(t, err, consts.ErrorInvalidShortfallType)
}
