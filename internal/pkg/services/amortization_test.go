package services

import (
	"testing"

	"fiveki/coop_loan_management/internal/pkg/common"
	"fiveki/coop_loan_management/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAmortization_FlatRate(t *testing.T) {
	t.Parallel()

	// principal=10000, rate=2%, term=6
	amort, err := ComputeAmortization(10000, 2, "6", 100)
	require.NoError(t, err)

	assert.Equal(t, 200.0, amort.InterestPerTerm)
	assert.Equal(t, 1200.0, amort.TotalInterest)
	assert.Equal(t, 11200.0, amort.TotalTermPayment)
	assert.Equal(t, 1866.67, common.Round2(amort.TotalMonthlyPayment))
	assert.Equal(t, 9900.0, amort.ReleaseAmount)
}

func TestComputeAmortization_Identity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		principal float64
		rate      float64
		term      string
		months    int
	}{
		{1000, 1.5, "3", 3},
		{25000, 3, "12", 12},
		{333.33, 2.75, "7", 7},
		{50000, 0, "24", 24},
	}

	for _, tc := range cases {
		amort, err := ComputeAmortization(tc.principal, tc.rate, tc.term, 0)
		require.NoError(t, err)

		expected := common.Round2(tc.principal + tc.principal*(tc.rate/100)*float64(tc.months))
		assert.Equal(t, expected, common.Round2(amort.TotalTermPayment),
			"principal=%.2f rate=%.2f term=%s", tc.principal, tc.rate, tc.term)
		assert.InDelta(t, amort.TotalTermPayment/float64(tc.months), amort.TotalMonthlyPayment, 1e-9)
	}
}

func TestComputeAmortization_InvalidTerm(t *testing.T) {
	t.Parallel()

	for _, term := range []string{"0", "-3", "abc", ""} {
		_, err := ComputeAmortization(10000, 2, term, 100)
		assert.ErrorIs(t, err, consts.ErrorInvalidLoanTerms, "term=%q", term)
	}
}

func TestComputeAmortization_NonFiniteInputs(t *testing.T) {
	t.Parallel()

	_, err := ComputeAmortization(0, 2, "6", 100)
	assert.ErrorIs(t, err, consts.ErrorInvalidLoanTerms)

	_, err = ComputeAmortization(-5000, 2, "6", 100)
	assert.ErrorIs(t, err, consts.ErrorInvalidLoanTerms)
}
