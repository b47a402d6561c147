package models

import "fmt"

// Shortfall kinds surfaced to the admin for confirmation before savings is
// touched.
const (
	MemberBalanceShortfall = "MEMBER_BALANCE_SHORTFALL"
	FundsShortfall         = "FUNDS_SHORTFALL"
)

// FundingPlan is the committed split of a loan across the three funding
// sources. FromMember is the member-balance decrement, FromFunds the lending
// pool decrement, FromSavings the reserve decrement (before the processing
// fee is credited back in).
type FundingPlan struct {
	FromMember      float64 `json:"fromMember"`
	FromFunds       float64 `json:"fromFunds"`
	FromSavings     float64 `json:"fromSavings"`
	MemberShortfall float64 `json:"memberShortfall"`
	FundsShortfall  float64 `json:"fundsShortfall"`
}

// ConfirmationRequired is a control-flow signal, not a failure: the selector
// found a shortfall that savings can cover, and the admin must confirm the
// draw before the commit proceeds.
type ConfirmationRequired struct {
	Kind             string  `json:"kind"`
	Amount           float64 `json:"amount"`
	AvailableSavings float64 `json:"availableSavings"`
}

func (e *ConfirmationRequired) Error() string {
	return fmt.Sprintf("confirmation required: %s shortfall of %.2f to be covered from savings", e.Kind, e.Amount)
}
