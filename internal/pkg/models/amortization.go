package models

// Amortization holds the computed figures for a flat per-term rate loan.
// Values are kept unrounded here; rounding to two decimals happens when the
// record is serialized for storage.
type Amortization struct {
	InterestRate        float64 `json:"interestRate"`
	InterestPerTerm     float64 `json:"interest"`
	TotalInterest       float64 `json:"totalInterest"`
	TotalTermPayment    float64 `json:"totalTermPayment"`
	MonthlyPayment      float64 `json:"monthlyPayment"`
	TotalMonthlyPayment float64 `json:"totalMonthlyPayment"`
	ReleaseAmount       float64 `json:"releaseAmount"`
	ProcessingFee       float64 `json:"processingFee"`
}
