package utils

import (
	"math"
	"strconv"
	"strings"

	"fiveki/coop_loan_management/internal/pkg/consts"
)

// NormalizeTerm returns the raw term key and, when the term parses as an
// integer, its canonical decimal form. Source data stores terms as "12" or
// 12, so rate lookups probe both.
func NormalizeTerm(term string) (string, string, bool) {
	raw := strings.TrimSpace(term)
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return raw, "", false
	}
	return raw, strconv.Itoa(parsed), true
}

// TermMonths parses a term to months, rejecting zero, negative or
// non-numeric values.
func TermMonths(term string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(term))
	if err != nil || parsed <= 0 {
		return 0, consts.ErrorInvalidLoanTerms
	}
	return parsed, nil
}

// IsFiniteAmount guards against NaN/Inf creeping into ledger writes.
func IsFiniteAmount(amounts ...float64) bool {
	for _, a := range amounts {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return false
		}
	}
	return true
}
