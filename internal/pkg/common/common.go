package common

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"fiveki/coop_loan_management/internal/pkg/consts"
)

// Round2 rounds to two decimal places, half away from zero. Stored loan
// figures always pass through this; intermediate arithmetic stays unrounded.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// CeilBalance rounds a member balance up to the next centavo after a
// decrement, then floors at zero. Balance decrements never under-charge by a
// fraction of a centavo.
func CeilBalance(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Ceil(x*100) / 100
}

// NewLoanTransactionID issues a 6-digit random transaction id. Collisions are
// not checked, matching the dashboard's accepted risk.
func NewLoanTransactionID() string {
	n := consts.TransactionIDMin + rand.Intn(consts.TransactionIDMax-consts.TransactionIDMin+1)
	return fmt.Sprintf("%d", n)
}

// NotificationKey builds the reminder idempotency key for a loan.
func NotificationKey(memberID, transactionID string) string {
	return fmt.Sprintf("%s_%s", memberID, transactionID)
}

// CalendarDaysUntil returns the whole-day difference between now and due,
// ignoring time of day.
func CalendarDaysUntil(now, due time.Time) int {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(dueDay.Sub(nowDay).Hours() / 24)
}

// DueDateFrom applies the fixed 30-calendar-day due date rule.
func DueDateFrom(approved time.Time) time.Time {
	return approved.AddDate(0, 0, consts.DueDateOffsetDays)
}

// ISODate formats a timestamp as the yyyy-mm-dd key used by the savings
// history.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
