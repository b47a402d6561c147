package models

// ReminderScanResult summarizes one pass of the due-date reminder scanner.
type ReminderScanResult struct {
	Scanned int      `json:"scanned"`
	Sent    int      `json:"sent"`
	Skipped int      `json:"skipped"`
	Failed  []string `json:"failed,omitempty"`
}
