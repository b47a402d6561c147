package services

import (
	"context"
	"sync"
	"time"

	"fiveki/coop_loan_management/configs"
	"fiveki/coop_loan_management/internal/pkg/common"
	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"
	"fiveki/coop_loan_management/internal/pkg/utils/worker"
)

// LoanReminderService scans current loans on a fixed interval and emails
// members whose due date falls inside the reminder window. A sent reminder
// leaves an idempotency marker so rescans stay quiet; a manual resend
// bypasses the marker and bumps its resend count.
type LoanReminderService struct {
	currentLoans  CurrentLoanStoreInterface
	notifications LoanNotificationStoreInterface
	settings      SettingsStoreInterface
	notifier      NotificationServiceInterface
	pool          *worker.WorkerPool
	now           func() time.Time
	stop          chan struct{}
	stopOnce      sync.Once
}

func NewLoanReminderService(
	currentLoans CurrentLoanStoreInterface,
	notifications LoanNotificationStoreInterface,
	settings SettingsStoreInterface,
	notifier NotificationServiceInterface,
	pool *worker.WorkerPool,
) *LoanReminderService {
	return &LoanReminderService{
		currentLoans:  currentLoans,
		notifications: notifications,
		settings:      settings,
		notifier:      notifier,
		pool:          pool,
		now:           time.Now,
		stop:          make(chan struct{}),
	}
}

// Start runs the scanner on its configured interval. The first scan fires
// immediately rather than one interval in.
func (s *LoanReminderService) Start(ctx context.Context) {
	interval := time.Duration(configs.REMINDER_SCAN_INTERVAL_HOURS) * time.Hour

	go func() {
		if _, err := s.ScanOnce(ctx); err != nil {
			logger.Error(ctx, "Reminder scan failed: %v", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := s.ScanOnce(ctx); err != nil {
					logger.Error(ctx, "Reminder scan failed: %v", err)
				}
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *LoanReminderService) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// ScanOnce walks every current loan once and sends reminders for the ones
// due within the window that have no marker yet.
func (s *LoanReminderService) ScanOnce(ctx context.Context) (*models.ReminderScanResult, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	window := int(settings.LoanReminderDays)
	if window <= 0 {
		window = consts.DefaultLoanReminderDays
	}

	loans, err := s.currentLoans.AllCurrentLoans(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := &models.ReminderScanResult{Scanned: len(loans)}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, loan := range loans {
		daysUntilDue := common.CalendarDaysUntil(now, loan.DueDate)
		if daysUntilDue < 0 || daysUntilDue > window {
			result.Skipped++
			continue
		}

		sent, err := s.notifications.NotificationExists(ctx, loan.MemberID, loan.TransactionID)
		if err != nil {
			result.Failed = append(result.Failed, common.NotificationKey(loan.MemberID, loan.TransactionID))
			continue
		}
		if sent {
			result.Skipped++
			continue
		}

		loan := loan
		wg.Add(1)
		s.pool.Submit(func() {
			defer wg.Done()
			err := s.sendAndMark(ctx, loan, daysUntilDue, now)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, common.NotificationKey(loan.MemberID, loan.TransactionID))
				return
			}
			result.Sent++
		})
	}

	wg.Wait()

	logger.Info(ctx, "Reminder scan complete: %d scanned, %d sent, %d skipped, %d failed",
		result.Scanned, result.Sent, result.Skipped, len(result.Failed))
	return result, nil
}

// Resend re-sends a reminder on admin request, ignoring the window and the
// idempotency marker. A failed scheduled send leaves no marker, so the next
// scan retries it; resends only count when a marker already exists.
func (s *LoanReminderService) Resend(ctx context.Context, memberID, transactionID string) error {
	loan, err := s.currentLoans.CurrentLoanByMemberAndTransaction(ctx, memberID, transactionID)
	if err != nil {
		return err
	}

	now := s.now()
	daysUntilDue := common.CalendarDaysUntil(now, loan.DueDate)

	if err := s.notifier.SendDueReminder(ctx, *loan, daysUntilDue); err != nil {
		return err
	}

	existing, err := s.notifications.NotificationByKey(ctx, memberID, transactionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return s.notifications.CreateNotification(ctx, common.SerializeLoanNotification(memberID, transactionID, loan.DueDate, now))
	}
	return s.notifications.IncrementResendCount(ctx, memberID, transactionID)
}

func (s *LoanReminderService) sendAndMark(ctx context.Context, loan models.CurrentLoan, daysUntilDue int, now time.Time) error {
	if err := s.notifier.SendDueReminder(ctx, loan, daysUntilDue); err != nil {
		logger.Error(ctx, "Failed to send due reminder for member %s transaction %s: %v", loan.MemberID, loan.TransactionID, err)
		return err
	}
	return s.notifications.CreateNotification(ctx, common.SerializeLoanNotification(loan.MemberID, loan.TransactionID, loan.DueDate, now))
}
