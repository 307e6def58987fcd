// services/reminder_service.go
package services

import (
	"time"

	"orderdesk-backend/models"
	"orderdesk-backend/realtime"
	"orderdesk-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// reminderAgeDays is how many calendar days an order may sit unsettled
// before the daily job starts nudging its customer.
const reminderAgeDays = 7

// ReminderService pushes outstanding-balance reminders to customer topics
// once a day. Delivery rides the realtime hub; a customer who is not
// connected at 9 AM simply misses that day's nudge.
type ReminderService struct {
	db        *gorm.DB
	publisher Publisher
	logger    *zap.Logger
}

func NewReminderService(db *gorm.DB, publisher Publisher, logger *zap.Logger) *ReminderService {
	return &ReminderService{db: db, publisher: publisher, logger: logger}
}

func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders(time.Now())
	})

	c.Start()
	s.logger.Info("reminder scheduler started")
	return c
}

// SendDailyReminders scans for orders at least reminderAgeDays old that are
// still unsettled or partially paid, pushes one reminder per order to the
// owning customer's topic and records it. An order already reminded today is
// skipped.
func (s *ReminderService) SendDailyReminders(now time.Time) {
	// Orders created today can never be old enough; the calendar-day age
	// check happens per order below.
	var orders []models.Order
	if err := s.db.Where("created_at < ?", utils.BeginningOfDay(now)).Find(&orders).Error; err != nil {
		s.logger.Error("failed to fetch orders for reminders", zap.Error(err))
		return
	}

	sent := 0
	for _, order := range orders {
		if utils.DaysBetween(order.CreatedAt, now) < reminderAgeDays {
			continue
		}

		summary, err := summaryFor(s.db, order.ID)
		if err != nil {
			s.logger.Error("failed to compute summary",
				zap.String("order_id", order.ID.String()), zap.Error(err))
			continue
		}
		if summary.PaymentStatus == PaymentStatusSettled {
			continue
		}

		var already int64
		if err := s.db.Model(&models.PaymentReminderLog{}).
			Where("order_id = ? AND sent_at >= ?", order.ID, utils.BeginningOfDay(now)).
			Count(&already).Error; err != nil {
			s.logger.Error("failed to check reminder log", zap.Error(err))
			continue
		}
		if already > 0 {
			continue
		}

		s.publisher.Publish(realtime.CustomerTopic(order.CustomerID), EventPaymentReminder,
			PaymentReminderEvent{
				OrderID:     order.ID,
				Total:       summary.Total,
				Paid:        summary.Paid,
				Outstanding: summary.Outstanding(),
			})

		logRow := models.PaymentReminderLog{
			OrderID:     order.ID,
			CustomerID:  order.CustomerID,
			Outstanding: summary.Outstanding(),
			SentAt:      now,
		}
		if err := s.db.Create(&logRow).Error; err != nil {
			s.logger.Error("failed to record reminder", zap.Error(err))
			continue
		}
		sent++
	}

	s.logger.Info("daily reminder processing completed", zap.Int("sent", sent))
}
