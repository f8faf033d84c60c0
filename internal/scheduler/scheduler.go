package scheduler

import (
	"fmt"
	"log"
	"time"

	"real-estate-office/internal/database"
	"real-estate-office/internal/models"

	"github.com/robfig/cron/v3"
)

// ReminderScheduler polls for due reminders on a fixed interval. It is a
// simple time-based poll, not a precise scheduler: at most one reminder is
// surfaced per tick even when several are due, and the rest wait for the
// next tick. A surfaced reminder is marked dismissed exactly once.
type ReminderScheduler struct {
	cron      *cron.Cron
	store     database.Store
	interval  time.Duration
	onDue     func(models.Reminder)
	isRunning bool
}

// NewReminderScheduler creates a poller. onDue receives each surfaced
// reminder; a nil callback just logs.
func NewReminderScheduler(store database.Store, interval time.Duration, onDue func(models.Reminder)) *ReminderScheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReminderScheduler{
		cron:     cron.New(),
		store:    store,
		interval: interval,
		onDue:    onDue,
	}
}

// Start starts the poll loop.
func (s *ReminderScheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)

	_, err := s.cron.AddFunc(spec, func() {
		if _, err := s.Tick(time.Now()); err != nil {
			log.Printf("Scheduler: reminder check failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: reminder poll started (every %s)", s.interval)

	return nil
}

// Stop stops the poll loop.
func (s *ReminderScheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler: stopped")
	}
}

// Tick surfaces at most one due, undismissed reminder: the earliest by
// date then time. It returns the surfaced reminder, or nil when nothing
// is due.
func (s *ReminderScheduler) Tick(now time.Time) (*models.Reminder, error) {
	reminders, err := s.store.GetAllReminders()
	if err != nil {
		return nil, err
	}

	var due *models.Reminder
	for i := range reminders {
		r := &reminders[i]
		if !r.DueAt(now) {
			continue
		}
		if due == nil || r.Date < due.Date || (r.Date == due.Date && r.Time < due.Time) {
			due = r
		}
	}

	if due == nil {
		return nil, nil
	}

	due.Dismissed = true
	if err := s.store.SaveReminder(due); err != nil {
		return nil, err
	}

	log.Printf("Scheduler: reminder due: %s (%s %s)", due.Note, due.Date, due.Time)
	if s.onDue != nil {
		s.onDue(*due)
	}

	return due, nil
}
