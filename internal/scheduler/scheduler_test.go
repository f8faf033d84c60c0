package scheduler

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-office/internal/database"
	"real-estate-office/internal/models"
)

func newTestStore(t *testing.T) database.Store {
	t.Helper()
	store, err := database.NewSQLiteStore(filepath.Join(t.TempDir(), "scheduler-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestReminderDueAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		reminder models.Reminder
		want     bool
	}{
		{name: "past date", reminder: models.Reminder{Date: "2026-08-31"}, want: true},
		{name: "future date", reminder: models.Reminder{Date: "2026-09-02"}, want: false},
		{name: "today no time", reminder: models.Reminder{Date: "2026-09-01"}, want: true},
		{name: "today earlier time", reminder: models.Reminder{Date: "2026-09-01", Time: "09:00"}, want: true},
		{name: "today exact time", reminder: models.Reminder{Date: "2026-09-01", Time: "14:30"}, want: true},
		{name: "today later time", reminder: models.Reminder{Date: "2026-09-01", Time: "15:00"}, want: false},
		{name: "dismissed never due", reminder: models.Reminder{Date: "2026-08-31", Dismissed: true}, want: false},
		{name: "no date never due", reminder: models.Reminder{Time: "09:00"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reminder.DueAt(now))
		})
	}
}

func TestTickSurfacesEarliestDueReminder(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

	require.NoError(t, store.SaveReminder(&models.Reminder{ID: "late", Note: "later", Date: "2026-08-30", Time: "16:00"}))
	require.NoError(t, store.SaveReminder(&models.Reminder{ID: "early", Note: "earlier", Date: "2026-08-30", Time: "09:00"}))
	require.NoError(t, store.SaveReminder(&models.Reminder{ID: "future", Note: "not yet", Date: "2026-09-05"}))

	var surfaced []string
	s := NewReminderScheduler(store, time.Minute, func(r models.Reminder) {
		surfaced = append(surfaced, r.ID)
	})

	// First tick surfaces only the earliest due reminder
	due, err := s.Tick(now)
	require.NoError(t, err)
	require.NotNil(t, due)
	assert.Equal(t, "early", due.ID)
	assert.Equal(t, []string{"early"}, surfaced)

	got, err := store.GetReminder("early")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Dismissed)

	// The other due reminder waits for the next tick
	due, err = s.Tick(now)
	require.NoError(t, err)
	require.NotNil(t, due)
	assert.Equal(t, "late", due.ID)

	// Nothing else is due
	due, err = s.Tick(now)
	require.NoError(t, err)
	assert.Nil(t, due)
	assert.Equal(t, []string{"early", "late"}, surfaced)
}

func TestTickSurfacesEachReminderOnce(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveReminder(&models.Reminder{ID: "rem1", Note: "once", Date: "2026-08-31"}))

	s := NewReminderScheduler(store, time.Minute, nil)

	due, err := s.Tick(now)
	require.NoError(t, err)
	require.NotNil(t, due)

	for i := 0; i < 3; i++ {
		due, err = s.Tick(now)
		require.NoError(t, err)
		assert.Nil(t, due)
	}
}

func TestTickWithNoReminders(t *testing.T) {
	store := newTestStore(t)
	s := NewReminderScheduler(store, time.Minute, nil)

	due, err := s.Tick(time.Now())
	require.NoError(t, err)
	assert.Nil(t, due)
}

func TestStartAndStop(t *testing.T) {
	store := newTestStore(t)
	s := NewReminderScheduler(store, time.Second, nil)

	require.NoError(t, s.Start())
	assert.True(t, s.isRunning)

	s.Stop()
	assert.False(t, s.isRunning)

	// Stopping twice is harmless
	s.Stop()
}
