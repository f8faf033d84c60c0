package models

import "time"

// Reminder is a dated note surfaced at most once by the poller.
type Reminder struct {
	ID        string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Note      string `gorm:"type:text;not null" json:"note"`
	Date      string `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Time      string `gorm:"type:varchar(5)" json:"time"`           // HH:MM
	Dismissed bool   `gorm:"not null;default:false" json:"dismissed"`
	CreatedAt int64  `gorm:"not null" json:"createdAt"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// Touch stamps CreatedAt if it has not been set yet.
func (r *Reminder) Touch() {
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().UnixMilli()
	}
}

// DueAt reports whether the reminder is due at the given moment. Date and
// time are compared as strings; both formats sort lexicographically.
func (r *Reminder) DueAt(now time.Time) bool {
	if r.Dismissed || r.Date == "" {
		return false
	}
	today := now.Format("2006-01-02")
	if r.Date < today {
		return true
	}
	if r.Date > today {
		return false
	}
	if r.Time == "" {
		return true
	}
	return r.Time <= now.Format("15:04")
}
