package models

import "time"

// Agent is an office field agent. CitizenshipID points at an attachment by
// id; the reference is advisory and never enforced.
type Agent struct {
	ID            string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name          string `gorm:"type:text;not null" json:"name"`
	Contact       string `gorm:"type:text;not null" json:"contact"`
	Address       string `gorm:"type:text" json:"address,omitempty"`
	WorkArea      string `gorm:"type:text" json:"workArea,omitempty"`
	CitizenshipID string `gorm:"type:varchar(64)" json:"citizenshipId,omitempty"`
	CreatedAt     int64  `gorm:"not null;index:idx_agents_created_at,sort:desc" json:"createdAt"`
}

func (Agent) TableName() string {
	return "agents"
}

// Touch stamps CreatedAt if it has not been set yet.
func (a *Agent) Touch() {
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().UnixMilli()
	}
}
