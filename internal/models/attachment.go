package models

import "time"

// Attachment is a stored file blob. RecordID names the owning record or
// agent but is advisory metadata only: deleting the owner leaves the
// attachment in place.
type Attachment struct {
	ID        string `gorm:"type:varchar(64);primaryKey" json:"id"`
	FileName  string `gorm:"type:text;not null" json:"fileName"`
	Blob      []byte `gorm:"type:blob" json:"-"`
	RecordID  string `gorm:"type:varchar(64)" json:"recordId,omitempty"`
	CreatedAt int64  `gorm:"not null" json:"createdAt"`
}

func (Attachment) TableName() string {
	return "attachments"
}

// Touch stamps CreatedAt if it has not been set yet.
func (a *Attachment) Touch() {
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().UnixMilli()
	}
}
