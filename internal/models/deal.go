package models

import "time"

// Deal links a property record to a buyer record. Both ids are advisory
// foreign keys; deleting either record leaves the deal untouched.
type Deal struct {
	ID             string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	PropertyID     string     `gorm:"type:varchar(64)" json:"propertyId"`
	BuyerID        string     `gorm:"type:varchar(64)" json:"buyerId"`
	Status         DealStatus `gorm:"type:varchar(20);not null" json:"status"`
	FinalPrice     string     `gorm:"type:varchar(100)" json:"finalPrice,omitempty"`
	Commission     string     `gorm:"type:varchar(100)" json:"commission,omitempty"`
	AdvancePayment string     `gorm:"type:varchar(100)" json:"advancePayment,omitempty"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      int64      `gorm:"not null;index:idx_deals_created_at,sort:desc" json:"createdAt"`
}

// DealStatus is the negotiation state.
type DealStatus string

const (
	DealStatusOpen   DealStatus = "Deal Open"
	DealStatusClosed DealStatus = "Deal Closed"
)

func (Deal) TableName() string {
	return "deals"
}

// Touch stamps CreatedAt if it has not been set yet.
func (d *Deal) Touch() {
	if d.CreatedAt == 0 {
		d.CreatedAt = time.Now().UnixMilli()
	}
}
