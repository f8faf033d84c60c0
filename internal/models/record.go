package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// CategoryCustomer is the sentinel category marking a record as a buyer
// rather than a property listing.
const CategoryCustomer = "Customer"

// Record is a property listing or a customer, stored in one collection.
// Categories share no common schema beyond the core columns, so
// category-specific fields (rooms, facing, built year, ...) live in the
// Attributes bag.
type Record struct {
	ID       string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Category string `gorm:"type:varchar(50);not null;index" json:"category"`

	// Display and contact fields
	Name    string `gorm:"type:text" json:"name,omitempty"`
	Contact string `gorm:"type:text" json:"contact,omitempty"`

	// Location fields (properties use address or location depending on form)
	Address  string `gorm:"type:text" json:"address,omitempty"`
	Location string `gorm:"type:text" json:"location,omitempty"`

	// Free-text money fields, parsed lazily by the matching engine
	Price  string `gorm:"type:varchar(100)" json:"price,omitempty"`
	Budget string `gorm:"type:varchar(100)" json:"budget,omitempty"`

	// Free-text land sizes
	Area          string `gorm:"type:varchar(100)" json:"area,omitempty"`
	LandArea      string `gorm:"type:varchar(100)" json:"landArea,omitempty"`
	TotalLandArea string `gorm:"type:varchar(100)" json:"totalLandArea,omitempty"`

	// Empty status means Available for matching purposes
	Status   RecordStatus `gorm:"type:varchar(20);index" json:"status,omitempty"`
	Priority string       `gorm:"type:varchar(20)" json:"priority,omitempty"`

	// Buyer classification: CustomerCategory when set, legacy Need otherwise
	CustomerCategory string `gorm:"type:varchar(50)" json:"customerCategory,omitempty"`
	Need             string `gorm:"type:text" json:"need,omitempty"`

	Notes   string `gorm:"type:text" json:"notes,omitempty"`
	Starred bool   `gorm:"not null;default:false" json:"starred"`

	// Category-specific extras
	Attributes AttributeBag `gorm:"type:text" json:"attributes,omitempty"`

	// Epoch milliseconds, set once at creation
	CreatedAt int64 `gorm:"not null;index:idx_records_created_at,sort:desc" json:"createdAt"`
}

// RecordStatus is the listing availability state.
type RecordStatus string

const (
	RecordStatusAvailable RecordStatus = "Available"
	RecordStatusSold      RecordStatus = "Sold"
)

func (Record) TableName() string {
	return "records"
}

// IsCustomer reports whether the record is a buyer.
func (r *Record) IsCustomer() bool {
	return r.Category == CategoryCustomer
}

// IsSold reports whether the listing has been sold. Absent status counts
// as available.
func (r *Record) IsSold() bool {
	return r.Status == RecordStatusSold
}

// Touch stamps CreatedAt if it has not been set yet.
func (r *Record) Touch() {
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().UnixMilli()
	}
}

// AttributeBag is a string-keyed extension map stored as a JSON text column.
type AttributeBag map[string]string

// Value implements driver.Valuer.
func (b AttributeBag) Value() (driver.Value, error) {
	if len(b) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (b *AttributeBag) Scan(value interface{}) error {
	if value == nil {
		*b = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			*b = nil
			return nil
		}
		return json.Unmarshal(v, b)
	case string:
		if v == "" {
			*b = nil
			return nil
		}
		return json.Unmarshal([]byte(v), b)
	default:
		return errors.New("models: unsupported attribute bag column type")
	}
}
