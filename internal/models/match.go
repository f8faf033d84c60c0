package models

import "fmt"

// MatchCandidate is a scored buyer-property pair. It is derived, never
// persisted; only dismissals of its id are stored.
type MatchCandidate struct {
	ID               string   `json:"id"`
	BuyerID          string   `json:"buyerId"`
	BuyerName        string   `json:"buyerName"`
	BuyerContact     string   `json:"buyerContact"`
	BuyerCategory    string   `json:"buyerCategory"`
	BuyerBudget      string   `json:"buyerBudget"`
	PropertyID       string   `json:"propertyId"`
	PropertyTitle    string   `json:"propertyTitle"`
	PropertyOwner    string   `json:"propertyOwner"`
	PropertyPrice    string   `json:"propertyPrice"`
	PropertyCategory string   `json:"propertyCategory"`
	MatchScore       int      `json:"matchScore"`
	MatchReasons     []string `json:"matchReasons"`
}

// MatchID builds the deterministic candidate id. Recomputing matches for
// the same pair always yields the same id, which is what lets a stored
// dismissal survive recomputation.
func MatchID(buyerID, propertyID string) string {
	return fmt.Sprintf("%s-%s", buyerID, propertyID)
}

// DismissedMatch is a persisted suppression of one match candidate.
type DismissedMatch struct {
	MatchID     string `gorm:"type:varchar(130);primaryKey" json:"matchId"`
	DismissedAt int64  `gorm:"not null" json:"dismissedAt"`
}

func (DismissedMatch) TableName() string {
	return "dismissed_matches"
}
