package matching

import (
	"real-estate-office/internal/database"
	"real-estate-office/internal/models"
)

// DismissalStore tracks match suggestions the user has hidden. Membership
// is the only state; because match ids are deterministic, a dismissal
// keeps suppressing the pair across recomputations.
type DismissalStore struct {
	store database.Store
}

func NewDismissalStore(store database.Store) *DismissalStore {
	return &DismissalStore{store: store}
}

// Dismiss hides a match. Idempotent.
func (d *DismissalStore) Dismiss(matchID string) error {
	return d.store.DismissMatch(matchID)
}

func (d *DismissalStore) IsDismissed(matchID string) (bool, error) {
	return d.store.IsMatchDismissed(matchID)
}

// Clear empties the set.
func (d *DismissalStore) Clear() error {
	return d.store.ClearDismissedMatches()
}

// Filter removes dismissed candidates, preserving order.
func (d *DismissalStore) Filter(candidates []models.MatchCandidate) ([]models.MatchCandidate, error) {
	ids, err := d.store.GetDismissedMatches()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return candidates, nil
	}

	dismissed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		dismissed[id] = struct{}{}
	}

	kept := make([]models.MatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := dismissed[c.ID]; !ok {
			kept = append(kept, c)
		}
	}
	return kept, nil
}
