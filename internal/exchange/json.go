package exchange

import (
	"encoding/json"
	"fmt"
	"time"

	"real-estate-office/internal/database"
)

// Backup is the lossless export format: a structural dump of every
// collection with no schema transformation.
type Backup struct {
	Collections
	ExportedAt string `json:"exportedAt"`
}

// ExportJSON serializes the collections as an indented backup document.
func ExportJSON(c Collections) ([]byte, error) {
	backup := Backup{
		Collections: c,
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	return json.MarshalIndent(backup, "", "  ")
}

// ImportJSON parses a backup document. A malformed document fails as a
// whole; nothing is written here.
func ImportJSON(data []byte) (Collections, error) {
	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return Collections{}, fmt.Errorf("failed to parse JSON backup: %w", err)
	}
	return backup.Collections, nil
}

// ImportResult counts what a bulk import committed.
type ImportResult struct {
	Records   int `json:"records"`
	Agents    int `json:"agents"`
	Reminders int `json:"reminders"`
	Deals     int `json:"deals"`
}

// SaveCollections writes imported entities one at a time, in collection
// order. Import is deliberately not transactional: a failure mid-way
// leaves everything already written committed and returns the error with
// the counts so far.
func SaveCollections(store database.Store, c Collections) (ImportResult, error) {
	var result ImportResult

	for i := range c.Records {
		if err := store.SaveRecord(&c.Records[i]); err != nil {
			return result, err
		}
		result.Records++
	}
	for i := range c.Agents {
		if err := store.SaveAgent(&c.Agents[i]); err != nil {
			return result, err
		}
		result.Agents++
	}
	for i := range c.Reminders {
		if err := store.SaveReminder(&c.Reminders[i]); err != nil {
			return result, err
		}
		result.Reminders++
	}
	for i := range c.Deals {
		if err := store.SaveDeal(&c.Deals[i]); err != nil {
			return result, err
		}
		result.Deals++
	}

	return result, nil
}

// LoadCollections reads every collection for export.
func LoadCollections(store database.Store) (Collections, error) {
	var c Collections
	var err error

	if c.Records, err = store.GetAllRecords(); err != nil {
		return c, err
	}
	if c.Agents, err = store.GetAllAgents(); err != nil {
		return c, err
	}
	if c.Reminders, err = store.GetAllReminders(); err != nil {
		return c, err
	}
	if c.Deals, err = store.GetAllDeals(); err != nil {
		return c, err
	}
	return c, nil
}
