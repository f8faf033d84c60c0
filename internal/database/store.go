package database

import "real-estate-office/internal/models"

// Store is the persistence contract shared by every backing mode (sqlite,
// mysql, postgres). Matching, import/export and the HTTP layer are written
// against this interface and never branch on which mode is active.
//
// Conventions, uniform across collections:
//   - Save inserts or fully overwrites by id. There is no partial update;
//     callers read, merge and write back.
//   - Get returns (nil, nil) when the id is absent. Absence is not an error.
//   - Delete of a nonexistent id succeeds as a no-op.
//   - GetAllAgents and GetAllDeals return newest first (createdAt
//     descending); other listings leave ordering to the caller.
type Store interface {
	SaveRecord(r *models.Record) error
	GetRecord(id string) (*models.Record, error)
	GetAllRecords() ([]models.Record, error)
	GetRecordsByCategory(category string) ([]models.Record, error)
	DeleteRecord(id string) error

	SaveAgent(a *models.Agent) error
	GetAgent(id string) (*models.Agent, error)
	GetAllAgents() ([]models.Agent, error)
	DeleteAgent(id string) error

	SaveAttachment(a *models.Attachment) error
	GetAttachment(id string) (*models.Attachment, error)
	DeleteAttachment(id string) error

	SaveReminder(r *models.Reminder) error
	GetReminder(id string) (*models.Reminder, error)
	GetAllReminders() ([]models.Reminder, error)
	DeleteReminder(id string) error

	SaveDeal(d *models.Deal) error
	GetDeal(id string) (*models.Deal, error)
	GetAllDeals() ([]models.Deal, error)
	DeleteDeal(id string) error

	DismissMatch(matchID string) error
	IsMatchDismissed(matchID string) (bool, error)
	GetDismissedMatches() ([]string, error)
	ClearDismissedMatches() error

	SchemaVersion() (int, error)
	Close() error
}
