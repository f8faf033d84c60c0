package database

import (
	"fmt"
	"log"

	"real-estate-office/internal/models"

	"gorm.io/gorm"
)

// schemaVersionRow is the single-row table tracking how far the additive
// migration list has been applied.
type schemaVersionRow struct {
	ID      int `gorm:"primaryKey"`
	Version int `gorm:"not null"`
}

func (schemaVersionRow) TableName() string {
	return "schema_version"
}

// migration is one additive schema step. Steps only ever create tables and
// indexes; once a version has shipped, user databases are augmented, never
// rebuilt, because there is no server-side path to migrate them.
type migration struct {
	version int
	name    string
	tables  []interface{}
}

// migrations is ordered oldest to newest. The last entry is the latest
// version. Append only; never reorder or edit a shipped step.
var migrations = []migration{
	{1, "records, agents, attachments", []interface{}{
		&models.Record{}, &models.Agent{}, &models.Attachment{},
	}},
	{2, "reminders", []interface{}{&models.Reminder{}}},
	{3, "deals", []interface{}{&models.Deal{}}},
	{4, "dismissed matches", []interface{}{&models.DismissedMatch{}}},
}

// latestSchemaVersion returns the version the newest migration introduces.
func latestSchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// runMigrations applies every step newer than the stored version.
func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaVersionRow{}); err != nil {
		return fmt.Errorf("failed to prepare schema_version table: %w", err)
	}

	var row schemaVersionRow
	result := db.Where("id = ?", 1).First(&row)
	if result.Error == gorm.ErrRecordNotFound {
		row = schemaVersionRow{ID: 1, Version: 0}
	} else if result.Error != nil {
		return result.Error
	}

	for _, m := range migrations {
		if m.version <= row.Version {
			continue
		}
		if err := db.AutoMigrate(m.tables...); err != nil {
			return fmt.Errorf("migration v%d (%s) failed: %w", m.version, m.name, err)
		}
		row.Version = m.version
		if err := db.Save(&row).Error; err != nil {
			return err
		}
		log.Printf("Database: applied schema migration v%d (%s)", m.version, m.name)
	}

	return nil
}
