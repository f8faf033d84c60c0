package database

import (
	"fmt"
	"time"

	"real-estate-office/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore implements Store on top of GORM. The dialector decides the
// mode: a sqlite file for the local-first default, or a MySQL server when
// the office runs a shared database.
type GormStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the local database file.
func NewSQLiteStore(path string) (*GormStore, error) {
	return newGormStore(sqlite.Open(path))
}

// NewMySQLStore connects to a shared MySQL server.
func NewMySQLStore(host, port, user, password, dbname string) (*GormStore, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname)
	return newGormStore(mysql.Open(dsn))
}

func newGormStore(dialector gorm.Dialector) (*GormStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

// DB returns the underlying gorm.DB instance.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SchemaVersion returns the stored migration version.
func (s *GormStore) SchemaVersion() (int, error) {
	var row schemaVersionRow
	result := s.db.Where("id = ?", 1).First(&row)
	if result.Error == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if result.Error != nil {
		return 0, result.Error
	}
	return row.Version, nil
}

// Records

func (s *GormStore) SaveRecord(r *models.Record) error {
	r.Touch()
	return s.db.Save(r).Error
}

func (s *GormStore) GetRecord(id string) (*models.Record, error) {
	var record models.Record
	result := s.db.Where("id = ?", id).First(&record)
	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &record, nil
}

func (s *GormStore) GetAllRecords() ([]models.Record, error) {
	var records []models.Record
	err := s.db.Find(&records).Error
	return records, err
}

// GetRecordsByCategory is an equality lookup over the category index.
func (s *GormStore) GetRecordsByCategory(category string) ([]models.Record, error) {
	var records []models.Record
	err := s.db.Where("category = ?", category).Find(&records).Error
	return records, err
}

func (s *GormStore) DeleteRecord(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Record{}).Error
}

// Agents

func (s *GormStore) SaveAgent(a *models.Agent) error {
	a.Touch()
	return s.db.Save(a).Error
}

func (s *GormStore) GetAgent(id string) (*models.Agent, error) {
	var agent models.Agent
	result := s.db.Where("id = ?", id).First(&agent)
	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &agent, nil
}

// GetAllAgents returns agents newest first.
func (s *GormStore) GetAllAgents() ([]models.Agent, error) {
	var agents []models.Agent
	err := s.db.Order("created_at DESC").Find(&agents).Error
	return agents, err
}

func (s *GormStore) DeleteAgent(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Agent{}).Error
}

// Attachments

func (s *GormStore) SaveAttachment(a *models.Attachment) error {
	a.Touch()
	return s.db.Save(a).Error
}

func (s *GormStore) GetAttachment(id string) (*models.Attachment, error) {
	var attachment models.Attachment
	result := s.db.Where("id = ?", id).First(&attachment)
	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &attachment, nil
}

func (s *GormStore) DeleteAttachment(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Attachment{}).Error
}

// Reminders

func (s *GormStore) SaveReminder(r *models.Reminder) error {
	r.Touch()
	return s.db.Save(r).Error
}

func (s *GormStore) GetReminder(id string) (*models.Reminder, error) {
	var reminder models.Reminder
	result := s.db.Where("id = ?", id).First(&reminder)
	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &reminder, nil
}

func (s *GormStore) GetAllReminders() ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := s.db.Find(&reminders).Error
	return reminders, err
}

func (s *GormStore) DeleteReminder(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Reminder{}).Error
}

// Deals

func (s *GormStore) SaveDeal(d *models.Deal) error {
	d.Touch()
	return s.db.Save(d).Error
}

func (s *GormStore) GetDeal(id string) (*models.Deal, error) {
	var deal models.Deal
	result := s.db.Where("id = ?", id).First(&deal)
	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &deal, nil
}

// GetAllDeals returns deals newest first.
func (s *GormStore) GetAllDeals() ([]models.Deal, error) {
	var deals []models.Deal
	err := s.db.Order("created_at DESC").Find(&deals).Error
	return deals, err
}

func (s *GormStore) DeleteDeal(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Deal{}).Error
}

// Dismissed matches

// DismissMatch records a suppression. Dismissing the same id twice is a
// no-op.
func (s *GormStore) DismissMatch(matchID string) error {
	dm := models.DismissedMatch{
		MatchID:     matchID,
		DismissedAt: time.Now().UnixMilli(),
	}
	return s.db.Where("match_id = ?", matchID).FirstOrCreate(&dm).Error
}

func (s *GormStore) IsMatchDismissed(matchID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.DismissedMatch{}).Where("match_id = ?", matchID).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) GetDismissedMatches() ([]string, error) {
	var ids []string
	err := s.db.Model(&models.DismissedMatch{}).Pluck("match_id", &ids).Error
	return ids, err
}

func (s *GormStore) ClearDismissedMatches() error {
	return s.db.Exec("DELETE FROM dismissed_matches").Error
}
