package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"real-estate-office/internal/models"

	_ "github.com/lib/pq"
)

// PostgresDB implements Store with raw SQL against a remote PostgreSQL
// server. This is the "cloud sync" mode: same contract as the local store,
// different backing engine.
type PostgresDB struct {
	conn *sql.DB
}

func NewPostgresDB(host, port, user, password, dbname, sslmode string) (*PostgresDB, error) {
	if sslmode == "" {
		sslmode = "disable"
	}
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	db := &PostgresDB{conn: conn}
	if err := db.initSchema(); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *PostgresDB) Close() error {
	return db.conn.Close()
}

// pgMigrations mirrors the gorm migration list as raw DDL, one additive
// step per version.
var pgMigrations = []struct {
	version int
	name    string
	ddl     string
}{
	{1, "records, agents, attachments", `
	CREATE TABLE IF NOT EXISTS records (
		id VARCHAR(64) PRIMARY KEY,
		category VARCHAR(50) NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		contact TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		price VARCHAR(100) NOT NULL DEFAULT '',
		budget VARCHAR(100) NOT NULL DEFAULT '',
		area VARCHAR(100) NOT NULL DEFAULT '',
		land_area VARCHAR(100) NOT NULL DEFAULT '',
		total_land_area VARCHAR(100) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT '',
		priority VARCHAR(20) NOT NULL DEFAULT '',
		customer_category VARCHAR(50) NOT NULL DEFAULT '',
		need TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		starred BOOLEAN NOT NULL DEFAULT FALSE,
		attributes TEXT,
		created_at BIGINT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_records_category ON records(category);
	CREATE INDEX IF NOT EXISTS idx_records_created_at ON records(created_at DESC);

	CREATE TABLE IF NOT EXISTS agents (
		id VARCHAR(64) PRIMARY KEY,
		name TEXT NOT NULL,
		contact TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		work_area TEXT NOT NULL DEFAULT '',
		citizenship_id VARCHAR(64) NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_agents_created_at ON agents(created_at DESC);

	CREATE TABLE IF NOT EXISTS attachments (
		id VARCHAR(64) PRIMARY KEY,
		file_name TEXT NOT NULL,
		blob BYTEA,
		record_id VARCHAR(64) NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL
	);
	`},
	{2, "reminders", `
	CREATE TABLE IF NOT EXISTS reminders (
		id VARCHAR(64) PRIMARY KEY,
		note TEXT NOT NULL,
		date VARCHAR(10) NOT NULL,
		time VARCHAR(5) NOT NULL DEFAULT '',
		dismissed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at BIGINT NOT NULL
	);
	`},
	{3, "deals", `
	CREATE TABLE IF NOT EXISTS deals (
		id VARCHAR(64) PRIMARY KEY,
		property_id VARCHAR(64) NOT NULL DEFAULT '',
		buyer_id VARCHAR(64) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL,
		final_price VARCHAR(100) NOT NULL DEFAULT '',
		commission VARCHAR(100) NOT NULL DEFAULT '',
		advance_payment VARCHAR(100) NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_deals_created_at ON deals(created_at DESC);
	`},
	{4, "dismissed matches", `
	CREATE TABLE IF NOT EXISTS dismissed_matches (
		match_id VARCHAR(130) PRIMARY KEY,
		dismissed_at BIGINT NOT NULL
	);
	`},
}

// initSchema applies the additive migration steps that have not run yet.
func (db *PostgresDB) initSchema() error {
	_, err := db.conn.Exec(`
	CREATE TABLE IF NOT EXISTS schema_version (
		id INTEGER PRIMARY KEY,
		version INTEGER NOT NULL
	)`)
	if err != nil {
		return err
	}

	current := 0
	err = db.conn.QueryRow(`SELECT version FROM schema_version WHERE id = 1`).Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return err
	}

	for _, m := range pgMigrations {
		if m.version <= current {
			continue
		}
		if _, err := db.conn.Exec(m.ddl); err != nil {
			return fmt.Errorf("migration v%d (%s) failed: %w", m.version, m.name, err)
		}
		_, err = db.conn.Exec(`
		INSERT INTO schema_version (id, version) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET version = EXCLUDED.version`, m.version)
		if err != nil {
			return err
		}
		log.Printf("Database: applied schema migration v%d (%s)", m.version, m.name)
	}

	return nil
}

// SchemaVersion returns the stored migration version.
func (db *PostgresDB) SchemaVersion() (int, error) {
	version := 0
	err := db.conn.QueryRow(`SELECT version FROM schema_version WHERE id = 1`).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return version, err
}

// Records

func (db *PostgresDB) SaveRecord(r *models.Record) error {
	r.Touch()
	attrs, err := r.Attributes.Value()
	if err != nil {
		return err
	}
	_, err = db.conn.Exec(`
	INSERT INTO records (
		id, category, name, contact, address, location, price, budget,
		area, land_area, total_land_area, status, priority,
		customer_category, need, notes, starred, attributes, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	ON CONFLICT (id) DO UPDATE SET
		category = EXCLUDED.category,
		name = EXCLUDED.name,
		contact = EXCLUDED.contact,
		address = EXCLUDED.address,
		location = EXCLUDED.location,
		price = EXCLUDED.price,
		budget = EXCLUDED.budget,
		area = EXCLUDED.area,
		land_area = EXCLUDED.land_area,
		total_land_area = EXCLUDED.total_land_area,
		status = EXCLUDED.status,
		priority = EXCLUDED.priority,
		customer_category = EXCLUDED.customer_category,
		need = EXCLUDED.need,
		notes = EXCLUDED.notes,
		starred = EXCLUDED.starred,
		attributes = EXCLUDED.attributes,
		created_at = EXCLUDED.created_at`,
		r.ID, r.Category, r.Name, r.Contact, r.Address, r.Location, r.Price, r.Budget,
		r.Area, r.LandArea, r.TotalLandArea, string(r.Status), r.Priority,
		r.CustomerCategory, r.Need, r.Notes, r.Starred, attrs, r.CreatedAt)
	return err
}

const recordColumns = `id, category, name, contact, address, location, price, budget,
	area, land_area, total_land_area, status, priority,
	customer_category, need, notes, starred, attributes, created_at`

func scanRecord(row interface{ Scan(...interface{}) error }) (*models.Record, error) {
	var r models.Record
	var status string
	err := row.Scan(&r.ID, &r.Category, &r.Name, &r.Contact, &r.Address, &r.Location,
		&r.Price, &r.Budget, &r.Area, &r.LandArea, &r.TotalLandArea, &status,
		&r.Priority, &r.CustomerCategory, &r.Need, &r.Notes, &r.Starred,
		&r.Attributes, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.Status = models.RecordStatus(status)
	return &r, nil
}

func (db *PostgresDB) GetRecord(id string) (*models.Record, error) {
	row := db.conn.QueryRow(`SELECT `+recordColumns+` FROM records WHERE id = $1`, id)
	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (db *PostgresDB) queryRecords(query string, args ...interface{}) ([]models.Record, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (db *PostgresDB) GetAllRecords() ([]models.Record, error) {
	return db.queryRecords(`SELECT ` + recordColumns + ` FROM records`)
}

func (db *PostgresDB) GetRecordsByCategory(category string) ([]models.Record, error) {
	return db.queryRecords(`SELECT `+recordColumns+` FROM records WHERE category = $1`, category)
}

func (db *PostgresDB) DeleteRecord(id string) error {
	_, err := db.conn.Exec(`DELETE FROM records WHERE id = $1`, id)
	return err
}

// Agents

func (db *PostgresDB) SaveAgent(a *models.Agent) error {
	a.Touch()
	_, err := db.conn.Exec(`
	INSERT INTO agents (id, name, contact, address, work_area, citizenship_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		contact = EXCLUDED.contact,
		address = EXCLUDED.address,
		work_area = EXCLUDED.work_area,
		citizenship_id = EXCLUDED.citizenship_id,
		created_at = EXCLUDED.created_at`,
		a.ID, a.Name, a.Contact, a.Address, a.WorkArea, a.CitizenshipID, a.CreatedAt)
	return err
}

func (db *PostgresDB) GetAgent(id string) (*models.Agent, error) {
	var a models.Agent
	err := db.conn.QueryRow(`
	SELECT id, name, contact, address, work_area, citizenship_id, created_at
	FROM agents WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Contact, &a.Address, &a.WorkArea, &a.CitizenshipID, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *PostgresDB) GetAllAgents() ([]models.Agent, error) {
	rows, err := db.conn.Query(`
	SELECT id, name, contact, address, work_area, citizenship_id, created_at
	FROM agents ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []models.Agent
	for rows.Next() {
		var a models.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Contact, &a.Address, &a.WorkArea,
			&a.CitizenshipID, &a.CreatedAt); err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func (db *PostgresDB) DeleteAgent(id string) error {
	_, err := db.conn.Exec(`DELETE FROM agents WHERE id = $1`, id)
	return err
}

// Attachments

func (db *PostgresDB) SaveAttachment(a *models.Attachment) error {
	a.Touch()
	_, err := db.conn.Exec(`
	INSERT INTO attachments (id, file_name, blob, record_id, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE SET
		file_name = EXCLUDED.file_name,
		blob = EXCLUDED.blob,
		record_id = EXCLUDED.record_id,
		created_at = EXCLUDED.created_at`,
		a.ID, a.FileName, a.Blob, a.RecordID, a.CreatedAt)
	return err
}

func (db *PostgresDB) GetAttachment(id string) (*models.Attachment, error) {
	var a models.Attachment
	err := db.conn.QueryRow(`
	SELECT id, file_name, blob, record_id, created_at
	FROM attachments WHERE id = $1`, id).
		Scan(&a.ID, &a.FileName, &a.Blob, &a.RecordID, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *PostgresDB) DeleteAttachment(id string) error {
	_, err := db.conn.Exec(`DELETE FROM attachments WHERE id = $1`, id)
	return err
}

// Reminders

func (db *PostgresDB) SaveReminder(r *models.Reminder) error {
	r.Touch()
	_, err := db.conn.Exec(`
	INSERT INTO reminders (id, note, date, time, dismissed, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		note = EXCLUDED.note,
		date = EXCLUDED.date,
		time = EXCLUDED.time,
		dismissed = EXCLUDED.dismissed,
		created_at = EXCLUDED.created_at`,
		r.ID, r.Note, r.Date, r.Time, r.Dismissed, r.CreatedAt)
	return err
}

func (db *PostgresDB) GetReminder(id string) (*models.Reminder, error) {
	var r models.Reminder
	err := db.conn.QueryRow(`
	SELECT id, note, date, time, dismissed, created_at
	FROM reminders WHERE id = $1`, id).
		Scan(&r.ID, &r.Note, &r.Date, &r.Time, &r.Dismissed, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (db *PostgresDB) GetAllReminders() ([]models.Reminder, error) {
	rows, err := db.conn.Query(`
	SELECT id, note, date, time, dismissed, created_at FROM reminders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var r models.Reminder
		if err := rows.Scan(&r.ID, &r.Note, &r.Date, &r.Time, &r.Dismissed, &r.CreatedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func (db *PostgresDB) DeleteReminder(id string) error {
	_, err := db.conn.Exec(`DELETE FROM reminders WHERE id = $1`, id)
	return err
}

// Deals

func (db *PostgresDB) SaveDeal(d *models.Deal) error {
	d.Touch()
	_, err := db.conn.Exec(`
	INSERT INTO deals (id, property_id, buyer_id, status, final_price, commission, advance_payment, notes, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		property_id = EXCLUDED.property_id,
		buyer_id = EXCLUDED.buyer_id,
		status = EXCLUDED.status,
		final_price = EXCLUDED.final_price,
		commission = EXCLUDED.commission,
		advance_payment = EXCLUDED.advance_payment,
		notes = EXCLUDED.notes,
		created_at = EXCLUDED.created_at`,
		d.ID, d.PropertyID, d.BuyerID, string(d.Status), d.FinalPrice, d.Commission,
		d.AdvancePayment, d.Notes, d.CreatedAt)
	return err
}

func (db *PostgresDB) GetDeal(id string) (*models.Deal, error) {
	var d models.Deal
	var status string
	err := db.conn.QueryRow(`
	SELECT id, property_id, buyer_id, status, final_price, commission, advance_payment, notes, created_at
	FROM deals WHERE id = $1`, id).
		Scan(&d.ID, &d.PropertyID, &d.BuyerID, &status, &d.FinalPrice, &d.Commission,
			&d.AdvancePayment, &d.Notes, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	d.Status = models.DealStatus(status)
	return &d, nil
}

func (db *PostgresDB) GetAllDeals() ([]models.Deal, error) {
	rows, err := db.conn.Query(`
	SELECT id, property_id, buyer_id, status, final_price, commission, advance_payment, notes, created_at
	FROM deals ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deals []models.Deal
	for rows.Next() {
		var d models.Deal
		var status string
		if err := rows.Scan(&d.ID, &d.PropertyID, &d.BuyerID, &status, &d.FinalPrice,
			&d.Commission, &d.AdvancePayment, &d.Notes, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Status = models.DealStatus(status)
		deals = append(deals, d)
	}
	return deals, rows.Err()
}

func (db *PostgresDB) DeleteDeal(id string) error {
	_, err := db.conn.Exec(`DELETE FROM deals WHERE id = $1`, id)
	return err
}

// Dismissed matches

func (db *PostgresDB) DismissMatch(matchID string) error {
	_, err := db.conn.Exec(`
	INSERT INTO dismissed_matches (match_id, dismissed_at)
	VALUES ($1, $2)
	ON CONFLICT (match_id) DO NOTHING`,
		matchID, time.Now().UnixMilli())
	return err
}

func (db *PostgresDB) IsMatchDismissed(matchID string) (bool, error) {
	var count int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM dismissed_matches WHERE match_id = $1`, matchID).Scan(&count)
	return count > 0, err
}

func (db *PostgresDB) GetDismissedMatches() ([]string, error) {
	rows, err := db.conn.Query(`SELECT match_id FROM dismissed_matches`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (db *PostgresDB) ClearDismissedMatches() error {
	_, err := db.conn.Exec(`DELETE FROM dismissed_matches`)
	return err
}
