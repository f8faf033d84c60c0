package exchange

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"real-estate-office/internal/models"

	"github.com/google/uuid"
)

// Collections bundles the exportable entity sets. Attachment blobs have no
// CSV representation and travel only through the JSON backup.
type Collections struct {
	Records   []models.Record   `json:"records"`
	Agents    []models.Agent    `json:"agents"`
	Reminders []models.Reminder `json:"reminders"`
	Deals     []models.Deal     `json:"deals"`
}

// Section markers. The line after a marker is that section's header row.
const (
	markerRecords   = "=== RECORDS ==="
	markerAgents    = "=== AGENTS ==="
	markerReminders = "=== REMINDERS ==="
	markerDeals     = "=== DEALS ==="
)

var recordHeaders = []string{
	"ID", "Category", "Name", "Contact", "Address", "Price", "Budget",
	"Status", "Priority", "CustomerCategory", "Area", "LandArea", "Notes",
	"Starred", "CreatedAt",
}

var agentHeaders = []string{"ID", "Name", "Contact", "Address", "WorkArea", "CreatedAt"}

var reminderHeaders = []string{"ID", "Note", "Date", "Time", "Dismissed", "CreatedAt"}

var dealHeaders = []string{
	"ID", "PropertyID", "BuyerID", "Status", "FinalPrice", "Commission",
	"AdvancePayment", "Notes", "CreatedAt",
}

// ExportCSV renders the collections as a sectioned CSV document: a marker
// line, a header row, then one row per entity. Empty collections emit no
// section.
func ExportCSV(c Collections) string {
	var b strings.Builder

	if len(c.Records) > 0 {
		b.WriteString(markerRecords + "\n")
		writeHeaderRow(&b, recordHeaders)
		for _, r := range c.Records {
			address := r.Address
			if address == "" {
				address = r.Location
			}
			writeRow(&b, []string{
				r.ID, r.Category, r.Name, r.Contact, address, r.Price, r.Budget,
				string(r.Status), r.Priority, r.CustomerCategory, r.Area,
				r.LandArea, r.Notes, yesNo(r.Starred), formatCreatedAt(r.CreatedAt),
			})
		}
		b.WriteString("\n")
	}

	if len(c.Agents) > 0 {
		b.WriteString(markerAgents + "\n")
		writeHeaderRow(&b, agentHeaders)
		for _, a := range c.Agents {
			writeRow(&b, []string{
				a.ID, a.Name, a.Contact, a.Address, a.WorkArea, formatCreatedAt(a.CreatedAt),
			})
		}
		b.WriteString("\n")
	}

	if len(c.Reminders) > 0 {
		b.WriteString(markerReminders + "\n")
		writeHeaderRow(&b, reminderHeaders)
		for _, r := range c.Reminders {
			writeRow(&b, []string{
				r.ID, r.Note, r.Date, r.Time, yesNo(r.Dismissed), formatCreatedAt(r.CreatedAt),
			})
		}
		b.WriteString("\n")
	}

	if len(c.Deals) > 0 {
		b.WriteString(markerDeals + "\n")
		writeHeaderRow(&b, dealHeaders)
		for _, d := range c.Deals {
			writeRow(&b, []string{
				d.ID, d.PropertyID, d.BuyerID, string(d.Status), d.FinalPrice,
				d.Commission, d.AdvancePayment, d.Notes, formatCreatedAt(d.CreatedAt),
			})
		}
	}

	return b.String()
}

func writeHeaderRow(b *strings.Builder, headers []string) {
	writeRow(b, headers)
}

func writeRow(b *strings.Builder, values []string) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSV(v))
	}
	b.WriteByte('\n')
}

// escapeCSV quotes a value when it contains a comma, quote or newline,
// doubling internal quotes.
func escapeCSV(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// ErrNoSections is returned when the input contains no section marker at
// all, which means it is not an export of this application.
var ErrNoSections = errors.New("exchange: no section markers found in CSV input")

// ImportCSV parses a sectioned CSV document back into collections. Parsing
// is forgiving: a missing or malformed value becomes an empty string, rows
// with a blank ID get a fresh synthetic id, and unknown categories pass
// through untouched.
func ImportCSV(text string) (Collections, error) {
	var c Collections

	section := ""
	sawSection := false
	var headers []string

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, markerRecords):
			section, headers, sawSection = "records", nil, true
			continue
		case strings.HasPrefix(line, markerAgents):
			section, headers, sawSection = "agents", nil, true
			continue
		case strings.HasPrefix(line, markerReminders):
			section, headers, sawSection = "reminders", nil, true
			continue
		case strings.HasPrefix(line, markerDeals):
			section, headers, sawSection = "deals", nil, true
			continue
		}

		if section == "" {
			continue
		}

		values := parseCSVLine(line)
		if headers == nil {
			headers = values
			continue
		}

		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = values[i]
			} else {
				row[h] = ""
			}
		}

		switch section {
		case "records":
			c.Records = append(c.Records, recordFromRow(row))
		case "agents":
			c.Agents = append(c.Agents, agentFromRow(row))
		case "reminders":
			c.Reminders = append(c.Reminders, reminderFromRow(row))
		case "deals":
			c.Deals = append(c.Deals, dealFromRow(row))
		}
	}

	if !sawSection && strings.TrimSpace(text) != "" {
		return Collections{}, ErrNoSections
	}

	return c, nil
}

// parseCSVLine splits one CSV line, honoring quoted fields and doubled
// quotes.
func parseCSVLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		char := line[i]

		switch {
		case char == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case char == ',' && !inQuotes:
			result = append(result, current.String())
			current.Reset()
		default:
			current.WriteByte(char)
		}
	}

	result = append(result, current.String())
	return result
}

func recordFromRow(row map[string]string) models.Record {
	category := row["Category"]
	if category == "" {
		category = "Other"
	}
	return models.Record{
		ID:               idOrSynthetic(row["ID"], "imported"),
		Category:         category,
		Name:             row["Name"],
		Contact:          row["Contact"],
		Address:          row["Address"],
		Location:         row["Address"],
		Price:            row["Price"],
		Budget:           row["Budget"],
		Status:           models.RecordStatus(row["Status"]),
		Priority:         row["Priority"],
		CustomerCategory: row["CustomerCategory"],
		Area:             row["Area"],
		LandArea:         row["LandArea"],
		Notes:            row["Notes"],
		Starred:          row["Starred"] == "Yes",
		CreatedAt:        parseCreatedAt(row["CreatedAt"]),
	}
}

func agentFromRow(row map[string]string) models.Agent {
	return models.Agent{
		ID:        idOrSynthetic(row["ID"], "agent"),
		Name:      row["Name"],
		Contact:   row["Contact"],
		Address:   row["Address"],
		WorkArea:  row["WorkArea"],
		CreatedAt: parseCreatedAt(row["CreatedAt"]),
	}
}

func reminderFromRow(row map[string]string) models.Reminder {
	return models.Reminder{
		ID:        idOrSynthetic(row["ID"], "reminder"),
		Note:      row["Note"],
		Date:      row["Date"],
		Time:      row["Time"],
		Dismissed: row["Dismissed"] == "Yes",
		CreatedAt: parseCreatedAt(row["CreatedAt"]),
	}
}

func dealFromRow(row map[string]string) models.Deal {
	return models.Deal{
		ID:             idOrSynthetic(row["ID"], "deal"),
		PropertyID:     row["PropertyID"],
		BuyerID:        row["BuyerID"],
		Status:         models.DealStatus(row["Status"]),
		FinalPrice:     row["FinalPrice"],
		Commission:     row["Commission"],
		AdvancePayment: row["AdvancePayment"],
		Notes:          row["Notes"],
		CreatedAt:      parseCreatedAt(row["CreatedAt"]),
	}
}

func idOrSynthetic(id, prefix string) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

func formatCreatedAt(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

// parseCreatedAt restores the exported timestamp; a blank or malformed
// column gets stamped with the import time instead.
func parseCreatedAt(s string) int64 {
	if s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UnixMilli()
		}
	}
	return time.Now().UnixMilli()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
