package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"real-estate-office/internal/config"
	"real-estate-office/internal/database"
	"real-estate-office/internal/exchange"
	"real-estate-office/internal/handlers"
	"real-estate-office/internal/matching"
	"real-estate-office/internal/models"
	"real-estate-office/internal/ratelimit"
	"real-estate-office/internal/scheduler"
	"real-estate-office/internal/search"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var (
	store             database.Store
	searchClient      *search.SearchClient
	appConfig         *config.Config
	rateLimiter       *ratelimit.RateLimiter
	reminderScheduler *scheduler.ReminderScheduler
	dismissals        *matching.DismissalStore
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config/office.yaml")
	var err error
	appConfig, err = config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}

	// Initialize storage based on configuration. Every mode satisfies the
	// same Store contract; nothing downstream branches on the mode.
	dbType := appConfig.Database.Type
	if dbType == "" {
		dbType = getEnv("DB_TYPE", "sqlite")
	}

	switch dbType {
	case "mysql":
		log.Println("Using MySQL storage mode")
		mysqlCfg := appConfig.Database.MySQL

		portStr := ""
		if mysqlCfg.Port > 0 {
			portStr = fmt.Sprintf("%d", mysqlCfg.Port)
		}

		store, err = database.NewMySQLStore(
			getEnvOrConfig(mysqlCfg.Host, "DB_HOST", "mysql"),
			getEnvOrConfig(portStr, "DB_PORT", "3306"),
			getEnvOrConfig(mysqlCfg.User, "DB_USER", "office_user"),
			getEnvOrConfig(mysqlCfg.Password, "DB_PASSWORD", "office_pass"),
			getEnvOrConfig(mysqlCfg.Database, "DB_NAME", "office_db"),
		)
		if err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
	case "postgres":
		log.Println("Using PostgreSQL cloud sync mode")
		pgCfg := appConfig.Database.Postgres

		portStr := ""
		if pgCfg.Port > 0 {
			portStr = fmt.Sprintf("%d", pgCfg.Port)
		}

		store, err = database.NewPostgresDB(
			getEnvOrConfig(pgCfg.Host, "DB_HOST", "db"),
			getEnvOrConfig(portStr, "DB_PORT", "5432"),
			getEnvOrConfig(pgCfg.User, "DB_USER", "office_user"),
			getEnvOrConfig(pgCfg.Password, "DB_PASSWORD", "office_pass"),
			getEnvOrConfig(pgCfg.Database, "DB_NAME", "office_db"),
			pgCfg.SSLMode,
		)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
	default:
		path := getEnvOrConfig(appConfig.Database.SQLite.Path, "DB_PATH", "data/office.db")
		log.Printf("Using local storage mode (sqlite at %s)", path)
		if dir := filepath.Dir(path); dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		store, err = database.NewSQLiteStore(path)
		if err != nil {
			log.Fatalf("Failed to open local database: %v", err)
		}
	}
	defer store.Close()

	if version, err := store.SchemaVersion(); err == nil {
		log.Printf("Storage ready (schema version %d)", version)
	}

	dismissals = matching.NewDismissalStore(store)

	// Initialize Meilisearch when enabled
	if appConfig.Search.Enabled {
		meilisearchHost := appConfig.Search.Meilisearch.Host
		if meilisearchHost == "" {
			meilisearchHost = getEnv("MEILISEARCH_HOST", "http://meilisearch:7700")
		}
		meilisearchKey := appConfig.Search.Meilisearch.APIKey
		if meilisearchKey == "" {
			meilisearchKey = getEnv("MEILISEARCH_KEY", "masterKey123")
		}

		searchClient = search.NewSearchClient(meilisearchHost, meilisearchKey)
		if err := searchClient.InitIndex(); err != nil {
			log.Printf("Warning: Failed to initialize search index: %v", err)
		}
	} else {
		log.Println("Search engine disabled; using in-memory filtering")
	}

	// Initialize rate limiter for bulk endpoints
	rateLimiter = ratelimit.NewRateLimiter(
		appConfig.RateLimit.RequestsPerMinute,
		appConfig.RateLimit.RequestsPerHour,
		appConfig.RateLimit.Enabled,
	)
	log.Printf("Rate limiter initialized: %d req/min, %d req/hour (enabled: %v)",
		appConfig.RateLimit.RequestsPerMinute,
		appConfig.RateLimit.RequestsPerHour,
		appConfig.RateLimit.Enabled,
	)

	// Start the reminder poller
	if appConfig.Reminders.Enabled {
		reminderScheduler = scheduler.NewReminderScheduler(store, appConfig.Reminders.GetPollInterval(), nil)
		if err := reminderScheduler.Start(); err != nil {
			log.Printf("Warning: Failed to start reminder scheduler: %v", err)
		}
		defer reminderScheduler.Stop()
	}

	// Setup Gin router
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// Routes
	r.GET("/health", healthCheck)

	r.GET("/api/records", getRecords)
	r.POST("/api/records", saveRecord)
	r.GET("/api/records/:id", getRecord)
	r.PUT("/api/records/:id", updateRecord)
	r.DELETE("/api/records/:id", deleteRecord)

	r.GET("/api/agents", getAgents)
	r.POST("/api/agents", saveAgent)
	r.GET("/api/agents/:id", getAgent)
	r.PUT("/api/agents/:id", updateAgent)
	r.DELETE("/api/agents/:id", deleteAgent)

	r.POST("/api/attachments", saveAttachment)
	r.GET("/api/attachments/:id", getAttachment)
	r.DELETE("/api/attachments/:id", deleteAttachment)

	r.GET("/api/reminders", getReminders)
	r.POST("/api/reminders", saveReminder)
	r.GET("/api/reminders/:id", getReminder)
	r.PUT("/api/reminders/:id", updateReminder)
	r.DELETE("/api/reminders/:id", deleteReminder)

	r.GET("/api/deals", getDeals)
	r.POST("/api/deals", saveDeal)
	r.GET("/api/deals/:id", getDeal)
	r.PUT("/api/deals/:id", updateDeal)
	r.DELETE("/api/deals/:id", deleteDeal)

	// Matching
	r.GET("/api/matches", getMatches)
	r.POST("/api/matches/:id/dismiss", dismissMatch)
	r.DELETE("/api/matches/dismissed", clearDismissedMatches)

	r.GET("/api/search", searchRecords)

	// Bulk import/export with rate limiting
	r.GET("/api/export/csv", exportCSV)
	r.GET("/api/export/json", exportJSON)
	r.POST("/api/import/csv", rateLimitMiddleware(), importCSV)
	r.POST("/api/import/json", rateLimitMiddleware(), importJSON)

	// Rate limiter stats endpoint
	r.GET("/api/ratelimit/stats", getRateLimitStats)

	// Admin statistics
	adminHandler := handlers.NewAdminHandler(store)
	admin := r.Group("/api/admin")
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.GET("/category-stats", adminHandler.GetCategoryStats)
		admin.GET("/price-distribution", adminHandler.GetPriceDistribution)
	}

	port := getEnv("PORT", appConfig.Server.Port)
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// rateLimitMiddleware rejects bulk requests over the configured windows
func rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rateLimiter.AllowRequest() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
				"stats": rateLimiter.GetStats(),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Records

func getRecords(c *gin.Context) {
	var records []models.Record
	var err error

	if category := c.Query("category"); category != "" {
		records, err = store.GetRecordsByCategory(category)
	} else {
		records, err = store.GetAllRecords()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records, "count": len(records)})
}

func getRecord(c *gin.Context) {
	record, err := store.GetRecord(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func saveRecord(c *gin.Context) {
	var record models.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	if err := store.SaveRecord(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	indexRecord(&record)
	c.JSON(http.StatusCreated, record)
}

func updateRecord(c *gin.Context) {
	var record models.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record.ID = c.Param("id")

	// Keep the original creation timestamp on in-place edits
	existing, err := store.GetRecord(record.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil && record.CreatedAt == 0 {
		record.CreatedAt = existing.CreatedAt
	}

	if err := store.SaveRecord(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	indexRecord(&record)
	c.JSON(http.StatusOK, record)
}

func deleteRecord(c *gin.Context) {
	id := c.Param("id")
	if err := store.DeleteRecord(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if searchClient != nil {
		if err := searchClient.RemoveRecord(id); err != nil {
			log.Printf("Warning: failed to remove record %s from search index: %v", id, err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func indexRecord(record *models.Record) {
	if searchClient == nil {
		return
	}
	if err := searchClient.IndexRecord(record); err != nil {
		log.Printf("Warning: failed to index record %s: %v", record.ID, err)
	}
}

// Agents

func getAgents(c *gin.Context) {
	agents, err := store.GetAllAgents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents, "count": len(agents)})
}

func getAgent(c *gin.Context) {
	agent, err := store.GetAgent(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if agent == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		return
	}
	c.JSON(http.StatusOK, agent)
}

func saveAgent(c *gin.Context) {
	var agent models.Agent
	if err := c.ShouldBindJSON(&agent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if agent.ID == "" {
		agent.ID = uuid.NewString()
	}

	if err := store.SaveAgent(&agent); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, agent)
}

func updateAgent(c *gin.Context) {
	var agent models.Agent
	if err := c.ShouldBindJSON(&agent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	agent.ID = c.Param("id")

	existing, err := store.GetAgent(agent.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil && agent.CreatedAt == 0 {
		agent.CreatedAt = existing.CreatedAt
	}

	if err := store.SaveAgent(&agent); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agent)
}

func deleteAgent(c *gin.Context) {
	if err := store.DeleteAgent(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// Attachments

func saveAttachment(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	blob, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attachment := models.Attachment{
		ID:       c.PostForm("id"),
		FileName: file.Filename,
		Blob:     blob,
		RecordID: c.PostForm("recordId"),
	}
	if attachment.ID == "" {
		attachment.ID = uuid.NewString()
	}

	if err := store.SaveAttachment(&attachment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       attachment.ID,
		"fileName": attachment.FileName,
		"recordId": attachment.RecordID,
		"size":     len(attachment.Blob),
	})
}

func getAttachment(c *gin.Context) {
	attachment, err := store.GetAttachment(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if attachment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.FileName))
	c.Data(http.StatusOK, "application/octet-stream", attachment.Blob)
}

func deleteAttachment(c *gin.Context) {
	if err := store.DeleteAttachment(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// Reminders

func getReminders(c *gin.Context) {
	reminders, err := store.GetAllReminders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders": reminders, "count": len(reminders)})
}

func getReminder(c *gin.Context) {
	reminder, err := store.GetReminder(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if reminder == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return
	}
	c.JSON(http.StatusOK, reminder)
}

func saveReminder(c *gin.Context) {
	var reminder models.Reminder
	if err := c.ShouldBindJSON(&reminder); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}

	if err := store.SaveReminder(&reminder); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reminder)
}

func updateReminder(c *gin.Context) {
	var reminder models.Reminder
	if err := c.ShouldBindJSON(&reminder); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reminder.ID = c.Param("id")

	existing, err := store.GetReminder(reminder.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil && reminder.CreatedAt == 0 {
		reminder.CreatedAt = existing.CreatedAt
	}

	if err := store.SaveReminder(&reminder); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reminder)
}

func deleteReminder(c *gin.Context) {
	if err := store.DeleteReminder(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// Deals

func getDeals(c *gin.Context) {
	deals, err := store.GetAllDeals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deals": deals, "count": len(deals)})
}

func getDeal(c *gin.Context) {
	deal, err := store.GetDeal(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, deal)
}

func saveDeal(c *gin.Context) {
	var deal models.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if deal.ID == "" {
		deal.ID = uuid.NewString()
	}
	if deal.Status == "" {
		deal.Status = models.DealStatusOpen
	}

	if err := store.SaveDeal(&deal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, deal)
}

func updateDeal(c *gin.Context) {
	var deal models.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deal.ID = c.Param("id")

	existing, err := store.GetDeal(deal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil && deal.CreatedAt == 0 {
		deal.CreatedAt = existing.CreatedAt
	}

	if err := store.SaveDeal(&deal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, deal)
}

func deleteDeal(c *gin.Context) {
	if err := store.DeleteDeal(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// Matching

func getMatches(c *gin.Context) {
	records, err := store.GetAllRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	matches := matching.ComputeMatches(records)

	if c.Query("include_dismissed") != "true" {
		matches, err = dismissals.Filter(matches)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches, "count": len(matches)})
}

func dismissMatch(c *gin.Context) {
	id := c.Param("id")
	if err := dismissals.Dismiss(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dismissed": id})
}

func clearDismissedMatches(c *gin.Context) {
	if err := dismissals.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// Search

func searchRecords(c *gin.Context) {
	query := c.Query("q")
	limit := int64(20)
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.ParseInt(limitStr, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if searchClient != nil {
		var starred *bool
		if starredStr := c.Query("starred"); starredStr != "" {
			val := starredStr == "true"
			starred = &val
		}

		params := search.FilterParams{
			Query:   query,
			Status:  c.Query("status"),
			Starred: starred,
			Limit:   limit,
		}
		if categories := c.Query("categories"); categories != "" {
			params.Categories = strings.Split(categories, ",")
		}

		records, err := searchClient.FilterSearch(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"records": records, "count": len(records)})
		return
	}

	// In-memory fallback
	records, err := store.GetAllRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	hits := search.FilterRecords(records, query)
	if int64(len(hits)) > limit {
		hits = hits[:limit]
	}
	c.JSON(http.StatusOK, gin.H{"records": hits, "count": len(hits)})
}

// Import / export

func exportCSV(c *gin.Context) {
	collections, err := exchange.LoadCollections(store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	csvText := exchange.ExportCSV(collections)
	c.Header("Content-Disposition", "attachment; filename=real-estate-export.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}

func exportJSON(c *gin.Context) {
	collections, err := exchange.LoadCollections(store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := exchange.ExportJSON(collections)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=real-estate-backup.json")
	c.Data(http.StatusOK, "application/json", data)
}

// readImportBody accepts either a multipart "file" upload or a raw body
func readImportBody(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request.Body)
}

func importCSV(c *gin.Context) {
	body, err := readImportBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collections, err := exchange.ImportCSV(string(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Writes are sequential; a failure leaves the committed prefix in place
	result, err := exchange.SaveCollections(store, collections)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "imported": result})
		return
	}

	if searchClient != nil {
		if err := searchClient.IndexRecords(collections.Records); err != nil {
			log.Printf("Warning: failed to index imported records: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"imported": result})
}

func importJSON(c *gin.Context) {
	body, err := readImportBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collections, err := exchange.ImportJSON(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := exchange.SaveCollections(store, collections)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "imported": result})
		return
	}

	if searchClient != nil {
		if err := searchClient.IndexRecords(collections.Records); err != nil {
			log.Printf("Warning: failed to index imported records: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"imported": result})
}

func getRateLimitStats(c *gin.Context) {
	c.JSON(http.StatusOK, rateLimiter.GetStats())
}

// Helpers

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrConfig returns the config value if set, otherwise checks env, otherwise default
func getEnvOrConfig(configValue, envKey, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, defaultValue)
}
