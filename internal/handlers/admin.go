package handlers

import (
	"net/http"
	"sort"

	"real-estate-office/internal/database"
	"real-estate-office/internal/matching"
	"real-estate-office/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves office statistics. Dataset sizes are small (a single
// office's listings), so stats are computed from full collection scans.
type AdminHandler struct {
	store database.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store database.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// GetStats returns system statistics
func (h *AdminHandler) GetStats(c *gin.Context) {
	records, err := h.store.GetAllRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buyers, properties, sold, starred int64
	for i := range records {
		r := &records[i]
		if r.IsCustomer() {
			buyers++
			continue
		}
		properties++
		if r.IsSold() {
			sold++
		}
		if r.Starred {
			starred++
		}
	}

	stats := gin.H{
		"records": gin.H{
			"total":      len(records),
			"buyers":     buyers,
			"properties": properties,
			"sold":       sold,
			"available":  properties - sold,
			"starred":    starred,
		},
	}

	agents, err := h.store.GetAllAgents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	stats["agents"] = gin.H{"total": len(agents)}

	reminders, err := h.store.GetAllReminders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pending := 0
	for _, r := range reminders {
		if !r.Dismissed {
			pending++
		}
	}
	stats["reminders"] = gin.H{"total": len(reminders), "pending": pending}

	deals, err := h.store.GetAllDeals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	open := 0
	for _, d := range deals {
		if d.Status == models.DealStatusOpen {
			open++
		}
	}
	stats["deals"] = gin.H{"total": len(deals), "open": open, "closed": len(deals) - open}

	c.JSON(http.StatusOK, stats)
}

// GetCategoryStats returns listing counts per category
func (h *AdminHandler) GetCategoryStats(c *gin.Context) {
	records, err := h.store.GetAllRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	counts := make(map[string]int64)
	for i := range records {
		if records[i].IsCustomer() {
			continue
		}
		counts[records[i].Category]++
	}

	type CategoryStat struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}

	stats := make([]CategoryStat, 0, len(counts))
	for category, count := range counts {
		stats = append(stats, CategoryStat{Category: category, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Category < stats[j].Category
	})

	c.JSON(http.StatusOK, gin.H{
		"category_stats": stats,
		"count":          len(stats),
	})
}

// GetPriceDistribution returns listing counts per price band
func (h *AdminHandler) GetPriceDistribution(c *gin.Context) {
	records, err := h.store.GetAllRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bands := []string{
		matching.BandUnder10L,
		matching.Band10L25L,
		matching.Band25L50L,
		matching.Band50L1Cr,
		matching.BandAbove1Cr,
		matching.BandUnknown,
	}

	counts := make(map[string]int64, len(bands))
	for i := range records {
		r := &records[i]
		if r.IsCustomer() {
			continue
		}
		amount, ok := matching.ParseAmount(r.Price)
		counts[matching.PriceCategory(amount, ok)]++
	}

	type PriceBand struct {
		Band  string `json:"band"`
		Count int64  `json:"count"`
	}

	distribution := make([]PriceBand, 0, len(bands))
	for _, band := range bands {
		distribution = append(distribution, PriceBand{Band: band, Count: counts[band]})
	}

	c.JSON(http.StatusOK, gin.H{
		"price_distribution": distribution,
	})
}
