package matching

import (
	"strings"

	"real-estate-office/internal/models"
)

// CustomerCategories is the fixed buyer-category catalog offered by the
// customer form.
var CustomerCategories = []string{
	"Land",
	"House",
	"Rental",
	"Commercial Land",
	"Apartment",
	"Plot",
	"Villa",
	"Office Space",
	"Shop",
	"Other",
}

// MapNeedToCategory classifies a legacy free-text "need" value. Rules run
// in a fixed priority order and the first hit wins; the commercial-land
// phrase must be tested before the generic land rule. ok is false only for
// empty input.
func MapNeedToCategory(need string) (string, bool) {
	if need == "" {
		return "", false
	}

	needLower := strings.ToLower(need)

	switch {
	case strings.Contains(needLower, "land") && strings.Contains(needLower, "commercial"):
		return "Commercial Land", true
	case strings.Contains(needLower, "land") || strings.Contains(needLower, "plot"):
		return "Land", true
	case strings.Contains(needLower, "house") || strings.Contains(needLower, "villa"):
		return "House", true
	case strings.Contains(needLower, "rent"):
		return "Rental", true
	case strings.Contains(needLower, "apartment") || strings.Contains(needLower, "flat") ||
		strings.Contains(needLower, "bhk"):
		return "Apartment", true
	case strings.Contains(needLower, "office"):
		return "Office Space", true
	case strings.Contains(needLower, "shop"):
		return "Shop", true
	}

	return "Other", true
}

// MapCustomerCategoryToPropertyType expands a buyer category into the
// property categories considered equivalent. Rental demand is
// cross-category on purpose. An unknown category maps to itself.
func MapCustomerCategoryToPropertyType(category string) []string {
	if category == "" {
		return nil
	}

	switch category {
	case "Land", "Plot":
		return []string{"Land", "Plot", "Agricultural Land"}
	case "House", "Villa":
		return []string{"House", "Villa", "Bungalow"}
	case "Commercial Land":
		return []string{"Commercial Land", "Commercial Property"}
	case "Apartment":
		return []string{"Apartment", "Flat"}
	case "Rental":
		return []string{"Rental", "House", "Apartment", "Flat"}
	case "Office Space":
		return []string{"Office Space", "Commercial Property"}
	case "Shop":
		return []string{"Shop", "Commercial Property"}
	default:
		return []string{category}
	}
}

// DisplayCategory resolves a record's buyer category for display: the
// explicit customerCategory field wins, then the category derived from the
// legacy need text, then "N/A".
func DisplayCategory(r *models.Record) string {
	if r.CustomerCategory != "" {
		return r.CustomerCategory
	}
	if r.Need != "" {
		if category, ok := MapNeedToCategory(r.Need); ok {
			return category
		}
		return r.Need
	}
	return "N/A"
}

// buyerCategory resolves the category the engine matches a buyer under:
// explicit customerCategory, else the category mapped from the legacy need
// text, else Other.
func buyerCategory(r *models.Record) string {
	if r.CustomerCategory != "" {
		return r.CustomerCategory
	}
	if category, ok := MapNeedToCategory(r.Need); ok {
		return category
	}
	return "Other"
}

// categoryGate is the mandatory buyer-to-property compatibility table.
// Exact string equality is the catch-all. This is deliberately narrower
// than MapCustomerCategoryToPropertyType: a Plot buyer passes only against
// Plot listings, matching the shipped matcher's behavior.
func categoryGate(buyerCat, propertyCat string) bool {
	var compatible []string
	switch buyerCat {
	case "Land":
		compatible = []string{"Land", "Plot", "Agricultural Land"}
	case "House":
		compatible = []string{"House", "Villa", "Bungalow"}
	case "Commercial Land":
		compatible = []string{"Commercial Land", "Commercial Property"}
	case "Apartment":
		compatible = []string{"Apartment", "Flat"}
	case "Rental":
		compatible = []string{"Rental", "House", "Apartment", "Flat"}
	}

	for _, c := range compatible {
		if propertyCat == c {
			return true
		}
	}
	return buyerCat == propertyCat
}
