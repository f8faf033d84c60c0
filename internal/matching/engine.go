package matching

import (
	"sort"

	"real-estate-office/internal/models"
)

// Score weights. The category gate is the only hard requirement; every
// other signal is an additive bonus.
const (
	scoreCategory  = 40
	scoreSameBand  = 30
	scoreNearPrice = 20
	scoreLocation  = 20
	scoreArea      = 10
	minimumScore   = scoreCategory
	priceDiffBound = 0.3
)

// ComputeMatches pairs every buyer (category Customer) against every
// unsold listing and scores the pairs. Output is sorted by descending
// score; equal scores keep buyer-major, property-minor input order.
// Missing or unparsable fields cost the pair that signal's bonus, never
// the pair itself.
func ComputeMatches(records []models.Record) []models.MatchCandidate {
	var buyers, properties []models.Record
	for _, r := range records {
		if r.IsCustomer() {
			buyers = append(buyers, r)
		} else if !r.IsSold() {
			properties = append(properties, r)
		}
	}

	var matches []models.MatchCandidate

	for bi := range buyers {
		buyer := &buyers[bi]
		buyerCat := buyerCategory(buyer)
		buyerBudget, budgetOK := ParseAmount(buyer.Budget)
		buyerBand := PriceCategory(buyerBudget, budgetOK)

		for pi := range properties {
			property := &properties[pi]

			if !categoryGate(buyerCat, property.Category) {
				continue
			}

			score := scoreCategory
			reasons := []string{"Category match"}

			propertyPrice, priceOK := ParseAmount(property.Price)
			propertyBand := PriceCategory(propertyPrice, priceOK)

			if budgetOK && priceOK && buyerBand == propertyBand {
				score += scoreSameBand
				reasons = append(reasons, "Price range match")
			} else if budgetOK && priceOK && relDiff(buyerBudget, propertyPrice) <= priceDiffBound {
				score += scoreNearPrice
				reasons = append(reasons, "Price within 30%")
			}

			propertyLocation := property.Address
			if propertyLocation == "" {
				propertyLocation = property.Location
			}
			if LocationMatches(buyer.Address, propertyLocation) {
				score += scoreLocation
				reasons = append(reasons, "Location match")
			}

			propertyArea := property.LandArea
			if propertyArea == "" {
				propertyArea = property.TotalLandArea
			}
			if AreaMatches(buyer.Area, propertyArea) {
				score += scoreArea
				reasons = append(reasons, "Area/size match")
			}

			if score < minimumScore {
				continue
			}

			matches = append(matches, models.MatchCandidate{
				ID:               models.MatchID(buyer.ID, property.ID),
				BuyerID:          buyer.ID,
				BuyerName:        orDefault(buyer.Name, "Unknown"),
				BuyerContact:     orDefault(buyer.Contact, "N/A"),
				BuyerCategory:    buyerCat,
				BuyerBudget:      orDefault(buyer.Budget, "N/A"),
				PropertyID:       property.ID,
				PropertyTitle:    orDefault(property.Name, "Untitled"),
				PropertyOwner:    orDefault(property.Name, "N/A"),
				PropertyPrice:    orDefault(property.Price, "N/A"),
				PropertyCategory: property.Category,
				MatchScore:       score,
				MatchReasons:     reasons,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	return matches
}

// relDiff is the relative difference with the first argument as
// denominator. A zero budget divides to +Inf and simply fails the bound.
func relDiff(a, b float64) float64 {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff / a
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
