package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"real-estate-office/internal/models"
)

func TestMapNeedToCategory(t *testing.T) {
	tests := []struct {
		name string
		need string
		want string
		ok   bool
	}{
		{name: "empty", need: "", want: "", ok: false},
		{name: "commercial land wins over land", need: "commercial land near highway", want: "Commercial Land", ok: true},
		{name: "plain land", need: "land for farming", want: "Land", ok: true},
		{name: "plot maps to land", need: "residential plot", want: "Land", ok: true},
		{name: "house", need: "3 bedroom house", want: "House", ok: true},
		{name: "villa maps to house", need: "luxury villa", want: "House", ok: true},
		{name: "rent wins over flat", need: "flat for rent", want: "Rental", ok: true},
		{name: "plain rent", need: "looking to rent", want: "Rental", ok: true},
		{name: "apartment", need: "2bhk apartment", want: "Apartment", ok: true},
		{name: "bhk shorthand", need: "3 bhk", want: "Apartment", ok: true},
		{name: "office", need: "office space downtown", want: "Office Space", ok: true},
		{name: "shop", need: "small shop", want: "Shop", ok: true},
		{name: "unclassified", need: "warehouse", want: "Other", ok: true},
		{name: "case insensitive", need: "LAND", want: "Land", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapNeedToCategory(tt.need)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapCustomerCategoryToPropertyType(t *testing.T) {
	tests := []struct {
		category string
		want     []string
	}{
		{category: "", want: nil},
		{category: "Land", want: []string{"Land", "Plot", "Agricultural Land"}},
		{category: "Plot", want: []string{"Land", "Plot", "Agricultural Land"}},
		{category: "House", want: []string{"House", "Villa", "Bungalow"}},
		{category: "Villa", want: []string{"House", "Villa", "Bungalow"}},
		{category: "Commercial Land", want: []string{"Commercial Land", "Commercial Property"}},
		{category: "Apartment", want: []string{"Apartment", "Flat"}},
		{category: "Rental", want: []string{"Rental", "House", "Apartment", "Flat"}},
		{category: "Office Space", want: []string{"Office Space", "Commercial Property"}},
		{category: "Shop", want: []string{"Shop", "Commercial Property"}},
		{category: "Farmhouse", want: []string{"Farmhouse"}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, MapCustomerCategoryToPropertyType(tt.category))
		})
	}
}

func TestDisplayCategory(t *testing.T) {
	tests := []struct {
		name   string
		record models.Record
		want   string
	}{
		{
			name:   "explicit customer category wins",
			record: models.Record{CustomerCategory: "Villa", Need: "land"},
			want:   "Villa",
		},
		{
			name:   "need mapped when category empty",
			record: models.Record{Need: "2bhk flat"},
			want:   "Apartment",
		},
		{
			name:   "nothing set",
			record: models.Record{},
			want:   "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayCategory(&tt.record))
		})
	}
}

func TestCategoryGate(t *testing.T) {
	tests := []struct {
		name     string
		buyer    string
		property string
		want     bool
	}{
		{name: "house buyer villa listing", buyer: "House", property: "Villa", want: true},
		{name: "house buyer bungalow listing", buyer: "House", property: "Bungalow", want: true},
		{name: "land buyer plot listing", buyer: "Land", property: "Plot", want: true},
		{name: "rental buyer house listing", buyer: "Rental", property: "House", want: true},
		{name: "apartment buyer flat listing", buyer: "Apartment", property: "Flat", want: true},
		{name: "exact equality fallback", buyer: "Shop", property: "Shop", want: true},
		{name: "plot buyer only exact", buyer: "Plot", property: "Land", want: false},
		{name: "house buyer land listing", buyer: "House", property: "Land", want: false},
		{name: "other never crosses", buyer: "Other", property: "House", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categoryGate(tt.buyer, tt.property))
		})
	}
}
