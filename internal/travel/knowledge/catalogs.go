package knowledge

import "strings"

// Theme groups curated destination suggestions.
type Theme string

const (
	ThemeBeach    Theme = "beach"
	ThemeMountain Theme = "mountain"
	ThemeCity     Theme = "city"
	ThemeBudget   Theme = "budget"
)

// Themes lists themes in the order a suggestion request is classified.
var Themes = []Theme{ThemeBeach, ThemeMountain, ThemeCity, ThemeBudget}

var destinations = map[Theme][]string{
	ThemeBeach:    {"Maldives", "Bora Bora", "Maui, Hawaii", "Phuket, Thailand", "Antalya, Turkey", "Greek Islands"},
	ThemeMountain: {"Swiss Alps", "Zakopane, Poland", "Kathmandu, Nepal", "Machu Picchu, Peru", "Sochi, Russia"},
	ThemeCity:     {"Tokyo, Japan", "Shanghai, China", "Paris, France", "London, UK", "Istanbul, Turkey", "Mumbai, India"},
	ThemeBudget:   {"Bali, Indonesia", "Kyiv, Ukraine", "Bangkok, Thailand", "Goa, India", "Siem Reap, Cambodia"},
}

// Destinations returns a copy of the catalog for a theme.
func Destinations(t Theme) []string {
	return append([]string(nil), destinations[t]...)
}

// Climate selects a packing list.
type Climate string

const (
	ClimateCold    Climate = "cold"
	ClimateHot     Climate = "hot"
	ClimateGeneral Climate = "general"
)

var packingLists = map[Climate][]string{
	ClimateCold:    {"Thermal underwear", "Heavy coat", "Wool socks", "Gloves & Beanie", "Lip balm"},
	ClimateHot:     {"Sunscreen", "Swimwear", "Sunglasses", "Light linen clothes", "Hat"},
	ClimateGeneral: {"Passport", "Universal adapter", "Power bank", "Toiletries", "First aid kit"},
}

// Climate keywords are matched as substrings of the packing target, cold first.
var (
	coldKeywords = []string{"russia", "iceland", "winter", "snow", "cold", "ski", "poland", "ukraine"}
	hotKeywords  = []string{"beach", "summer", "hot", "thailand", "india", "greece", "turkey"}
)

// PackingList returns a copy of the list for a climate.
func PackingList(c Climate) []string {
	return append([]string(nil), packingLists[c]...)
}

// ClassifyClimate maps a packing target ("iceland", "beach") to a climate.
func ClassifyClimate(target string) Climate {
	switch {
	case containsAny(target, coldKeywords):
		return ClimateCold
	case containsAny(target, hotKeywords):
		return ClimateHot
	default:
		return ClimateGeneral
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// BudgetTiers is the static budgeting overview.
const BudgetTiers = "Budgeting: \n" +
	"- **Budget:** Thailand, India, Vietnam ($30-50/day)\n" +
	"- **Mid:** Turkey, Greece, Poland ($80-120/day)\n" +
	"- **High:** USA, UK, Switzerland ($200+/day)."
