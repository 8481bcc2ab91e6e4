package model

// Uncategorized is the display bucket for tasks without a recognized category.
const Uncategorized = "Uncategorized"

// categoryColors is the fixed palette; anything else falls back to the
// Uncategorized color.
var categoryColors = map[string]string{
	"Work":     "12",
	"Personal": "13",
	"Health":   "10",
	"Finance":  "11",
	"Learning": "14",
	"Errands":  "208",
}

const uncategorizedColor = "8"

// DisplayCategory maps an absent or unknown category to Uncategorized.
func DisplayCategory(category string) string {
	if _, ok := categoryColors[category]; ok {
		return category
	}
	return Uncategorized
}

// CategoryColor returns the ANSI color for a category badge.
func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return uncategorizedColor
}
