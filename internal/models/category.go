package models

import (
	"strings"
)

type Category string

const (
	CategoryEarthquake Category = "Earthquake"
	CategoryFlashFlood Category = "Flash Flood"
	CategoryForestFire Category = "Forest Fire"
	CategoryAccident   Category = "Accident"
	CategoryOthers     Category = "Others"
)

// Uncategorized is stored when a report carries no category information.
const Uncategorized = "Uncategorized"

// CategoryVocabulary is the fixed, ordered set of incident types. Joined
// category strings always follow this order, not submission order.
var CategoryVocabulary = []Category{
	CategoryEarthquake,
	CategoryFlashFlood,
	CategoryForestFire,
	CategoryAccident,
	CategoryOthers,
}

// FieldName returns the checkbox field name for the category: lower-cased
// with spaces replaced by underscores ("Flash Flood" -> "flash_flood").
func (c Category) FieldName() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "_")
}

// JoinCategories builds the stored categories string from a set of selected
// categories, preserving vocabulary order. Returns Uncategorized when the
// set selects nothing.
func JoinCategories(selected map[Category]bool) string {
	var picked []string
	for _, c := range CategoryVocabulary {
		if selected[c] {
			picked = append(picked, string(c))
		}
	}
	if len(picked) == 0 {
		return Uncategorized
	}
	return strings.Join(picked, ",")
}
