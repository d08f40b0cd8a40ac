package cmd

import (
	"strings"

	"github.com/kilianp07/bhp/core/form"
)

var fieldUsage = map[string]string{
	form.FieldTotalSqft:    "total area in square feet",
	form.FieldBHK:          "number of bedrooms",
	form.FieldBath:         "number of bathrooms",
	form.FieldBuiltYear:    "year of construction (defaults to the current year)",
	form.FieldAreaType:     "area type, e.g. \"Super built-up  Area\"",
	form.FieldAvailability: "availability, e.g. \"Ready To Move\"",
	form.FieldLocation:     "location name, see the locations command",
	form.FieldNearbyMetro:  "metro station nearby: Yes or No",
	form.FieldAgeSegment:   "age segment: New, Mid, Old (auto when empty)",
}

// flagName maps a form field to its kebab-case flag, e.g. total_sqft to total-sqft.
func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}
