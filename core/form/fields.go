package form

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kilianp07/bhp/core/model"
)

// Field names, matching the input ids of the form.
const (
	FieldTotalSqft    = "total_sqft"
	FieldBHK          = "bhk"
	FieldBath         = "bath"
	FieldBuiltYear    = "built_year"
	FieldAreaType     = "area_type"
	FieldAvailability = "availability"
	FieldLocation     = "location"
	FieldNearbyMetro  = "nearby_metro"
	FieldAgeSegment   = "age_segment"
)

// Fields lists every input of the form in display order.
var Fields = []string{
	FieldTotalSqft, FieldBHK, FieldBath, FieldBuiltYear, FieldAreaType,
	FieldAvailability, FieldLocation, FieldNearbyMetro, FieldAgeSegment,
}

// FormValues holds the raw text of each input, keyed by field name.
type FormValues map[string]string

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	hexPrefix   = regexp.MustCompile(`^([+-]?)0[xX]([0-9a-fA-F]+)`)
)

// parseLeadingFloat reads the longest numeric prefix of s. Malformed input
// yields 0 rather than an error.
func parseLeadingFloat(s string) float64 {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

// parseLeadingInt reads the longest integer prefix of s, 0 when there is none.
// A 0x prefix selects base 16. Values beyond the int range saturate.
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	if m := hexPrefix.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseInt(m[1]+m[2], 16, 0)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0
		}
		return int(v)
	}
	m := intPrefix.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

// ageAt returns year-built, saturating instead of wrapping for huge negative years.
func ageAt(year, built int) int {
	age := year - built
	if built < 0 && age < year {
		return math.MaxInt
	}
	return age
}

// Extract builds the payload from raw values. Numbers are coerced, never
// rejected: unparsable text becomes 0, and an unparsable or zero built year
// becomes the current year.
func Extract(v FormValues, now time.Time) model.PredictionRequest {
	year := now.Year()
	built := parseLeadingInt(v[FieldBuiltYear])
	if built == 0 {
		built = year
	}
	seg := v[FieldAgeSegment]
	if seg == "" {
		seg = model.DefaultAgeSegment
	}
	return model.PredictionRequest{
		TotalSqft:    parseLeadingFloat(v[FieldTotalSqft]),
		Bath:         parseLeadingInt(v[FieldBath]),
		BHK:          parseLeadingInt(v[FieldBHK]),
		BuiltYear:    built,
		PropertyAge:  ageAt(year, built),
		AreaType:     v[FieldAreaType],
		Availability: v[FieldAvailability],
		Location:     v[FieldLocation],
		NearbyMetro:  v[FieldNearbyMetro],
		AgeSegment:   seg,
	}
}
