package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/kilianp07/bhp/core/model"
)

const (
	warningGlyph = "⚠️ "

	// FailureMessage replaces the result when the prediction call fails.
	FailureMessage = warningGlyph + "Failed to fetch prediction. Check backend."
	// LocationAlert is raised when the location list cannot be loaded.
	LocationAlert = warningGlyph + "Failed to load locations. Check if the backend is running."
)

// RenderErrors prefixes every validation message with the warning glyph, one per line.
func RenderErrors(errs []string) string {
	return warningGlyph + strings.Join(errs, "\n"+warningGlyph)
}

// FormatLakhs prints a price the shortest way that round-trips, e.g. 85.5 or 85.
// Magnitudes outside [1e-6, 1e21) use exponent form such as 1e+21 or 1.5e-7.
func FormatLakhs(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderResult formats a successful estimate.
func RenderResult(r model.PredictionResponse) string {
	return "Estimated Price: ₹" + FormatLakhs(r.EstimatedPriceLakhs) + " Lakhs\n\n" +
		"Description: " + r.Description
}
