package model

import "strings"

// AgeSegment buckets a property by age.
type AgeSegment string

const (
	AgeSegmentNew AgeSegment = "New"
	AgeSegmentMid AgeSegment = "Mid"
	AgeSegmentOld AgeSegment = "Old"
)

// AgeSegmentFor derives the segment for a property age in years.
func AgeSegmentFor(age int) AgeSegment {
	switch {
	case age <= 5:
		return AgeSegmentNew
	case age <= 15:
		return AgeSegmentMid
	default:
		return AgeSegmentOld
	}
}

// ResolveAgeSegment returns the explicit segment of the request, or the one
// derived from its property age when the segment is empty or "auto".
func (r PredictionRequest) ResolveAgeSegment() string {
	s := strings.TrimSpace(r.AgeSegment)
	if s == "" || strings.EqualFold(s, DefaultAgeSegment) {
		return string(AgeSegmentFor(r.PropertyAge))
	}
	return s
}
