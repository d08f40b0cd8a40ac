package model

// DefaultAgeSegment is sent when the form leaves the age segment unset. The
// backend derives the segment from the property age in that case.
const DefaultAgeSegment = "auto"

// PredictionRequest describes a property submitted to the prediction endpoint.
// It is built fresh for every submission and never persisted.
type PredictionRequest struct {
	TotalSqft    float64 `json:"total_sqft"`
	Bath         int     `json:"bath"`
	BHK          int     `json:"bhk"`
	BuiltYear    int     `json:"built_year"`
	PropertyAge  int     `json:"property_age"` // current year minus BuiltYear
	AreaType     string  `json:"area_type"`
	Availability string  `json:"availability"`
	Location     string  `json:"location"`
	NearbyMetro  string  `json:"nearby_metro"`
	AgeSegment   string  `json:"age_segment"`
}

// SqftPerBHK returns the floor area available per bedroom. A zero bedroom
// count follows IEEE division and yields an infinity or NaN.
func (r PredictionRequest) SqftPerBHK() float64 {
	return r.TotalSqft / float64(r.BHK)
}

// PredictionResponse is the body returned by the prediction endpoint.
type PredictionResponse struct {
	EstimatedPriceLakhs float64 `json:"estimated_price_lakhs"`
	Description         string  `json:"description"`
}

// LocationsResponse is the body returned by the location listing endpoint.
type LocationsResponse struct {
	Locations []string `json:"locations"`
}
