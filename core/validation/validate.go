package validation

import "github.com/kilianp07/bhp/core/model"

// MinSqftPerBHK is the smallest floor area accepted per bedroom.
const MinSqftPerBHK = 300

// MaxExtraBaths is how many bathrooms a property may have beyond its bedroom count.
const MaxExtraBaths = 2

const (
	MsgTotalSqft   = "Total sqft must be greater than 0."
	MsgBHK         = "BHK must be at least 1."
	MsgBath        = "Bathrooms must be at least 1."
	MsgSqftPerBHK  = "Each BHK should have at least 300 sqft."
	MsgTooManyBath = "Too many bathrooms for the given BHK count."
	MsgFutureYear  = "Built year cannot be in the future."
)

type rule struct {
	failed func(r model.PredictionRequest, year int) bool
	msg    string
}

// Order matters: messages are reported in declaration order.
var rules = []rule{
	{func(r model.PredictionRequest, _ int) bool { return r.TotalSqft <= 0 }, MsgTotalSqft},
	{func(r model.PredictionRequest, _ int) bool { return r.BHK <= 0 }, MsgBHK},
	{func(r model.PredictionRequest, _ int) bool { return r.Bath <= 0 }, MsgBath},
	{func(r model.PredictionRequest, _ int) bool { return r.SqftPerBHK() < MinSqftPerBHK }, MsgSqftPerBHK},
	{func(r model.PredictionRequest, _ int) bool { return float64(r.Bath) > float64(r.BHK)+MaxExtraBaths }, MsgTooManyBath},
	{func(r model.PredictionRequest, year int) bool { return r.BuiltYear > year }, MsgFutureYear},
}

// Validate returns one message per violated rule, or nil when the request is
// acceptable. All rules are evaluated independently.
func Validate(r model.PredictionRequest, currentYear int) []string {
	var errs []string
	for _, ru := range rules {
		if ru.failed(r, currentYear) {
			errs = append(errs, ru.msg)
		}
	}
	return errs
}

// Valid reports whether Validate would return no messages.
func Valid(r model.PredictionRequest, currentYear int) bool {
	return len(Validate(r, currentYear)) == 0
}
