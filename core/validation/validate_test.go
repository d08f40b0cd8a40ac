package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/bhp/core/model"
)

const year = 2025

func valid() model.PredictionRequest {
	return model.PredictionRequest{TotalSqft: 1200, BHK: 2, Bath: 2, BuiltYear: 2015, PropertyAge: 10}
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate(valid(), year))
	assert.Nil(t, Validate(valid(), year))
	assert.True(t, Valid(valid(), year))
}

func TestValidate_SqftPerBHK(t *testing.T) {
	for _, sqft := range []float64{1, 299, 599.99} {
		r := valid()
		r.TotalSqft = sqft
		errs := Validate(r, year)
		if assert.Len(t, errs, 1, "sqft %v", sqft) {
			assert.Contains(t, errs[0], "300 sqft")
		}
	}
	r := valid()
	r.TotalSqft = 600
	assert.Empty(t, Validate(r, year))
}

func TestValidate_TooManyBathrooms(t *testing.T) {
	r := valid()
	r.Bath = 5
	errs := Validate(r, year)
	if assert.Len(t, errs, 1) {
		assert.Contains(t, errs[0], "Too many bathrooms")
	}
	r.Bath = 4
	assert.Empty(t, Validate(r, year))
}

func TestValidate_HugeCountsDoNotWrap(t *testing.T) {
	r := model.PredictionRequest{TotalSqft: 1e30, BHK: math.MaxInt, Bath: 1, BuiltYear: 2015}
	assert.Empty(t, Validate(r, year))

	r.Bath = math.MaxInt
	assert.Empty(t, Validate(r, year))

	r = valid()
	r.BuiltYear = math.MaxInt
	assert.Equal(t, []string{MsgFutureYear}, Validate(r, year))
}

func TestValidate_FutureYear(t *testing.T) {
	r := valid()
	r.BuiltYear = year + 1
	errs := Validate(r, year)
	if assert.Len(t, errs, 1) {
		assert.Contains(t, errs[0], "future")
	}
	r.BuiltYear = year
	assert.Empty(t, Validate(r, year))
}

func TestValidate_CumulativeOrder(t *testing.T) {
	r := model.PredictionRequest{TotalSqft: 500, BHK: 2, Bath: 6, BuiltYear: year + 3}
	assert.Equal(t, []string{MsgSqftPerBHK, MsgTooManyBath, MsgFutureYear}, Validate(r, year))
}

func TestValidate_ZeroValues(t *testing.T) {
	// 0/0 is NaN, which never compares below 300.
	errs := Validate(model.PredictionRequest{BuiltYear: year}, year)
	assert.Equal(t, []string{MsgTotalSqft, MsgBHK, MsgBath}, errs)
}

func TestValidate_ZeroBHKPositiveSqft(t *testing.T) {
	r := model.PredictionRequest{TotalSqft: 1000, Bath: 3, BuiltYear: year}
	assert.Equal(t, []string{MsgBHK, MsgTooManyBath}, Validate(r, year))
}

func TestValidate_NegativeSqftZeroBHK(t *testing.T) {
	r := model.PredictionRequest{TotalSqft: -10, Bath: 1, BuiltYear: year}
	assert.Equal(t, []string{MsgTotalSqft, MsgBHK, MsgSqftPerBHK}, Validate(r, year))
}
