package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/bhp/core/form"
)

// ReadBatch parses CSV rows into form values. The header names the fields;
// unknown columns are rejected so a typo does not silently drop a value.
func ReadBatch(r io.Reader) ([]form.FormValues, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("batch file is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	known := make(map[string]bool, len(form.Fields))
	for _, f := range form.Fields {
		known[f] = true
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		if !known[header[i]] {
			return nil, fmt.Errorf("unknown column %q", header[i])
		}
	}
	var rows []form.FormValues
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		v := make(form.FormValues, len(header))
		for i, h := range header {
			v[h] = rec[i]
		}
		rows = append(rows, v)
	}
	return rows, nil
}

// BatchSummary aggregates the outcomes of a batch run.
type BatchSummary struct {
	Outcomes  []form.Outcome
	Displayed int
	Rejected  int
	Failed    int
	// Price statistics over displayed estimates, in lakhs.
	MeanPrice   float64
	StdDevPrice float64
	MinPrice    float64
	MaxPrice    float64
}

// RunBatch submits every row in order through ctrl.
func RunBatch(ctx context.Context, ctrl *form.Controller, rows []form.FormValues) BatchSummary {
	var sum BatchSummary
	var prices []float64
	for _, row := range rows {
		if ctx.Err() != nil {
			break
		}
		out := ctrl.HandleSubmit(ctx, row)
		sum.Outcomes = append(sum.Outcomes, out)
		switch out.State {
		case form.StateDisplayed:
			sum.Displayed++
			prices = append(prices, out.Response.EstimatedPriceLakhs)
		case form.StateRejected:
			sum.Rejected++
		case form.StateFailed:
			sum.Failed++
		}
	}
	if len(prices) > 0 {
		sum.MeanPrice = stat.Mean(prices, nil)
		sum.MinPrice = floats.Min(prices)
		sum.MaxPrice = floats.Max(prices)
	}
	if len(prices) > 1 {
		sum.StdDevPrice = stat.StdDev(prices, nil)
	}
	return sum
}

// String renders the summary as a short report.
func (s BatchSummary) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%d submitted: %d displayed, %d rejected, %d failed", len(s.Outcomes), s.Displayed, s.Rejected, s.Failed)
	if s.Displayed > 0 {
		fmt.Fprintf(b, "\nprice (lakhs): mean %s, std dev %s, min %s, max %s",
			form.FormatLakhs(round2(s.MeanPrice)), form.FormatLakhs(round2(s.StdDevPrice)),
			form.FormatLakhs(s.MinPrice), form.FormatLakhs(s.MaxPrice))
	}
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
