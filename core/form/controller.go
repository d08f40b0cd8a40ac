package form

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/bhp/core/metrics"
	"github.com/kilianp07/bhp/core/model"
	"github.com/kilianp07/bhp/core/validation"
)

// State is a step of a single submission.
type State int

const (
	StateIdle State = iota
	StateExtracting
	StateValidating
	StateRejected
	StateSubmitting
	StateDisplayed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExtracting:
		return "extracting"
	case StateValidating:
		return "validating"
	case StateRejected:
		return "rejected"
	case StateSubmitting:
		return "submitting"
	case StateDisplayed:
		return "displayed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether a submission ends in s.
func (s State) Terminal() bool {
	return s == StateRejected || s == StateDisplayed || s == StateFailed
}

// Outcome summarises one submission.
type Outcome struct {
	ID       string
	State    State
	Trace    []State // every state visited, starting with StateIdle
	Request  model.PredictionRequest
	Errors   []string
	Response *model.PredictionResponse
	Text     string
	Style    Style
	Err      error
}

func (o *Outcome) advance(s State) {
	o.State = s
	o.Trace = append(o.Trace, s)
}

// Controller handles form submissions. It keeps no state between calls.
type Controller struct {
	api     PredictionAPI
	display Display
	options
}

// NewController creates a controller posting to api and rendering on display.
func NewController(api PredictionAPI, display Display, opts ...Option) *Controller {
	return &Controller{api: api, display: display, options: newOptions(opts)}
}

// HandleSubmit runs one submission to a terminal state and renders its text.
// Failures are reported through the display and the returned Outcome only.
func (c *Controller) HandleSubmit(ctx context.Context, v FormValues) Outcome {
	out := Outcome{ID: uuid.NewString()}
	out.advance(StateIdle)

	out.advance(StateExtracting)
	now := c.now()
	out.Request = Extract(v, now)

	out.advance(StateValidating)
	if errs := validation.Validate(out.Request, now.Year()); len(errs) > 0 {
		out.Errors = errs
		out.advance(StateRejected)
		c.log.Debugw("submission rejected", map[string]any{"id": out.ID, "errors": errs})
		c.show(&out, RenderErrors(errs), StyleError)
		c.record(out, 0)
		return out
	}

	out.advance(StateSubmitting)
	start := time.Now()
	resp, err := c.predict(ctx, out.Request)
	latency := time.Since(start)
	if err != nil {
		out.Err = err
		out.advance(StateFailed)
		c.log.Errorf("prediction %s failed: %v", out.ID, err)
		c.show(&out, FailureMessage, StyleError)
	} else {
		out.Response = &resp
		out.advance(StateDisplayed)
		c.log.Infof("prediction %s: %s lakhs for %s", out.ID, FormatLakhs(resp.EstimatedPriceLakhs), out.Request.Location)
		c.show(&out, RenderResult(resp), StyleResult)
	}
	c.record(out, latency)
	return out
}

// predict shields the caller from a panicking backend implementation.
func (c *Controller) predict(ctx context.Context, req model.PredictionRequest) (resp model.PredictionResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("predict panicked: %v", r)
		}
	}()
	return c.api.PredictHomePrice(ctx, req)
}

func (c *Controller) show(out *Outcome, text string, style Style) {
	out.Text = text
	out.Style = style
	if c.display != nil {
		c.display.Render(text, style)
	}
}

func (c *Controller) record(out Outcome, latency time.Duration) {
	ev := metrics.SubmissionEvent{
		ID:               out.ID,
		State:            out.State.String(),
		Location:         out.Request.Location,
		ValidationErrors: len(out.Errors),
		Latency:          latency,
		Time:             c.now(),
	}
	if out.Response != nil {
		ev.PriceLakhs = out.Response.EstimatedPriceLakhs
	}
	if err := c.sink.RecordSubmission(ev); err != nil {
		c.log.Warnf("record submission %s: %v", out.ID, err)
	}
}
