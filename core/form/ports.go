package form

import (
	"context"

	"github.com/kilianp07/bhp/core/model"
)

// PredictionAPI is the backend reached by the loader and the controller.
type PredictionAPI interface {
	LocationNames(ctx context.Context) ([]string, error)
	PredictHomePrice(ctx context.Context, req model.PredictionRequest) (model.PredictionResponse, error)
}

// Style selects how rendered text is presented.
type Style int

const (
	// StyleResult is used for a successful estimate.
	StyleResult Style = iota
	// StyleError is used for validation and transport failures.
	StyleError
)

func (s Style) String() string {
	switch s {
	case StyleResult:
		return "result"
	case StyleError:
		return "error"
	default:
		return "unknown"
	}
}

// Display shows the outcome of a submission. Each call replaces the previous text.
type Display interface {
	Render(text string, style Style)
}

// Alerter raises a blocking, user facing warning.
type Alerter interface {
	Alert(msg string)
}

// OptionList receives selectable values.
type OptionList interface {
	Append(value string)
}
