// errors.go

package render

import (
	"errors"

	"github.com/buffos/go-tracker/internal/chartinfo"
)

// ErrMixedValueTypes means datasets sharing a Y axis disagree on whether
// their values are clock times.
var ErrMixedValueTypes = errors.New("Not all values in time format")

// ErrUnknownOutput is returned for an output kind no renderer handles.
var ErrUnknownOutput = errors.New("Unknown output type")

// ErrNoDates means the datasets have no dates to span the time axis.
var ErrNoDates = errors.New("no dates to plot")

// ErrNoRenderer means a summary or month chart was requested without a
// renderer for it.
var ErrNoRenderer = errors.New("no renderer for output")

// LayoutError is a chart that could not be laid out. Its message is the
// diagnostic shown in place of the chart.
type LayoutError struct {
	Stage string // "x axis", "y axis", "dispatch", ...
	Side  chartinfo.Side
	Err   error
}

func (e *LayoutError) Error() string {
	return e.Err.Error()
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

func newLayoutError(stage string, side chartinfo.Side, err error) *LayoutError {
	return &LayoutError{Stage: stage, Side: side, Err: err}
}
