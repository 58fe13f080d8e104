// Package reader holds the UI-independent state of the reading assistant:
// the input/submit controller, the word layout and the detail panel.
package reader

import (
	"context"
	"errors"
	"strings"

	"github.com/f3rmion/wordahead/internal/wordahead"
)

// User-visible messages.
const (
	MsgEmptyInput  = "Please enter some text to analyze"
	MsgEmptyResult = "No words returned from server"
	msgFailedPfx   = "Failed to process text: "
)

var (
	// ErrValidation is returned when the buffer is blank.
	ErrValidation = errors.New("empty input")
	// ErrBusy is returned when an analysis is already in flight.
	ErrBusy = errors.New("analysis already in progress")
	// ErrEmptyResult is recorded when the service returns no words.
	ErrEmptyResult = errors.New("empty result")
)

// Analyzer turns text into annotated words.
type Analyzer interface {
	ProcessText(ctx context.Context, text string) ([]wordahead.WordAnnotation, error)
}

// Status is the state of the analysis request.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Input owns the text buffer and the lifecycle of the analysis request.
type Input struct {
	text   string
	status Status
	errMsg string
	err    error
	words  []wordahead.WordAnnotation
	seq    uint64
}

// SetText replaces the buffer.
func (in *Input) SetText(s string) {
	in.text = s
}

// Text returns the buffer.
func (in *Input) Text() string {
	return in.text
}

// Status returns the current request status.
func (in *Input) Status() Status {
	return in.status
}

// Loading reports whether an analysis is in flight.
func (in *Input) Loading() bool {
	return in.status == StatusLoading
}

// ErrorMessage returns the user-visible message of the last failure, if any.
// It can be set while the status is idle (empty result).
func (in *Input) ErrorMessage() string {
	return in.errMsg
}

// Err returns the error behind ErrorMessage.
func (in *Input) Err() error {
	return in.err
}

// Words returns the current word list.
func (in *Input) Words() []wordahead.WordAnnotation {
	return in.words
}

// Begin validates the buffer and moves to loading. It returns the payload to
// send, which is the buffer as typed (not trimmed), and the request sequence
// number to pass to Finish.
func (in *Input) Begin() (string, uint64, error) {
	if in.status == StatusLoading {
		return "", 0, ErrBusy
	}
	if strings.TrimSpace(in.text) == "" {
		in.status = StatusError
		in.err = ErrValidation
		in.errMsg = MsgEmptyInput
		return "", 0, ErrValidation
	}

	in.seq++
	in.status = StatusLoading
	in.err = nil
	in.errMsg = ""
	return in.text, in.seq, nil
}

// Finish records the outcome of the request started by Begin. It reports
// whether the outcome was applied; results for an unknown sequence are ignored.
func (in *Input) Finish(seq uint64, words []wordahead.WordAnnotation, err error) bool {
	if in.status != StatusLoading || seq != in.seq {
		return false
	}

	switch {
	case err != nil:
		in.status = StatusError
		in.err = err
		in.errMsg = FailureMessage(err)
	case len(words) == 0:
		// Reported with a message but the status goes back to idle.
		in.status = StatusIdle
		in.err = ErrEmptyResult
		in.errMsg = MsgEmptyResult
		in.words = nil
	default:
		in.status = StatusIdle
		in.words = words
	}
	return true
}

// Submit runs a full analysis synchronously.
func (in *Input) Submit(ctx context.Context, a Analyzer) error {
	text, seq, err := in.Begin()
	if err != nil {
		return err
	}

	words, err := a.ProcessText(ctx, text)
	in.Finish(seq, words, err)
	return in.err
}

// FailureMessage formats an analysis failure for display.
func FailureMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return MsgEmptyInput
	case errors.Is(err, ErrEmptyResult):
		return MsgEmptyResult
	default:
		return msgFailedPfx + err.Error()
	}
}
