package reschedule

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/monthcal/pkg/event"
)

// Transfer is the payload carried while an event is being dragged.
type Transfer struct {
	EventID    string    `json:"eventId"`
	SourceDate time.Time `json:"-"`
}

type wireTransfer struct {
	EventID    *string `json:"eventId"`
	SourceDate *string `json:"sourceDate"`
}

// MalformedTransferError describes why a payload was rejected.
type MalformedTransferError struct {
	Reason string
	Err    error
}

func (e *MalformedTransferError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reschedule: malformed transfer payload: %s: %v", e.Reason, e.Err)
	}
	return "reschedule: malformed transfer payload: " + e.Reason
}

func (e *MalformedTransferError) Unwrap() error { return e.Err }

// Result is the outcome of parsing a payload: either a Transfer or an error.
type Result struct {
	Transfer Transfer
	Err      *MalformedTransferError
}

// OK reports whether parsing succeeded.
func (r Result) OK() bool { return r.Err == nil }

// NewTransfer builds the payload for dragging e from source.
func NewTransfer(e event.Event, source time.Time) Transfer {
	return Transfer{EventID: e.ID, SourceDate: source}
}

// Encode serializes t as {"eventId": ..., "sourceDate": ISO-8601}.
func (t Transfer) Encode() ([]byte, error) {
	id, date := t.EventID, event.FormatTime(t.SourceDate)
	return json.Marshal(wireTransfer{EventID: &id, SourceDate: &date})
}

// ParseTransfer validates data and returns a tagged result. It never panics.
func ParseTransfer(data []byte) Result {
	if len(strings.TrimSpace(string(data))) == 0 {
		return malformed("empty payload", nil)
	}
	var w wireTransfer
	if err := json.Unmarshal(data, &w); err != nil {
		return malformed("not a transfer record", err)
	}
	if w.EventID == nil || strings.TrimSpace(*w.EventID) == "" {
		return malformed("missing eventId", nil)
	}
	if w.SourceDate == nil || *w.SourceDate == "" {
		return malformed("missing sourceDate", nil)
	}
	source, err := event.ParseTime(*w.SourceDate)
	if err != nil {
		return malformed("invalid sourceDate", err)
	}
	return Result{Transfer: Transfer{EventID: *w.EventID, SourceDate: source}}
}

func malformed(reason string, err error) Result {
	return Result{Err: &MalformedTransferError{Reason: reason, Err: err}}
}
