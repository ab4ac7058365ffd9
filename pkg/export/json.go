package export

import (
	"encoding/json"
	"fmt"
	"io"

	"tableflip.dev/monthcal/pkg/event"
)

// WriteJSON writes events as a two-space indented array.
func WriteJSON(w io.Writer, events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}
	b, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("export: json: %w", err)
	}
	_, err = w.Write(b)
	return err
}
