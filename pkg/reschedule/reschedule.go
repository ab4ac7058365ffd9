// Package reschedule moves events between days.
package reschedule

import (
	"time"

	"tableflip.dev/monthcal/pkg/event"
)

// Reschedule shifts e by target minus source, keeping its duration and every
// other field.
func Reschedule(e event.Event, source, target time.Time) event.Event {
	delta := target.Sub(source)
	out := e
	out.Start = event.At(e.Start.Add(delta))
	out.End = event.At(e.End.Add(delta))
	return out
}
