package export

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"tableflip.dev/monthcal/pkg/event"
)

var csvHeader = []string{"Title", "Description", "Start", "End", "Color", "All Day"}

// WriteCSV writes one row per event under a fixed header. Every field,
// header included, is quoted and embedded quotes are doubled.
func WriteCSV(w io.Writer, events []event.Event) error {
	bw := bufio.NewWriter(w)
	writeRow(bw, csvHeader)
	for _, e := range events {
		writeRow(bw, []string{
			e.Title,
			e.Description,
			event.FormatTime(e.Start.Time),
			event.FormatTime(e.End.Time),
			e.Color,
			strconv.FormatBool(e.IsAllDay),
		})
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(f, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteByte('\n')
}
