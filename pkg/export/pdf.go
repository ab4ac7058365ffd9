package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/event"
)

const (
	pdfPageWidth  = 277.0 // A4 landscape minus margins
	pdfCellH      = 28.0
	pdfLineH      = 4.0
	pdfEventLines = 4 // below the day number, leaving a line for "..."
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WritePDF draws month's six-week grid on one landscape A4 page with the
// titles of the events starting on each day.
func WritePDF(w io.Writer, month time.Time, events []event.Event) error {
	if month.IsZero() {
		month = time.Now()
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, dategrid.FirstOfMonth(month).Format("January 2006"), "", 1, "C", false, 0, "")

	colW := pdfPageWidth / 7
	pdf.SetFont("Arial", "B", 10)
	for _, name := range weekdayNames {
		pdf.CellFormat(colW, 7, name, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	grid := dategrid.CalendarGrid(month)
	current := dategrid.FirstOfMonth(month).Month()
	top := pdf.GetY()
	left, _, _, _ := pdf.GetMargins()
	for i, day := range grid {
		x := left + float64(i%7)*colW
		y := top + float64(i/7)*pdfCellH
		pdf.Rect(x, y, colW, pdfCellH, "D")

		pdf.SetXY(x+1, y+1)
		if day.Month() == current {
			pdf.SetTextColor(0, 0, 0)
		} else {
			pdf.SetTextColor(150, 150, 150)
		}
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(colW-2, pdfLineH, fmt.Sprintf("%d", day.Day()), "", 2, "L", false, 0, "")

		pdf.SetFont("Arial", "", 7)
		lines := 0
		for _, e := range events {
			if !dategrid.IsSameDay(e.Start.Time, day) {
				continue
			}
			if lines == pdfEventLines {
				pdf.SetX(x + 1)
				pdf.CellFormat(colW-2, pdfLineH, "...", "", 2, "L", false, 0, "")
				break
			}
			r, g, b := hexRGB(e.Color)
			pdf.SetTextColor(r, g, b)
			pdf.SetX(x + 1)
			pdf.CellFormat(colW-2, pdfLineH, clip(pdf, pdfLabel(e), colW-2), "", 2, "L", false, 0, "")
			lines++
		}
	}
	pdf.SetTextColor(0, 0, 0)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: render pdf: %w", err)
	}
	return nil
}

func pdfLabel(e event.Event) string {
	if e.IsAllDay {
		return e.Title
	}
	return e.Start.Local().Format("15:04") + " " + e.Title
}

// clip shortens s until it fits width.
func clip(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return strings.TrimSpace(string(r)) + "..."
}

// hexRGB parses #rrggbb, falling back to black.
func hexRGB(hex string) (int, int, int) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0
	}
	r, g, b := c.RGB255()
	return int(r), int(g), int(b)
}
