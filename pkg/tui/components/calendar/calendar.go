// Package calendar provides helpers for rendering calendar views.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

// Weekdays is the grid header, Sunday first.
var Weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Day describes a single day rendered in the calendar.
type Day struct {
	Date       time.Time
	InMonth    bool
	HasEntry   bool
	IsToday    bool
	IsSelected bool
	IsWeekend  bool
	IsHoliday  bool
	// IsTarget marks the drop target while an event is being carried.
	IsTarget bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	OutsideStyle  lipgloss.Style
	PlainStyle    lipgloss.Style
	WeekendStyle  lipgloss.Style
	HolidayStyle  lipgloss.Style
	EntryMarker   lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	TargetStyle   lipgloss.Style
	ShowHeader    bool
}

// Title renders the header label for month.
func Title(month time.Time) string {
	return month.Format("January 2006")
}

// Render draws days seven to a row. Each cell is three columns wide: the
// day number and an entry marker.
func Render(days []Day, opts Options) string {
	if len(days) == 0 {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(strings.Join(Weekdays, "  ")))
	}

	for start := 0; start < len(days); start += 7 {
		end := start + 7
		if end > len(days) {
			end = len(days)
		}
		cells := make([]string, 0, 7)
		for _, d := range days[start:end] {
			cells = append(cells, renderDay(d, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, opts Options) string {
	text := fmt.Sprintf("%2d", info.Date.Day())

	style := opts.PlainStyle
	switch {
	case !info.InMonth:
		style = opts.OutsideStyle
	case info.IsHoliday:
		style = opts.HolidayStyle
	case info.IsWeekend:
		style = opts.WeekendStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = opts.SelectedStyle.Inherit(style)
		if info.IsTarget {
			style = opts.TargetStyle.Inherit(style)
		}
	}

	marker := " "
	if info.HasEntry {
		marker = opts.EntryMarker.Render("•")
	}
	return style.Render(text) + marker
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		OutsideStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		PlainStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		WeekendStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
		HolidayStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		EntryMarker:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		TodayStyle:    lipgloss.NewStyle().Underline(true).Bold(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		TargetStyle:   lipgloss.NewStyle().Background(lipgloss.Color("212")).Foreground(lipgloss.Color("0")),
		ShowHeader:    true,
	}
}
