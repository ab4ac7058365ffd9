package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/monthcal/pkg/dategrid"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2/28" or --on=tomorrow.`)
}

// GetOn resolves the flag against now. ok is false when no date was given.
func (o *OnOptions) GetOn(now time.Time) (t time.Time, ok bool, err error) {
	if o.OnString == "" {
		return time.Time{}, false, nil
	}
	t, err = ParseDate(o.OnString, now)
	return t, err == nil, err
}

// ParseDate reads a day in local time. Short dates without a year land on
// the next occurrence.
func ParseDate(s string, now time.Time) (time.Time, error) {
	today := dategrid.StartOfDay(now)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return today, nil
	case "tomorrow":
		return dategrid.AddDays(today, 1), nil
	case "yesterday":
		return dategrid.AddDays(today, -1), nil
	}

	if t, err := time.ParseInLocation(layoutISO, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutISOShort, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q, expected YYYY-M-D or M/D", s)
	}
	t = t.AddDate(today.Year(), 0, 0)
	// 1/3 said on 12/5 means next year, not 11 months ago.
	if t.Before(today) {
		t = t.AddDate(1, 0, 0)
	}
	return t, nil
}
