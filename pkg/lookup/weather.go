package lookup

import (
	"hash/fnv"
	"time"
)

// Condition is a coarse weather summary.
type Condition string

const (
	Clear  Condition = "clear"
	Cloudy Condition = "cloudy"
	Rain   Condition = "rain"
	Snow   Condition = "snow"
	Storm  Condition = "storm"
	Wind   Condition = "wind"
)

var conditions = []Condition{Clear, Cloudy, Rain, Snow, Storm, Wind}

// Weather is the forecast for one day.
type Weather struct {
	Condition   Condition `json:"condition"`
	Temperature int       `json:"temperature"`
}

// Symbol is a one-rune glyph for the condition.
func (w Weather) Symbol() string {
	switch w.Condition {
	case Clear:
		return "☀"
	case Cloudy:
		return "☁"
	case Rain:
		return "☂"
	case Snow:
		return "❄"
	case Storm:
		return "⚡"
	case Wind:
		return "≋"
	}
	return "?"
}

// Forecast is a stand-in forecast: stable per date and seed, temperatures
// between 10 and 39 °C.
type Forecast struct {
	Seed string
}

func (f Forecast) Weather(date time.Time) (Weather, bool) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(f.Seed))
	_, _ = h.Write([]byte(dateKey(date)))
	sum := h.Sum32()
	return Weather{
		Condition:   conditions[sum%uint32(len(conditions))],
		Temperature: 10 + int((sum/uint32(len(conditions)))%30),
	}, true
}
