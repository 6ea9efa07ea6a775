package market

import (
	"strings"
	"time"

	"investtrack/internal/models"
)

// Range is a coarse chart span requested by a client.
type Range string

const (
	Range1D Range = "1D"
	Range1W Range = "1W"
	Range1M Range = "1M"
	Range3M Range = "3M"
	Range1Y Range = "1Y"

	DefaultRange = Range1M
)

type rangeSpec struct {
	lookback time.Duration
	interval models.Interval
}

const day = 24 * time.Hour

var rangeSpecs = map[Range]rangeSpec{
	Range1D: {lookback: day, interval: models.Interval5Minute},
	Range1W: {lookback: 7 * day, interval: models.IntervalHour},
	Range1M: {lookback: 30 * day, interval: models.IntervalDay},
	Range3M: {lookback: 90 * day, interval: models.IntervalDay},
	Range1Y: {lookback: 365 * day, interval: models.IntervalWeek},
}

// Ranges lists the recognized ranges, shortest first.
func Ranges() []Range {
	return []Range{Range1D, Range1W, Range1M, Range3M, Range1Y}
}

// ParseRange normalizes r. Unknown values yield DefaultRange and false.
func ParseRange(r string) (Range, bool) {
	rr := Range(strings.ToUpper(strings.TrimSpace(r)))
	if _, ok := rangeSpecs[rr]; ok {
		return rr, true
	}
	return DefaultRange, false
}

// Resolve maps a requested range to a concrete window ending at now.
// Unrecognized ranges resolve like DefaultRange.
func Resolve(r string, now time.Time) models.ChartWindow {
	rr, _ := ParseRange(r)
	spec := rangeSpecs[rr]
	return models.ChartWindow{
		From:     now.Add(-spec.lookback),
		To:       now,
		Interval: spec.interval,
	}
}
