package models

import "time"

// Interval is the sampling interval of a price chart, named the way the
// rich provider names it.
type Interval string

const (
	Interval5Minute Interval = "5m"
	IntervalHour    Interval = "1h"
	IntervalDay     Interval = "1d"
	IntervalWeek    Interval = "1wk"
)

// Intraday reports whether points at this interval are labeled with a
// clock time rather than a calendar date.
func (i Interval) Intraday() bool {
	return i == Interval5Minute || i == IntervalHour
}

// String returns the human-readable interval name.
func (i Interval) String() string {
	switch i {
	case Interval5Minute:
		return "5-minute"
	case IntervalHour:
		return "1-hour"
	case IntervalDay:
		return "1-day"
	case IntervalWeek:
		return "1-week"
	default:
		return string(i)
	}
}

// ChartWindow is a concrete time span and sampling interval for a chart request.
type ChartWindow struct {
	From     time.Time
	To       time.Time
	Interval Interval
}

// CandlePoint is one sampled close price of a chart.
type CandlePoint struct {
	Time      string  `json:"time"`
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
}

// NewCandlePoint builds a point labeled according to the interval granularity.
func NewCandlePoint(ts time.Time, price float64, interval Interval, loc *time.Location) CandlePoint {
	if loc == nil {
		loc = time.Local
	}
	t := ts.In(loc)
	label := t.Format("2006-01-02")
	if interval.Intraday() {
		label = t.Format("15:04")
	}
	return CandlePoint{Time: label, Timestamp: ts.Unix(), Price: price}
}
