package provider

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"investtrack/internal/models"
)

var (
	trillion = decimal.New(1, 12)
	billion  = decimal.New(1, 9)
	million  = decimal.New(1, 6)
)

// FormatMarketCap renders a market capitalization as "2.95T", "812.40B",
// "13.07M" or a comma-grouped integer below one million. A missing or zero
// value renders as "N/A".
func FormatMarketCap(value *float64) string {
	if value == nil || *value == 0 || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return models.MarketCapUnavailable
	}
	d := decimal.NewFromFloat(*value)
	switch {
	case d.GreaterThanOrEqual(trillion):
		return d.Div(trillion).StringFixed(2) + "T"
	case d.GreaterThanOrEqual(billion):
		return d.Div(billion).StringFixed(2) + "B"
	case d.GreaterThanOrEqual(million):
		return d.Div(million).StringFixed(2) + "M"
	default:
		return humanize.Comma(d.Round(0).IntPart())
	}
}

// normalizeCurrency upper-cases an ISO 4217 code and falls back to USD for
// empty or unknown codes. Minor-unit codes such as "GBp" become their major unit.
func normalizeCurrency(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" || money.GetCurrency(c) == nil {
		return models.DefaultCurrency
	}
	return c
}

// finite reports whether every value is present and a real number.
func finite(values ...*float64) bool {
	for _, v := range values {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			return false
		}
	}
	return true
}

// plausiblePrice rejects zero (a "no data" sentinel for several providers)
// and negative prices.
func plausiblePrice(p float64) bool {
	return p > 0
}
