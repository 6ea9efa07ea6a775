// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// tickerRegex accepts listed symbols such as AAPL, 2330.TW, BTC-USD,
// ^GSPC and EURUSD=X.
var tickerRegex = regexp.MustCompile(`^[A-Za-z0-9^][A-Za-z0-9.\-=^]{0,19}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ticker", validateTicker)
	}
}

func validateTicker(fl validator.FieldLevel) bool {
	return IsTicker(fl.Field().String())
}

// IsTicker reports whether s looks like a market symbol.
func IsTicker(s string) bool {
	return tickerRegex.MatchString(s)
}
