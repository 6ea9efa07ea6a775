package market_test

import (
	"testing"

	"investtrack/internal/market"
)

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		symbol string
		want   market.Market
	}{
		{"2330.TW", market.Domestic},
		{"6488.two", market.Domestic},
		{"BTC-USD", market.Crypto},
		{"eth-eur", market.Crypto},
		{"AAPL", market.ForeignListed},
		{"v", market.ForeignListed},
		{"GOOGL", market.ForeignListed},
		{"ABCDEF", market.Other},
		{"BRK.B", market.Other},
		{"^GSPC", market.Other},
		{"7203.T", market.Other},
		{"", market.Other},
	}

	var c market.Classifier
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			if got := c.Classify(tt.symbol); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.symbol, got, tt.want)
			}
		})
	}
}

func TestClassifier_CustomSuffixes(t *testing.T) {
	c := market.NewClassifier([]string{".hk", " .SS "})

	if got := c.Classify("0700.HK"); got != market.Domestic {
		t.Errorf("expected 0700.HK domestic, got %s", got)
	}
	if got := c.Classify("600519.SS"); got != market.Domestic {
		t.Errorf("expected 600519.SS domestic, got %s", got)
	}
	if got := c.Classify("2330.TW"); got != market.Other {
		t.Errorf("expected 2330.TW other with custom suffixes, got %s", got)
	}
}
