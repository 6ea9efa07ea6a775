package validator

import "testing"

func TestIsTicker(t *testing.T) {
	valid := []string{"AAPL", "aapl", "2330.TW", "6488.TWO", "BTC-USD", "^GSPC", "EURUSD=X", "BRK.B"}
	for _, s := range valid {
		if !IsTicker(s) {
			t.Errorf("IsTicker(%q) = false, want true", s)
		}
	}

	invalid := []string{"", " AAPL", "AA PL", "-USD", "AAPL;DROP", "ABCDEFGHIJKLMNOPQRSTU", "蘋果"}
	for _, s := range invalid {
		if IsTicker(s) {
			t.Errorf("IsTicker(%q) = true, want false", s)
		}
	}
}
