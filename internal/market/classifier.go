package market

import (
	"regexp"
	"strings"
)

// Market is the category a ticker belongs to for provider selection.
type Market string

const (
	Domestic      Market = "DOMESTIC"
	ForeignListed Market = "FOREIGN_LISTED"
	Crypto        Market = "CRYPTO"
	Other         Market = "OTHER"
)

// DefaultDomesticSuffixes are the exchange suffixes of the home market.
var DefaultDomesticSuffixes = []string{".TW", ".TWO"}

var (
	cryptoPairMarkers = []string{"-USD", "-EUR", "-BTC", "-ETH", "-USDT"}
	listedTicker      = regexp.MustCompile(`^[A-Z]{1,5}$`)
)

// Classifier maps tickers to markets. The zero value uses DefaultDomesticSuffixes.
type Classifier struct {
	suffixes []string
}

// NewClassifier returns a classifier recognizing the given domestic suffixes.
func NewClassifier(domesticSuffixes []string) Classifier {
	s := make([]string, 0, len(domesticSuffixes))
	for _, suffix := range domesticSuffixes {
		if suffix = strings.ToUpper(strings.TrimSpace(suffix)); suffix != "" {
			s = append(s, suffix)
		}
	}
	return Classifier{suffixes: s}
}

// Classify is total: anything unmatched is Other.
func (c Classifier) Classify(symbol string) Market {
	s := strings.ToUpper(strings.TrimSpace(symbol))

	suffixes := c.suffixes
	if suffixes == nil {
		suffixes = DefaultDomesticSuffixes
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return Domestic
		}
	}
	for _, marker := range cryptoPairMarkers {
		if strings.Contains(s, marker) {
			return Crypto
		}
	}
	if listedTicker.MatchString(s) {
		return ForeignListed
	}
	return Other
}
