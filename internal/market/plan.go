package market

// source identifies one of the two configured providers.
type source int

const (
	sourceFast source = iota
	sourceRich
)

func (s source) String() string {
	if s == sourceFast {
		return "fast"
	}
	return "rich"
}

// fallbackPlans lists, per market, the providers to try in order until one
// returns data. Markets not listed use defaultPlan.
var fallbackPlans = map[Market][]source{
	ForeignListed: {sourceFast, sourceRich},
}

var defaultPlan = []source{sourceRich}

// planFor returns the ordered provider attempts for m.
func planFor(m Market) []source {
	if p, ok := fallbackPlans[m]; ok {
		return p
	}
	return defaultPlan
}
