package analytics

import "time"

// Period is a named analytics window. Days is the nominal length used
// both for the [from, to] bounds and as the consumption denominator.
type Period struct {
	Name string
	Days int
}

var (
	Period1Day    = Period{"1d", 1}
	Period7Days   = Period{"7d", 7}
	Period30Days  = Period{"30d", 30}
	Period3Months = Period{"3m", 90}
	Period1Year   = Period{"1y", 365}
)

var periodsByName = map[string]Period{
	"1d":  Period1Day,
	"7d":  Period7Days,
	"30d": Period30Days,
	"3m":  Period3Months,
	"1y":  Period1Year,
}

// PeriodByName resolves a query-string period name, defaulting to the
// 30-day window for anything unrecognized.
func PeriodByName(name string) Period {
	if p, ok := periodsByName[name]; ok {
		return p
	}
	return Period30Days
}

// Resolve turns the named window into concrete bounds. The upper bound
// sits 7 days ahead of now so orders stamped marginally in the future
// (clock skew, timezone mismatch) are not dropped. The 1-year window
// reaches back two years instead of one so long-tail history is not
// under-counted.
func (p Period) Resolve(now time.Time) (from, to time.Time) {
	to = now.AddDate(0, 0, 7)
	if p.Days >= 365 {
		from = now.AddDate(0, 0, -2*365)
		return from, to
	}
	from = now.AddDate(0, 0, -p.Days)
	return from, to
}
