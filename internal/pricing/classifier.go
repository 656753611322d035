package pricing

// Zone labels a pick bucket against the free-agency price band.
type Zone string

const (
	ZoneBuy     Zone = "BUY"
	ZoneSell    Zone = "SELL"
	ZoneNeutral Zone = "NEUTRAL"
)

// Classify applies the threshold rule with a fixed friction premium:
//
//	BUY  if median < Q25 * (1 - premium)
//	SELL if median > Q75 * (1 + premium)
//	NEUTRAL otherwise
//
// Inequalities are strict; a median exactly on a widened bound stays
// NEUTRAL.
func Classify(bucketMedian float64, band PriceBand, frictionPremium float64) Zone {
	if bucketMedian < band.Q25*(1-frictionPremium) {
		return ZoneBuy
	}
	if bucketMedian > band.Q75*(1+frictionPremium) {
		return ZoneSell
	}
	return ZoneNeutral
}
