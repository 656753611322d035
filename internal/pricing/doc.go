// Package pricing computes the market price surface for on-court value and
// classifies draft-pick buckets against it.
//
// The free-agency band is the 25th/50th/75th percentile of dollars-per-WAR
// across the market join. Rookie contracts are expressed as a per-season
// cost-per-WAR rate over the fixed post-draft window, summarized per pick
// bucket, and labeled BUY, SELL, or NEUTRAL against the band widened by a
// fixed friction premium. Scenario runs recompute the band under altered
// season filters or markups; bucket rates never change across scenarios.
package pricing
