// Package dataset loads the raw tabular sources (player performance,
// salaries, draft classes), normalizes them onto canonical player names,
// and derives the two tables the pricing stage consumes: the free-agency
// market join and the per-pick rookie outcomes.
//
// All tables are immutable snapshots recomputed in full on every run;
// nothing is updated incrementally.
package dataset
