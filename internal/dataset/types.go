package dataset

// PerformanceRecord is one player-season of on-court value, expressed as a
// wins-above-replacement style scalar.
type PerformanceRecord struct {
	Slug          string  `json:"player_slug"`
	PlayerName    string  `json:"player_name"`
	CanonicalName string  `json:"canonical_name"`
	SeasonEnd     int     `json:"season_end"`
	WAR           float64 `json:"war"`
}

// IsValid checks the record carries a usable join key and season.
func (r PerformanceRecord) IsValid() bool {
	return r.CanonicalName != "" && r.SeasonEnd > 0
}

// SalaryRecord is one player-season salary after cleaning and
// deduplication. Split or partial contracts collapse to the maximum salary
// observed for the player-season.
type SalaryRecord struct {
	CanonicalName string  `json:"canonical_name"`
	SeasonEnd     int     `json:"season_end"`
	Salary        float64 `json:"salary"`
}

// IsValid checks the record carries a usable join key and season.
func (r SalaryRecord) IsValid() bool {
	return r.CanonicalName != "" && r.SeasonEnd > 0
}

// DraftPick is one selection in a draft class. Pick numbers outside 1..60
// are invalid input and never enter the dataset.
type DraftPick struct {
	SeasonEnd     int    `json:"season_end" validate:"min=1947"`
	Pick          int    `json:"pick" validate:"min=1,max=60"`
	Team          string `json:"team"`
	PlayerName    string `json:"player_name" validate:"required"`
	Slug          string `json:"player_slug"`
	CanonicalName string `json:"canonical_name" validate:"required"`
}

// MarketRecord is the inner join of a performance and a salary row on
// (canonical_name, season_end). A MarketRecord only exists when both source
// rows exist and both salary and WAR are strictly positive.
type MarketRecord struct {
	Slug          string  `json:"player_slug"`
	PlayerName    string  `json:"player_name"`
	CanonicalName string  `json:"canonical_name"`
	SeasonEnd     int     `json:"season_end"`
	WAR           float64 `json:"war"`
	Salary        float64 `json:"salary"`
	DollarsPerWAR float64 `json:"dollars_per_war"`
}

// PickOutcome aggregates a drafted player's value and cost over the fixed
// post-draft window. Missing seasons contribute zero to both sums, so
// WARFirst4 may be zero or negative; such rows are excluded from ratio
// statistics downstream rather than propagated as infinities.
type PickOutcome struct {
	DraftYear     int     `json:"draft_year"`
	Pick          int     `json:"pick"`
	Slug          string  `json:"player_slug"`
	PlayerName    string  `json:"player_name"`
	CanonicalName string  `json:"canonical_name"`
	WARFirst4     float64 `json:"war_first4"`
	CostFirst4    float64 `json:"cost_first4"`
}

// HasPositiveWAR reports whether the outcome can produce a defined
// cost-per-WAR rate.
func (o PickOutcome) HasPositiveWAR() bool {
	return o.WARFirst4 > 0
}
