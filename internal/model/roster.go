package model

// Tier is one of the three SKCC award roster tables.
type Tier string

const (
	TierCenturion Tier = "centurion"
	TierTribune   Tier = "tribune"
	TierSenator   Tier = "senator"
)

// Tiers lists the roster tables in rank order.
func Tiers() []Tier {
	return []Tier{TierCenturion, TierTribune, TierSenator}
}

// RosterEntry maps a member number to the date that member achieved a tier.
// Entries are replaced wholesale on each roster download, never mutated.
type RosterEntry struct {
	MemberNumber string `json:"member_number"`
	Callsign     string `json:"callsign"`
	AchievedDate string `json:"achieved_date"` // YYYYMMDD
}

// RosterInfo describes the cache state of one roster table.
type RosterInfo struct {
	Tier    Tier   `json:"tier"`
	Loaded  bool   `json:"loaded"`
	Count   int    `json:"count"`
	AgeDays int    `json:"age_days"` // -1 when no cache file exists
	Skipped int    `json:"skipped_rows"`
	Status  string `json:"status"` // "current", "stale", or "missing"
}
