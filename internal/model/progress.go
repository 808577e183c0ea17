package model

// Progress is the derived state of one award at a point in time. It is
// recomputed in full on every refresh and never persisted.
type Progress struct {
	Award       string  `json:"award"`
	Current     int     `json:"current"`
	Required    int     `json:"required"`
	Percent     float64 `json:"progress_pct"`
	Achieved    bool    `json:"achieved"`
	Endorsement string  `json:"endorsement"` // "Not Yet" until the base award is earned
	NextLevel   int     `json:"next_level_count,omitempty"`
	Commentary  string  `json:"commentary,omitempty"` // award-specific detail for display
	Unavailable bool    `json:"unavailable,omitempty"` // rule failed; other awards unaffected
}

// Pct returns current/required capped at 100.
func Pct(current, required int) float64 {
	if required <= 0 {
		return 0
	}
	p := float64(current) / float64(required) * 100
	if p > 100 {
		p = 100
	}
	return p
}
