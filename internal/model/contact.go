package model

import "strings"

// KeyType identifies the mechanical key used for a QSO. Electronic keyers
// are not valid for any SKCC award.
type KeyType string

const (
	KeyStraight   KeyType = "STRAIGHT"
	KeyBug        KeyType = "BUG"
	KeySideswiper KeyType = "SIDESWIPER"
)

// Valid reports whether the key type is one of the three mechanical keys.
func (k KeyType) Valid() bool {
	switch k {
	case KeyStraight, KeyBug, KeySideswiper:
		return true
	}
	return false
}

// Contact is a single logged QSO as seen by the award engine. The engine is
// a read-only consumer: contacts are created by logging or ADIF import
// elsewhere and never mutated here.
//
// Optional numeric fields use zero as "not logged"; optional string fields
// use the empty string.
type Contact struct {
	Callsign        string  `json:"callsign"`
	Date            string  `json:"date"` // YYYYMMDD or YYYY-MM-DD
	TimeOn          string  `json:"time_on,omitempty"`
	Mode            string  `json:"mode"`
	Band            string  `json:"band,omitempty"`
	SKCCNumber      string  `json:"skcc_number,omitempty"` // may carry a tier suffix, e.g. "12345T"
	KeyType         KeyType `json:"key_type,omitempty"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	PowerWatts      float64 `json:"power_watts,omitempty"`
	DistanceMiles   float64 `json:"distance_miles,omitempty"` // statute miles, for MPW
	DistanceNM      float64 `json:"distance_nm,omitempty"`    // nautical miles, maritime-mobile check
	State           string  `json:"state,omitempty"`
	Country         string  `json:"country,omitempty"`
	Continent       string  `json:"continent,omitempty"`
	DXCCEntity      int     `json:"dxcc_entity,omitempty"`
}

// NormalizeDate reduces a calendar date to YYYYMMDD so dates compare
// lexicographically. Accepts both YYYY-MM-DD and YYYYMMDD input.
func NormalizeDate(d string) string {
	return strings.ReplaceAll(strings.TrimSpace(d), "-", "")
}

// QSODate returns the contact date normalized to YYYYMMDD.
func (c Contact) QSODate() string {
	return NormalizeDate(c.Date)
}

// IsCW reports whether the contact mode is CW (case-insensitive).
func (c Contact) IsCW() bool {
	return strings.EqualFold(strings.TrimSpace(c.Mode), "CW")
}

// BaseCallsign returns the callsign uppercased with any portable suffix or
// prefix indicator after "/" removed ("VE3ABC/W4" -> "VE3ABC").
func (c Contact) BaseCallsign() string {
	call := strings.ToUpper(strings.TrimSpace(c.Callsign))
	if i := strings.IndexByte(call, '/'); i >= 0 {
		return call[:i]
	}
	return call
}

// MaritimeMobile reports whether the callsign carries a /MM indicator.
func (c Contact) MaritimeMobile() bool {
	call := strings.ToUpper(strings.TrimSpace(c.Callsign))
	return strings.HasSuffix(call, "/MM")
}
