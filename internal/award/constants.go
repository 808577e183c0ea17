package award

// All award dates are YYYYMMDD strings so they compare lexicographically.
const (
	tribuneEffectiveDate   = "20070301"
	senatorEffectiveDate   = "20130801"
	tripleKeyEffectiveDate = "20181110"
	ragChewEffectiveDate   = "20130701"
	marathonEffectiveDate  = "20080101"
	pfxEffectiveDate       = "20130101"
	qrpMPWEffectiveDate    = "20140901"
	dxqEffectiveDate       = "20090614"
	dxcEffectiveDate       = "20091219"
	wasRosterEffectiveDate = "20160201" // WAS-T and WAS-S
	wacEffectiveDate       = "20111009"

	provincesEffectiveDate   = "20090901"
	territoriesEffectiveDate = "20140101"

	// Club and special event calls stop counting after these dates.
	centurionSpecialEventCutoff = "20091201"
	tribuneSpecialEventCutoff   = "20081001"
)

const (
	centurionRequired = 100
	tribuneRequired   = 50
	senatorRequired   = 200
	tripleKeyRequired = 100 // per key type
	ragChewRequired   = 300 // minutes
	marathonRequired  = 100
	pfxRequired       = 500_000 // points
	wasRequired       = 50
	wacRequired       = 6
	dxRequired        = 10

	ragChewMinDuration  = 30
	marathonMinDuration = 60

	qrpMaxPowerWatts = 5.0
	mpwBase          = 1000.0
	mpwLevel2        = 1500.0
	mpwLevel3        = 2000.0

	// Maritime-mobile stations count only within territorial waters.
	maritimeMobileLimitNM = 12.0
)

var specialEventCalls = map[string]bool{
	"K9SKC": true, // SKCC club call
	"K3Y":   true,
}

// Level is one rung of an endorsement ladder.
type Level struct {
	Threshold int
	Label     string
}

// Ladder maps a count onto endorsement labels. Past the top rung,
// endorsements continue in BeyondStep increments.
type Ladder struct {
	Levels     []Level
	BeyondStep int
}

// Label returns the highest endorsement earned at the given count, or
// "Not Yet" below the first rung.
func (l Ladder) Label(count int) string {
	label := "Not Yet"
	for _, lv := range l.Levels {
		if count < lv.Threshold {
			break
		}
		label = lv.Label
	}
	return label
}

// Next returns the count needed for the next endorsement.
func (l Ladder) Next(count int) int {
	for _, lv := range l.Levels {
		if count < lv.Threshold {
			return lv.Threshold
		}
	}
	if l.BeyondStep <= 0 {
		return l.Levels[len(l.Levels)-1].Threshold
	}
	return (count/l.BeyondStep + 1) * l.BeyondStep
}

var centurionLadder = Ladder{
	Levels: []Level{
		{100, "Centurion"}, {200, "Centurion x2"}, {300, "Centurion x3"},
		{400, "Centurion x4"}, {500, "Centurion x5"}, {600, "Centurion x6"},
		{700, "Centurion x7"}, {800, "Centurion x8"}, {900, "Centurion x9"},
		{1000, "Centurion x10"}, {1500, "Centurion x15"}, {2000, "Centurion x20"},
		{2500, "Centurion x25"}, {3000, "Centurion x30"}, {3500, "Centurion x35"},
		{4000, "Centurion x40"},
	},
	BeyondStep: 500,
}

var tribuneLadder = Ladder{
	Levels: []Level{
		{50, "Tribune"}, {100, "Tribune x2"}, {150, "Tribune x3"},
		{200, "Tribune x4"}, {250, "Tribune x5"}, {300, "Tribune x6"},
		{350, "Tribune x7"}, {400, "Tribune x8"}, {450, "Tribune x9"},
		{500, "Tribune x10"}, {750, "Tribune x15"}, {1000, "Tribune x20"},
		{1250, "Tribune x25"}, {1500, "Tribune x30"},
	},
	BeyondStep: 250,
}

var senatorLadder = Ladder{
	Levels: []Level{
		{200, "Senator"}, {400, "Senator x2"}, {600, "Senator x3"},
		{800, "Senator x4"}, {1000, "Senator x5"}, {1200, "Senator x6"},
		{1400, "Senator x7"}, {1600, "Senator x8"}, {1800, "Senator x9"},
		{2000, "Senator x10"},
	},
	BeyondStep: 200,
}

// Triple Key endorsements run on total unique members across the three key
// types; the base award itself needs 100 per key.
var tripleKeyLadder = Ladder{
	Levels: []Level{
		{300, "Triple Key"}, {600, "Triple Key x2"}, {900, "Triple Key x3"},
		{1500, "Triple Key x5"}, {3000, "Triple Key x10"},
	},
	BeyondStep: 300,
}

var ragChewLadder = Ladder{
	Levels: []Level{
		{300, "Rag Chew"}, {600, "Rag Chew x2"}, {900, "Rag Chew x3"},
		{1200, "Rag Chew x4"}, {1500, "Rag Chew x5"}, {1800, "Rag Chew x6"},
		{2100, "Rag Chew x7"}, {2400, "Rag Chew x8"}, {2700, "Rag Chew x9"},
		{3000, "Rag Chew x10"}, {4500, "Rag Chew x15"}, {6000, "Rag Chew x20"},
		{7500, "Rag Chew x25"}, {9000, "Rag Chew x30"},
	},
	BeyondStep: 1500,
}

var pfxLadder = Ladder{
	Levels: []Level{
		{500_000, "PFX"}, {1_000_000, "PFX x2"}, {1_500_000, "PFX x3"},
		{2_000_000, "PFX x4"}, {2_500_000, "PFX x5"}, {3_000_000, "PFX x6"},
		{3_500_000, "PFX x7"}, {4_000_000, "PFX x8"}, {4_500_000, "PFX x9"},
		{5_000_000, "PFX x10"}, {7_500_000, "PFX x15"}, {10_000_000, "PFX x20"},
	},
	BeyondStep: 2_500_000,
}

var dxLadder = Ladder{
	Levels: []Level{
		{10, "DX-10"}, {25, "DX-25"}, {50, "DX-50"}, {75, "DX-75"}, {100, "DX-100"},
	},
	BeyondStep: 25,
}

var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "FL": true, "GA": true,
	"HI": true, "ID": true, "IL": true, "IN": true, "IA": true,
	"KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true,
	"MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VT": true,
	"VA": true, "WA": true, "WV": true, "WI": true, "WY": true,
}

var canadianProvinces = map[string]bool{
	"BC": true, "AB": true, "SK": true, "MB": true, "ON": true,
	"QC": true, "NB": true, "NS": true, "PE": true, "NL": true,
}

var canadianTerritories = map[string]bool{
	"YT": true, "NT": true, "NU": true,
}

var continents = map[string]bool{
	"NA": true, "SA": true, "EU": true, "AF": true, "AS": true, "OC": true,
}

// The nine HF bands counted for Red and Gold Maple (60M is excluded).
var mapleBands = map[string]bool{
	"160M": true, "80M": true, "40M": true, "30M": true, "20M": true,
	"17M": true, "15M": true, "12M": true, "10M": true,
}

// All ten HF bands, valid for Yellow and Orange Maple.
var hfBands = map[string]bool{
	"160M": true, "80M": true, "60M": true, "40M": true, "30M": true,
	"20M": true, "17M": true, "15M": true, "12M": true, "10M": true,
}
