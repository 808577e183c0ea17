package award

import (
	"fmt"
	"strings"

	"SKCCTracker/internal/model"
)

// Maple level requirements: Yellow and Orange need contacts from 10
// provinces/territories (Orange on a single band); Red and Gold need the
// band-by-location matrix filled across the nine HF bands, Gold at QRP.
const (
	mapleLocationsRequired = 10
	mapleMatrixRequired    = 90 // 10 locations x 9 bands
)

// CanadianMaple: four achievement levels built on contacts with members in
// Canadian provinces and territories.
type CanadianMaple struct {
	op Operator
}

func NewCanadianMaple(op Operator) *CanadianMaple {
	return &CanadianMaple{op: op}
}

func (r *CanadianMaple) Name() string { return "Canadian Maple" }

// Canadian call prefixes map to provinces and territories when the contact
// record carries no explicit province field.
var callPrefixLocation = map[string]string{
	"VE1": "NS", "VA1": "NS",
	"VE2": "QC", "VA2": "QC",
	"VE3": "ON", "VA3": "ON",
	"VE4": "MB", "VA4": "MB",
	"VE5": "SK", "VA5": "SK",
	"VE6": "AB", "VA6": "AB",
	"VE7": "BC", "VA7": "BC",
	"VE8": "NT", "VA8": "NT",
	"VE9": "NB", "VA9": "NB",
	"VO1": "NL", "VO2": "NL",
	"VY0": "NU", "VY1": "YT", "VY2": "PE",
}

func mapleLocation(c model.Contact) string {
	state := strings.ToUpper(strings.TrimSpace(c.State))
	if canadianProvinces[state] || canadianTerritories[state] {
		return state
	}
	call := c.BaseCallsign()
	if len(call) >= 3 {
		if loc, ok := callPrefixLocation[call[:3]]; ok {
			return loc
		}
	}
	return ""
}

func (r *CanadianMaple) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	loc := mapleLocation(c)
	if loc == "" {
		return false
	}
	qso := c.QSODate()
	if canadianProvinces[loc] && qso < provincesEffectiveDate {
		return false
	}
	if canadianTerritories[loc] && qso < territoriesEffectiveDate {
		return false
	}
	return r.op.memberBy(qso)
}

func (r *CanadianMaple) Progress(contacts []model.Contact) model.Progress {
	yellow := map[string]bool{}
	byBand := map[string]map[string]bool{}     // band -> locations
	redMatrix := map[string]map[string]bool{}  // location -> bands
	goldMatrix := map[string]map[string]bool{} // location -> bands, QRP only

	for _, c := range contacts {
		if !r.Validate(c) {
			continue
		}
		loc := mapleLocation(c)
		band := strings.ToUpper(strings.TrimSpace(c.Band))
		if band == "" {
			continue
		}

		yellow[loc] = true
		if hfBands[band] {
			if byBand[band] == nil {
				byBand[band] = map[string]bool{}
			}
			byBand[band][loc] = true
		}
		if mapleBands[band] {
			if redMatrix[loc] == nil {
				redMatrix[loc] = map[string]bool{}
			}
			redMatrix[loc][band] = true
			if c.PowerWatts > 0 && c.PowerWatts <= qrpMaxPowerWatts {
				if goldMatrix[loc] == nil {
					goldMatrix[loc] = map[string]bool{}
				}
				goldMatrix[loc][band] = true
			}
		}
	}

	yellowCount := len(yellow)
	yellowDone := yellowCount >= mapleLocationsRequired

	// Orange needs ten locations on any one band; track the best band.
	orangeCount, orangeBand := 0, ""
	for band, locs := range byBand {
		if len(locs) > orangeCount {
			orangeCount, orangeBand = len(locs), band
		}
	}
	orangeDone := orangeCount >= mapleLocationsRequired

	matrixCells := func(m map[string]map[string]bool) (cells, completeLocs int) {
		for _, bands := range m {
			cells += len(bands)
			if len(bands) >= len(mapleBands) {
				completeLocs++
			}
		}
		return cells, completeLocs
	}
	redCells, redComplete := matrixCells(redMatrix)
	goldCells, goldComplete := matrixCells(goldMatrix)
	redDone := redComplete >= mapleLocationsRequired
	goldDone := goldComplete >= mapleLocationsRequired

	highest := "Not Yet"
	switch {
	case goldDone:
		highest = "Gold Maple"
	case redDone:
		highest = "Red Maple"
	case orangeDone:
		highest = "Orange Maple"
	case yellowDone:
		highest = "Yellow Maple"
	}

	// The unified report tracks the first unearned level.
	current, required := yellowCount, mapleLocationsRequired
	switch {
	case orangeDone:
		current, required = redCells, mapleMatrixRequired
	case yellowDone:
		current, required = orangeCount, mapleLocationsRequired
	}
	if redDone {
		current, required = goldCells, mapleMatrixRequired
	}

	commentary := fmt.Sprintf("yellow %d/10, orange %d/10", yellowCount, orangeCount)
	if orangeBand != "" {
		commentary += " on " + orangeBand
	}
	commentary += fmt.Sprintf(", red %d/90, gold %d/90", redCells, goldCells)

	return model.Progress{
		Award:       r.Name(),
		Current:     current,
		Required:    required,
		Percent:     model.Pct(current, required),
		Achieved:    yellowDone,
		Endorsement: highest,
		NextLevel:   required,
		Commentary:  commentary,
	}
}
