package award

import (
	"sort"
	"strings"

	"SKCCTracker/internal/model"
)

// WAC: work SKCC members on all six continents, from October 9, 2011.
type WAC struct {
	op Operator
}

func NewWAC(op Operator) *WAC {
	return &WAC{op: op}
}

func (r *WAC) Name() string { return "WAC" }

func contactContinent(c model.Contact) string {
	continent := strings.ToUpper(strings.TrimSpace(c.Continent))
	if continents[continent] {
		return continent
	}
	return ""
}

func (r *WAC) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	if contactContinent(c) == "" {
		return false
	}
	qso := c.QSODate()
	if qso < wacEffectiveDate {
		return false
	}
	return r.op.memberBy(qso)
}

func (r *WAC) Progress(contacts []model.Contact) model.Progress {
	worked := map[string]bool{}
	for _, c := range contacts {
		if r.Validate(c) {
			worked[contactContinent(c)] = true
		}
	}

	count := len(worked)
	endorsement := "Not Yet"
	if count >= wacRequired {
		endorsement = "WAC"
	}

	var missing []string
	for continent := range continents {
		if !worked[continent] {
			missing = append(missing, continent)
		}
	}
	sort.Strings(missing)
	commentary := ""
	if len(missing) > 0 {
		commentary = "needed: " + strings.Join(missing, " ")
	}

	return model.Progress{
		Award:       r.Name(),
		Current:     count,
		Required:    wacRequired,
		Percent:     model.Pct(count, wacRequired),
		Achieved:    count >= wacRequired,
		Endorsement: endorsement,
		NextLevel:   wacRequired,
		Commentary:  commentary,
	}
}
