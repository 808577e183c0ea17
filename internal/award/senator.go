package award

import (
	"SKCCTracker/internal/model"
	"SKCCTracker/internal/skccnum"
)

// Senator: contact 200 members who held Tribune or Senator status at the
// time of the QSO, counted only after the operator achieved Tribune x8.
// Centurion-only counterparties do not count.
type Senator struct {
	op      Operator
	rosters Rosters
}

func NewSenator(op Operator, rosters Rosters) *Senator {
	return &Senator{op: op, rosters: rosters}
}

func (r *Senator) Name() string { return "Senator" }

func (r *Senator) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	qso := c.QSODate()
	if qso < senatorEffectiveDate {
		return false
	}
	if specialEventExcluded(c.BaseCallsign(), qso, tribuneSpecialEventCutoff) {
		return false
	}
	if !r.op.memberBy(qso) {
		return false
	}
	if r.op.TribuneX8Date == "" || qso < r.op.TribuneX8Date {
		return false
	}
	return r.rosters.TribuneOrSenatorBy(c.SKCCNumber, qso)
}

func (r *Senator) Progress(contacts []model.Contact) model.Progress {
	if r.op.TribuneX8Date == "" {
		return model.Progress{
			Award:       r.Name(),
			Required:    senatorRequired,
			Endorsement: "Not Yet",
			NextLevel:   senatorRequired,
			Commentary:  "prerequisite not met: no Tribune x8 date configured",
		}
	}

	members := map[string]bool{}
	for _, c := range contacts {
		if r.Validate(c) {
			members[skccnum.Base(c.SKCCNumber)] = true
		}
	}

	count := len(members)
	return model.Progress{
		Award:       r.Name(),
		Current:     count,
		Required:    senatorRequired,
		Percent:     model.Pct(count, senatorRequired),
		Achieved:    count >= senatorRequired,
		Endorsement: senatorLadder.Label(count),
		NextLevel:   senatorLadder.Next(count),
	}
}
