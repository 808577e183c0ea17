package award

import (
	"SKCCTracker/internal/model"
	"SKCCTracker/internal/skccnum"
)

// Tribune: contact 50 members who held Tribune or Senator status at the time
// of the QSO. The operator must already be a Centurion; contacts before the
// operator's Centurion date do not count, and without a configured Centurion
// date the award sits at zero progress (prerequisite not met, not an error).
type Tribune struct {
	op      Operator
	rosters Rosters
}

func NewTribune(op Operator, rosters Rosters) *Tribune {
	return &Tribune{op: op, rosters: rosters}
}

func (r *Tribune) Name() string { return "Tribune" }

func (r *Tribune) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	qso := c.QSODate()
	if qso < tribuneEffectiveDate {
		return false
	}
	if specialEventExcluded(c.BaseCallsign(), qso, tribuneSpecialEventCutoff) {
		return false
	}
	if !r.op.memberBy(qso) {
		return false
	}
	if r.op.CenturionDate == "" || qso < r.op.CenturionDate {
		return false
	}
	// Point-in-time check: the counterparty must have held Tribune or
	// Senator status on the QSO date, not merely today.
	return r.rosters.TribuneOrSenatorBy(c.SKCCNumber, qso)
}

func (r *Tribune) Progress(contacts []model.Contact) model.Progress {
	if r.op.CenturionDate == "" {
		return model.Progress{
			Award:       r.Name(),
			Required:    tribuneRequired,
			Endorsement: "Not Yet",
			NextLevel:   tribuneRequired,
			Commentary:  "prerequisite not met: no Centurion date configured",
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
		Required:    tribuneRequired,
		Percent:     model.Pct(count, tribuneRequired),
		Achieved:    count >= tribuneRequired,
		Endorsement: tribuneLadder.Label(count),
		NextLevel:   tribuneLadder.Next(count),
	}
}
