package award

import (
	"SKCCTracker/internal/model"
	"SKCCTracker/internal/skccnum"
)

// Marathon: 100 QSOs of 60 or more minutes each, every one with a different
// member. Club and special event calls never count.
type Marathon struct {
	op Operator
}

func NewMarathon(op Operator) *Marathon {
	return &Marathon{op: op}
}

func (r *Marathon) Name() string { return "Marathon" }

func (r *Marathon) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	qso := c.QSODate()
	if qso < marathonEffectiveDate {
		return false
	}
	if specialEventCalls[c.BaseCallsign()] {
		return false
	}
	if c.DurationMinutes < marathonMinDuration {
		return false
	}
	return r.op.memberBy(qso)
}

func (r *Marathon) Progress(contacts []model.Contact) model.Progress {
	members := map[string]bool{}
	for _, c := range contacts {
		if r.Validate(c) {
			members[skccnum.Base(c.SKCCNumber)] = true
		}
	}

	count := len(members)
	endorsement := "Not Yet"
	if count >= marathonRequired {
		endorsement = "Marathon"
	}
	return model.Progress{
		Award:       r.Name(),
		Current:     count,
		Required:    marathonRequired,
		Percent:     model.Pct(count, marathonRequired),
		Achieved:    count >= marathonRequired,
		Endorsement: endorsement,
		NextLevel:   marathonRequired,
	}
}
