package award

import (
	"SKCCTracker/internal/model"
	"SKCCTracker/internal/skccnum"
)

// Centurion: contact 100 different SKCC members. Any band, any date after
// joining; club and special event calls stop counting December 1, 2009.
type Centurion struct {
	op Operator
}

func NewCenturion(op Operator) *Centurion {
	return &Centurion{op: op}
}

func (r *Centurion) Name() string { return "Centurion" }

func (r *Centurion) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	qso := c.QSODate()
	if specialEventExcluded(c.BaseCallsign(), qso, centurionSpecialEventCutoff) {
		return false
	}
	return r.op.memberBy(qso)
}

func (r *Centurion) Progress(contacts []model.Contact) model.Progress {
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
		Required:    centurionRequired,
		Percent:     model.Pct(count, centurionRequired),
		Achieved:    count >= centurionRequired,
		Endorsement: centurionLadder.Label(count),
		NextLevel:   centurionLadder.Next(count),
	}
}
