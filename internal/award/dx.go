package award

import (
	"fmt"

	"SKCCTracker/internal/model"
)

// dxAward is shared by DXQ (each member contact per entity counts) and DXC
// (each DXCC entity counts once). Both level on the number of distinct
// entities worked; DXQ additionally reports every qualifying QSO as its
// running total.
type dxAward struct {
	name      string
	effective string
	perQSO    bool
	op        Operator
}

// DXQ: the QSO-based DX award, valid from June 14, 2009.
func NewDXQ(op Operator) Rule {
	return &dxAward{name: "DXQ", effective: dxqEffectiveDate, perQSO: true, op: op}
}

// DXC: the country-based DX award, valid from December 19, 2009.
func NewDXC(op Operator) Rule {
	return &dxAward{name: "DXC", effective: dxcEffectiveDate, op: op}
}

func (r *dxAward) Name() string { return r.name }

func (r *dxAward) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	qso := c.QSODate()
	if qso < r.effective {
		return false
	}
	if !r.op.memberBy(qso) {
		return false
	}
	if c.DXCCEntity == 0 || c.DXCCEntity == r.op.DXCCEntity {
		return false
	}
	// Maritime-mobile counts only inside the 12 nautical mile limit, and
	// only when the distance was actually logged.
	if c.MaritimeMobile() {
		if c.DistanceNM <= 0 || c.DistanceNM > maritimeMobileLimitNM {
			return false
		}
	}
	return true
}

func (r *dxAward) Progress(contacts []model.Contact) model.Progress {
	entities := map[int]bool{}
	qsos := 0
	for _, c := range contacts {
		if r.Validate(c) {
			entities[c.DXCCEntity] = true
			qsos++
		}
	}

	// Levels always run on distinct entities; DXQ's total is the raw QSO
	// count, DXC's collapses to one per entity.
	count := len(entities)
	current := count
	if r.perQSO {
		current = qsos
	}
	return model.Progress{
		Award:       r.Name(),
		Current:     current,
		Required:    dxRequired,
		Percent:     model.Pct(count, dxRequired),
		Achieved:    count >= dxRequired,
		Endorsement: dxLadder.Label(count),
		NextLevel:   dxLadder.Next(count),
		Commentary:  fmt.Sprintf("%d entities over %d QSOs", count, qsos),
	}
}
