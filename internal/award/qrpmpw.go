package award

import (
	"fmt"

	"SKCCTracker/internal/model"
)

// QRPMPW: QRP miles-per-watt. A contact qualifies when run at 5 watts or
// less and its distance works out to at least 1,000 miles per watt.
// Endorsements follow the best single contact at 1,500 and 2,000 MPW, then
// 500 MPW increments with no upper limit.
type QRPMPW struct {
	op Operator
}

func NewQRPMPW(op Operator) *QRPMPW {
	return &QRPMPW{op: op}
}

func (r *QRPMPW) Name() string { return "QRP MPW" }

func (r *QRPMPW) milesPerWatt(c model.Contact) float64 {
	if c.PowerWatts <= 0 || c.DistanceMiles <= 0 {
		return 0
	}
	return c.DistanceMiles / c.PowerWatts
}

func (r *QRPMPW) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	qso := c.QSODate()
	if qso < qrpMPWEffectiveDate {
		return false
	}
	if specialEventCalls[c.BaseCallsign()] {
		return false
	}
	if !r.op.memberBy(qso) {
		return false
	}
	if c.PowerWatts <= 0 || c.PowerWatts > qrpMaxPowerWatts {
		return false
	}
	return r.milesPerWatt(c) >= mpwBase
}

func (r *QRPMPW) Progress(contacts []model.Contact) model.Progress {
	var maxMPW float64
	count1000, count1500, count2000 := 0, 0, 0

	for _, c := range contacts {
		if !r.Validate(c) {
			continue
		}
		mpw := r.milesPerWatt(c)
		if mpw > maxMPW {
			maxMPW = mpw
		}
		count1000++
		if mpw >= mpwLevel2 {
			count1500++
		}
		if mpw >= mpwLevel3 {
			count2000++
		}
	}

	endorsement := "Not Yet"
	nextLevel := int(mpwBase)
	switch {
	case maxMPW >= mpwLevel3:
		// Past 2,000 MPW the endorsement follows the best contact in
		// 500 MPW steps.
		level := int(maxMPW/500) * 500
		endorsement = fmt.Sprintf("%d MPW", level)
		nextLevel = level + 500
	case maxMPW >= mpwLevel2:
		endorsement = "1,500 MPW"
		nextLevel = int(mpwLevel3)
	case maxMPW >= mpwBase:
		endorsement = "1,000 MPW"
		nextLevel = int(mpwLevel2)
	}

	return model.Progress{
		Award:       r.Name(),
		Current:     count1000,
		Required:    1,
		Percent:     model.Pct(count1000, 1),
		Achieved:    count1000 >= 1,
		Endorsement: endorsement,
		NextLevel:   nextLevel,
		Commentary: fmt.Sprintf("best %.0f MPW; %d at 1000+, %d at 1500+, %d at 2000+",
			maxMPW, count1000, count1500, count2000),
	}
}
