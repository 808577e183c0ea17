package award

import (
	"fmt"
	"sort"
	"strings"

	"SKCCTracker/internal/model"
)

// WASVariant selects which counterparty tier a Worked All States award
// requires as of the QSO date.
type WASVariant int

const (
	WASAny     WASVariant = iota // any SKCC member
	WASTribune                   // Tribune or Senator
	WASSenator                   // Senator only
)

// WAS: work SKCC members in all 50 US states. The T and S variants require
// the counterparty to have held Tribune/Senator status at the time of the
// QSO and only count contacts from February 1, 2016.
type WAS struct {
	op      Operator
	rosters Rosters
	variant WASVariant
}

func NewWAS(op Operator, rosters Rosters, variant WASVariant) *WAS {
	return &WAS{op: op, rosters: rosters, variant: variant}
}

func (r *WAS) Name() string {
	switch r.variant {
	case WASTribune:
		return "WAS-T"
	case WASSenator:
		return "WAS-S"
	}
	return "WAS"
}

func contactState(c model.Contact) string {
	state := strings.ToUpper(strings.TrimSpace(c.State))
	if usStates[state] {
		return state
	}
	return ""
}

func (r *WAS) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	if contactState(c) == "" {
		return false
	}
	qso := c.QSODate()
	if !r.op.memberBy(qso) {
		return false
	}
	switch r.variant {
	case WASTribune:
		if qso < wasRosterEffectiveDate {
			return false
		}
		return r.rosters.TribuneOrSenatorBy(c.SKCCNumber, qso)
	case WASSenator:
		if qso < wasRosterEffectiveDate {
			return false
		}
		return r.rosters.AchievedBy(model.TierSenator, c.SKCCNumber, qso)
	}
	return true
}

func (r *WAS) Progress(contacts []model.Contact) model.Progress {
	states := map[string]bool{}
	for _, c := range contacts {
		if r.Validate(c) {
			states[contactState(c)] = true
		}
	}

	count := len(states)
	endorsement := "Not Yet"
	if count >= wasRequired {
		endorsement = r.Name()
	}

	var missing []string
	for s := range usStates {
		if !states[s] {
			missing = append(missing, s)
		}
	}
	sort.Strings(missing)
	commentary := ""
	if n := len(missing); n > 0 && n <= 10 {
		commentary = "needed: " + strings.Join(missing, " ")
	} else if n > 10 {
		commentary = fmt.Sprintf("%d states still needed", n)
	}

	return model.Progress{
		Award:       r.Name(),
		Current:     count,
		Required:    wasRequired,
		Percent:     model.Pct(count, wasRequired),
		Achieved:    count >= wasRequired,
		Endorsement: endorsement,
		NextLevel:   wasRequired,
		Commentary:  commentary,
	}
}
