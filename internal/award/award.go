package award

import (
	"SKCCTracker/internal/model"
	"SKCCTracker/internal/skccnum"
)

// Rule evaluates one award program. Validate judges a single contact's
// admissibility independent of counting; Progress folds the whole log into
// a progress report. Rules never mutate contacts.
type Rule interface {
	Name() string
	Validate(c model.Contact) bool
	Progress(contacts []model.Contact) model.Progress
}

// Rosters is the membership lookup surface the roster-gated rules need.
// *roster.Store satisfies it; tests inject a fake.
type Rosters interface {
	AchievedBy(tier model.Tier, memberNumber, asOf string) bool
	TribuneOrSenatorBy(memberNumber, asOf string) bool
	CenturionOrHigherBy(memberNumber, asOf string) bool
}

// Operator carries the operator's own identity and achievement dates.
// Dates are YYYYMMDD; an empty prerequisite date means the operator has not
// achieved that level yet, which pins the dependent award at zero progress.
type Operator struct {
	Callsign      string
	SKCCNumber    string
	JoinDate      string
	CenturionDate string
	TribuneX8Date string
	DXCCEntity    int
}

// memberBy reports whether the operator was an SKCC member on the given
// date. An unset join date does not exclude anything.
func (o Operator) memberBy(qsoDate string) bool {
	return o.JoinDate == "" || qsoDate >= o.JoinDate
}

// admissible applies the rules shared by every SKCC award: CW mode, a
// parseable counterparty member number, and a mechanical key when a key type
// is logged at all.
func admissible(c model.Contact) bool {
	if !c.IsCW() {
		return false
	}
	if skccnum.Base(c.SKCCNumber) == "" {
		return false
	}
	if c.KeyType != "" && !c.KeyType.Valid() {
		return false
	}
	return true
}

// specialEventExcluded reports whether a contact with a club or special
// event call falls on or after the award's exclusion cutoff.
func specialEventExcluded(baseCall, qsoDate, cutoff string) bool {
	if !specialEventCalls[baseCall] {
		return false
	}
	return qsoDate >= cutoff
}

// All returns every registered award rule wired to the given operator
// config and roster store.
func All(op Operator, rosters Rosters) []Rule {
	return []Rule{
		NewCenturion(op),
		NewTribune(op, rosters),
		NewSenator(op, rosters),
		NewTripleKey(op),
		NewRagChew(op),
		NewMarathon(op),
		NewPFX(op),
		NewQRPMPW(op),
		NewCanadianMaple(op),
		NewDXQ(op),
		NewDXC(op),
		NewWAS(op, rosters, WASAny),
		NewWAS(op, rosters, WASTribune),
		NewWAS(op, rosters, WASSenator),
		NewWAC(op),
	}
}
