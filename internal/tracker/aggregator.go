package tracker

import (
	"fmt"
	"log"
	"sort"

	"SKCCTracker/internal/award"
	"SKCCTracker/internal/ledger"
	"SKCCTracker/internal/model"
)

// Aggregator runs every award rule over one contact snapshot. Rules are
// independent of each other, so a failing rule marks only its own award as
// unavailable.
type Aggregator struct {
	ledger ledger.Ledger
	rules  []award.Rule
}

func NewAggregator(l ledger.Ledger, rules []award.Rule) *Aggregator {
	return &Aggregator{ledger: l, rules: rules}
}

// Refresh recomputes progress for all awards from the current log. The
// result is fully derived state; nothing is persisted.
func (a *Aggregator) Refresh() ([]model.Progress, error) {
	contacts, err := a.ledger.AllContacts()
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}

	reports := make([]model.Progress, 0, len(a.rules))
	for _, rule := range a.rules {
		reports = append(reports, a.run(rule, contacts))
	}
	return reports, nil
}

// run evaluates one rule, converting a panic into an unavailable report so
// one bad rule cannot abort the whole refresh.
func (a *Aggregator) run(rule award.Rule, contacts []model.Contact) (p model.Progress) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] award %s: %v", rule.Name(), r)
			p = model.Progress{Award: rule.Name(), Endorsement: "Not Yet", Unavailable: true}
		}
	}()
	return rule.Progress(contacts)
}

// Application returns the ordered qualifying contacts for one award by
// name, for the submission listing.
func (a *Aggregator) Application(awardName string) ([]model.Contact, error) {
	for _, rule := range a.rules {
		if rule.Name() != awardName {
			continue
		}
		contacts, err := a.ledger.AllContacts()
		if err != nil {
			return nil, fmt.Errorf("load contacts: %w", err)
		}
		return QualifyingContacts(rule, contacts), nil
	}
	return nil, fmt.Errorf("unknown award %q", awardName)
}

// QualifyingContacts returns the contacts a rule accepts, ordered by date
// and time, for the award submission document.
func QualifyingContacts(rule award.Rule, contacts []model.Contact) []model.Contact {
	var out []model.Contact
	for _, c := range contacts {
		if rule.Validate(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].QSODate() != out[j].QSODate() {
			return out[i].QSODate() < out[j].QSODate()
		}
		return out[i].TimeOn < out[j].TimeOn
	})
	return out
}
