package tracker

import (
	"testing"

	"SKCCTracker/internal/award"
	"SKCCTracker/internal/ledger"
	"SKCCTracker/internal/model"
)

type panicRule struct{}

func (panicRule) Name() string                { return "Broken" }
func (panicRule) Validate(model.Contact) bool { return false }
func (panicRule) Progress([]model.Contact) model.Progress {
	panic("malformed roster data")
}

type countRule struct{}

func (countRule) Name() string { return "Count" }
func (countRule) Validate(c model.Contact) bool {
	return c.IsCW()
}
func (r countRule) Progress(contacts []model.Contact) model.Progress {
	n := 0
	for _, c := range contacts {
		if r.Validate(c) {
			n++
		}
	}
	return model.Progress{Award: r.Name(), Current: n, Required: 1, Achieved: n >= 1}
}

func TestRefreshIsolatesFailingRule(t *testing.T) {
	l := ledger.NewStatic([]model.Contact{
		{Callsign: "W1AW", Date: "20240101", Mode: "CW", SKCCNumber: "1"},
	})
	agg := NewAggregator(l, []award.Rule{panicRule{}, countRule{}})

	reports, err := agg.Refresh()
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}

	if !reports[0].Unavailable {
		t.Error("panicking rule should report unavailable")
	}
	if reports[1].Unavailable || reports[1].Current != 1 {
		t.Errorf("healthy rule should still compute: %+v", reports[1])
	}
}

func TestApplicationByAwardName(t *testing.T) {
	l := ledger.NewStatic([]model.Contact{
		{Callsign: "W1AW", Date: "20240101", Mode: "CW"},
		{Callsign: "K4BAI", Date: "20240102", Mode: "SSB"},
	})
	agg := NewAggregator(l, []award.Rule{countRule{}})

	contacts, err := agg.Application("Count")
	if err != nil {
		t.Fatalf("Application: %v", err)
	}
	if len(contacts) != 1 || contacts[0].Callsign != "W1AW" {
		t.Errorf("expected the single CW contact, got %v", contacts)
	}

	if _, err := agg.Application("Nope"); err == nil {
		t.Error("unknown award should return an error")
	}
}

func TestQualifyingContactsOrdered(t *testing.T) {
	contacts := []model.Contact{
		{Callsign: "B", Date: "20240201", TimeOn: "0100", Mode: "CW"},
		{Callsign: "A", Date: "20240101", TimeOn: "2300", Mode: "CW"},
		{Callsign: "C", Date: "20240101", TimeOn: "0100", Mode: "SSB"},
	}
	out := QualifyingContacts(countRule{}, contacts)
	if len(out) != 2 {
		t.Fatalf("expected 2 qualifying contacts, got %d", len(out))
	}
	if out[0].Callsign != "A" || out[1].Callsign != "B" {
		t.Errorf("contacts not ordered by date: %v", out)
	}
}
