package award

import (
	"fmt"
	"testing"

	"SKCCTracker/internal/model"
)

// fakeRosters answers point-in-time tier lookups from fixed tables.
type fakeRosters struct {
	dates map[model.Tier]map[string]string // tier -> member -> achieved date
}

func (f *fakeRosters) AchievedBy(tier model.Tier, member, asOf string) bool {
	base := member
	for i, r := range member {
		if r < '0' || r > '9' {
			base = member[:i]
			break
		}
	}
	date, ok := f.dates[tier][base]
	return ok && asOf != "" && date <= asOf
}

func (f *fakeRosters) TribuneOrSenatorBy(member, asOf string) bool {
	return f.AchievedBy(model.TierTribune, member, asOf) ||
		f.AchievedBy(model.TierSenator, member, asOf)
}

func (f *fakeRosters) CenturionOrHigherBy(member, asOf string) bool {
	return f.AchievedBy(model.TierCenturion, member, asOf) || f.TribuneOrSenatorBy(member, asOf)
}

func cwContact(member, date string) model.Contact {
	return model.Contact{
		Callsign:   "W1AW",
		Date:       date,
		Mode:       "CW",
		SKCCNumber: member,
		KeyType:    model.KeyStraight,
	}
}

func TestCenturionCountsDistinctMembers(t *testing.T) {
	r := NewCenturion(Operator{})

	var contacts []model.Contact
	for i := 0; i < 100; i++ {
		contacts = append(contacts, cwContact(fmt.Sprintf("%d", 1000+i), "20240101"))
	}
	// Same member again on a different band and callsign: dedup by number.
	dup := cwContact("1000", "20240202")
	dup.Callsign = "K4BAI"
	dup.Band = "40M"
	contacts = append(contacts, dup)

	p := r.Progress(contacts)
	if p.Current != 100 {
		t.Errorf("Current = %d, want 100", p.Current)
	}
	if !p.Achieved {
		t.Error("expected Centurion achieved at 100 members")
	}
	if p.Endorsement != "Centurion" {
		t.Errorf("Endorsement = %q, want Centurion", p.Endorsement)
	}
	if p.NextLevel != 200 {
		t.Errorf("NextLevel = %d, want 200", p.NextLevel)
	}
}

func TestCenturionExcludesNonCWAndMissingNumber(t *testing.T) {
	r := NewCenturion(Operator{})

	ssb := cwContact("123", "20240101")
	ssb.Mode = "SSB"
	noNumber := cwContact("", "20240101")
	keyer := cwContact("456", "20240101")
	keyer.KeyType = "KEYER"

	for _, c := range []model.Contact{ssb, noNumber, keyer} {
		if r.Validate(c) {
			t.Errorf("contact %+v should not validate", c)
		}
	}

	p := r.Progress([]model.Contact{ssb, noNumber, keyer})
	if p.Current != 0 {
		t.Errorf("Current = %d, want 0", p.Current)
	}
}

func TestCenturionSpecialEventCutoff(t *testing.T) {
	r := NewCenturion(Operator{})

	before := cwContact("123", "20091130")
	before.Callsign = "K9SKC"
	after := cwContact("123", "20091201")
	after.Callsign = "K9SKC"

	if !r.Validate(before) {
		t.Error("special event call before cutoff should count")
	}
	if r.Validate(after) {
		t.Error("special event call on/after cutoff should not count")
	}
}

func TestTribunePointInTimeRosterCheck(t *testing.T) {
	rosters := &fakeRosters{dates: map[model.Tier]map[string]string{
		model.TierTribune: {"500": "20240101"},
	}}
	r := NewTribune(Operator{CenturionDate: "20230101"}, rosters)

	c := model.Contact{
		Callsign:   "AC2C",
		Date:       "2024-03-01",
		Mode:       "CW",
		SKCCNumber: "500T",
		KeyType:    model.KeyBug,
	}
	if !r.Validate(c) {
		t.Error("contact after counterparty's Tribune date should count")
	}

	// Counterparty achieved Tribune only after the QSO.
	rosters.dates[model.TierTribune]["500"] = "20240601"
	if r.Validate(c) {
		t.Error("contact before counterparty's Tribune date must not count")
	}
}

func TestTribuneOperatorDateGating(t *testing.T) {
	rosters := &fakeRosters{dates: map[model.Tier]map[string]string{
		model.TierTribune: {"500": "20200101"},
	}}

	c := cwContact("500T", "20240301")

	// Contact before the operator's Centurion date is excluded.
	r := NewTribune(Operator{CenturionDate: "20250101"}, rosters)
	if r.Validate(c) {
		t.Error("contact before operator centurion date must not count")
	}

	// Moving the date earlier admits it.
	r = NewTribune(Operator{CenturionDate: "20230101"}, rosters)
	if !r.Validate(c) {
		t.Error("contact after operator centurion date should count")
	}
}

func TestTribuneMissingPrerequisiteDate(t *testing.T) {
	rosters := &fakeRosters{dates: map[model.Tier]map[string]string{
		model.TierTribune: {"500": "20200101"},
	}}
	r := NewTribune(Operator{}, rosters)

	p := r.Progress([]model.Contact{cwContact("500T", "20240301")})
	if p.Current != 0 || p.Achieved || p.Percent != 0 {
		t.Errorf("missing centurion date should pin progress at zero, got %+v", p)
	}
	if p.Commentary == "" {
		t.Error("expected prerequisite commentary")
	}
}

func TestSenatorRequiresTribuneOrSenatorCounterparty(t *testing.T) {
	rosters := &fakeRosters{dates: map[model.Tier]map[string]string{
		model.TierCenturion: {"600": "20100101"},
		model.TierTribune:   {"700": "20100101"},
	}}
	r := NewSenator(Operator{TribuneX8Date: "20200101"}, rosters)

	centurionOnly := cwContact("600C", "20210101")
	tribune := cwContact("700T", "20210101")

	if r.Validate(centurionOnly) {
		t.Error("centurion-only counterparty must not count toward Senator")
	}
	if !r.Validate(tribune) {
		t.Error("tribune counterparty should count toward Senator")
	}

	// Before the operator's Tribune x8 date nothing counts.
	early := cwContact("700T", "20190101")
	if r.Validate(early) {
		t.Error("contact before tribune x8 date must not count")
	}
}

func TestSenatorMissingPrerequisiteDate(t *testing.T) {
	rosters := &fakeRosters{dates: map[model.Tier]map[string]string{}}
	p := NewSenator(Operator{}, rosters).Progress(nil)
	if p.Current != 0 || p.Achieved {
		t.Errorf("missing tribune x8 date should pin progress at zero, got %+v", p)
	}
}

func TestProgressIdempotent(t *testing.T) {
	rosters := &fakeRosters{dates: map[model.Tier]map[string]string{
		model.TierTribune: {"500": "20200101"},
	}}
	contacts := []model.Contact{
		cwContact("500T", "20240301"),
		cwContact("123", "20240301"),
	}
	for _, r := range All(Operator{CenturionDate: "20230101"}, rosters) {
		first := r.Progress(contacts)
		second := r.Progress(contacts)
		if first != second {
			t.Errorf("%s: repeated Progress differs: %+v vs %+v", r.Name(), first, second)
		}
	}
}

func TestProgressMonotonic(t *testing.T) {
	r := NewCenturion(Operator{})
	contacts := []model.Contact{cwContact("1", "20240101"), cwContact("2", "20240101")}
	before := r.Progress(contacts)
	after := r.Progress(append(contacts, cwContact("3", "20240102")))
	if after.Current < before.Current || after.Percent < before.Percent {
		t.Errorf("adding a valid contact decreased progress: %+v -> %+v", before, after)
	}
}

func TestLadder(t *testing.T) {
	tests := []struct {
		count     int
		wantLabel string
		wantNext  int
	}{
		{0, "Not Yet", 100},
		{99, "Not Yet", 100},
		{100, "Centurion", 200},
		{250, "Centurion x2", 300},
		{1000, "Centurion x10", 1500},
		{4000, "Centurion x40", 4500},
		{4700, "Centurion x40", 5000},
	}
	for _, tt := range tests {
		if got := centurionLadder.Label(tt.count); got != tt.wantLabel {
			t.Errorf("Label(%d) = %q, want %q", tt.count, got, tt.wantLabel)
		}
		if got := centurionLadder.Next(tt.count); got != tt.wantNext {
			t.Errorf("Next(%d) = %d, want %d", tt.count, got, tt.wantNext)
		}
	}

	if got := tribuneLadder.Next(1600); got != 1750 {
		t.Errorf("tribune Next(1600) = %d, want 1750", got)
	}
}
