package roster

import (
	"testing"

	"SKCCTracker/internal/model"
)

const centurionSample = `
<html><body><table>
<tr><td>1</td><td>W4DF/SK</td><td>436</td><td>Fred</td><td>Lynchburg</td><td>VA</td><td>28 Jan 2006</td><td>80M</td></tr>
<tr><td>2</td><td>k4bai</td><td>679</td><td>John</td><td>Columbus</td><td>GA</td><td>5 Feb 2006</td><td>40M</td></tr>
<tr><td>3</td><td>N0AA</td><td>1024</td><td>Bob</td><td>Denver</td><td>CO</td><td>31 Foo 2006</td><td>20M</td></tr>
</table></body></html>`

const tribuneSample = `
<table>
<tr><td>1 x15</td><td>W1AW</td><td>100</td><td>Hiram</td><td>Newington</td><td>CT</td><td>1 Mar 2007</td><td>40M</td></tr>
<tr><td>2</td><td>AC2C</td><td>2748</td><td>Marv</td><td>Severn</td><td>MD</td><td>12 Dec 2008</td><td>80M</td></tr>
</table>`

func TestParseCenturion(t *testing.T) {
	entries, skipped := Parse(centurionSample)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped row (bad date), got %d", skipped)
	}
	want := model.RosterEntry{MemberNumber: "436", Callsign: "W4DF/SK", AchievedDate: "20060128"}
	if entries[0] != want {
		t.Errorf("entries[0] = %+v, want %+v", entries[0], want)
	}
	if entries[1].Callsign != "K4BAI" {
		t.Errorf("callsign not uppercased: %q", entries[1].Callsign)
	}
	if entries[1].AchievedDate != "20060205" {
		t.Errorf("AchievedDate = %q, want 20060205", entries[1].AchievedDate)
	}
}

func TestParseTribuneEndorsementCell(t *testing.T) {
	entries, skipped := Parse(tribuneSample)
	if skipped != 0 {
		t.Errorf("expected no skipped rows, got %d", skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].MemberNumber != "100" || entries[0].AchievedDate != "20070301" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
}

func TestParseEmpty(t *testing.T) {
	entries, skipped := Parse("<html><body>maintenance page</body></html>")
	if len(entries) != 0 || skipped != 0 {
		t.Errorf("expected nothing from a page without roster rows, got %d entries, %d skipped", len(entries), skipped)
	}
}
