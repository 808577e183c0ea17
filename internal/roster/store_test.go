package roster

import (
	"errors"
	"os"
	"testing"
	"time"

	"SKCCTracker/internal/model"
)

func rosterRow(callsign, member, date string) string {
	return "<tr><td>1</td><td>" + callsign + "</td><td>" + member + "</td><td>Op</td><td>Town</td><td>ST</td><td>" + date + "</td><td>40M</td></tr>"
}

func newTestStore(t *testing.T, fetcher Fetcher) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), 7, fetcher)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestDownloadAndLookup(t *testing.T) {
	mock := &MockFetcher{Payloads: map[model.Tier]string{
		model.TierCenturion: rosterRow("K4BAI", "679", "5 Feb 2006"),
	}}
	s := newTestStore(t, mock)

	if err := s.Download(model.TierCenturion, false); err != nil {
		t.Fatalf("Download: %v", err)
	}

	date, ok := s.Lookup(model.TierCenturion, "679")
	if !ok || date != "20060205" {
		t.Errorf("Lookup(679) = %q, %v; want 20060205, true", date, ok)
	}

	// Tier suffixes on the queried number must be stripped.
	for _, num := range []string{"679C", "679T", "679Sx10", "679 Tx2"} {
		if _, ok := s.Lookup(model.TierCenturion, num); !ok {
			t.Errorf("Lookup(%q) should strip the suffix and hit", num)
		}
	}

	if _, ok := s.Lookup(model.TierCenturion, "9999"); ok {
		t.Error("Lookup(9999) should miss")
	}
}

func TestDownloadUsesFreshCache(t *testing.T) {
	mock := &MockFetcher{Payloads: map[model.Tier]string{
		model.TierTribune: rosterRow("AC2C", "2748", "12 Dec 2008"),
	}}
	s := newTestStore(t, mock)

	if err := s.Download(model.TierTribune, false); err != nil {
		t.Fatalf("initial download: %v", err)
	}
	if mock.Calls != 1 {
		t.Fatalf("expected 1 fetch, got %d", mock.Calls)
	}

	// A second download within the freshness window must not hit the network.
	if err := s.Download(model.TierTribune, false); err != nil {
		t.Fatalf("cached download: %v", err)
	}
	if mock.Calls != 1 {
		t.Errorf("expected cache hit, got %d fetches", mock.Calls)
	}

	// force bypasses the cache.
	if err := s.Download(model.TierTribune, true); err != nil {
		t.Fatalf("forced download: %v", err)
	}
	if mock.Calls != 2 {
		t.Errorf("expected forced fetch, got %d fetches", mock.Calls)
	}
}

func TestDownloadDegradesToStaleCache(t *testing.T) {
	mock := &MockFetcher{Payloads: map[model.Tier]string{
		model.TierSenator: rosterRow("W1AW", "100", "1 Aug 2013"),
	}}
	s := newTestStore(t, mock)

	if err := s.Download(model.TierSenator, false); err != nil {
		t.Fatalf("initial download: %v", err)
	}

	// Age the cache past the freshness window, then break the network.
	path := s.cachePath(model.TierSenator)
	old := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("age cache: %v", err)
	}
	mock.Err = errors.New("connection refused")

	if err := s.Download(model.TierSenator, false); err != nil {
		t.Fatalf("expected stale-cache fallback to succeed, got %v", err)
	}
	if _, ok := s.Lookup(model.TierSenator, "100"); !ok {
		t.Error("stale cache entries should still be served")
	}

	infos := s.Info()
	for _, info := range infos {
		if info.Tier == model.TierSenator && info.Status != "stale" {
			t.Errorf("senator roster status = %q, want stale", info.Status)
		}
	}
}

func TestDownloadNoNetworkNoCache(t *testing.T) {
	mock := &MockFetcher{Err: errors.New("connection refused")}
	s := newTestStore(t, mock)

	err := s.Download(model.TierCenturion, false)
	if err == nil {
		t.Fatal("expected an error when neither network nor cache is available")
	}

	// The roster degrades to empty: lookups miss instead of failing.
	if _, ok := s.Lookup(model.TierCenturion, "679"); ok {
		t.Error("empty roster should miss every lookup")
	}
	if s.AchievedBy(model.TierCenturion, "679", "20250101") {
		t.Error("AchievedBy against an empty roster must be false")
	}
}

func TestAchievedByPointInTime(t *testing.T) {
	mock := &MockFetcher{Payloads: map[model.Tier]string{
		model.TierCenturion: rosterRow("K4BAI", "679", "5 Feb 2006"),
		model.TierTribune:   rosterRow("K4BAI", "679", "1 Mar 2007"),
		model.TierSenator:   "",
	}}
	s := newTestStore(t, mock)
	for _, r := range s.DownloadAll(false) {
		_ = r
	}

	tests := []struct {
		tier model.Tier
		asOf string
		want bool
	}{
		{model.TierCenturion, "20060204", false}, // day before
		{model.TierCenturion, "20060205", true},  // same day counts
		{model.TierCenturion, "20060206", true},
		{model.TierTribune, "20070228", false},
		{model.TierTribune, "20070301", true},
		{model.TierTribune, "2007-03-01", true}, // hyphenated input tolerated
		{model.TierSenator, "20250101", false},
		{model.TierCenturion, "", false},
	}
	for _, tt := range tests {
		if got := s.AchievedBy(tt.tier, "679", tt.asOf); got != tt.want {
			t.Errorf("AchievedBy(%s, 679, %q) = %v, want %v", tt.tier, tt.asOf, got, tt.want)
		}
	}

	if s.TribuneOrSenatorBy("679", "20070228") {
		t.Error("TribuneOrSenatorBy before tribune date should be false")
	}
	if !s.TribuneOrSenatorBy("679T", "20070301") {
		t.Error("TribuneOrSenatorBy on tribune date should be true")
	}
	if !s.CenturionOrHigherBy("679C", "20060205") {
		t.Error("CenturionOrHigherBy on centurion date should be true")
	}
}

func TestInfoMissing(t *testing.T) {
	s := newTestStore(t, &MockFetcher{})
	infos := s.Info()
	if len(infos) != 3 {
		t.Fatalf("expected 3 roster infos, got %d", len(infos))
	}
	for _, info := range infos {
		if info.Status != "missing" || info.AgeDays != -1 || info.Loaded {
			t.Errorf("%s: expected missing/unloaded, got %+v", info.Tier, info)
		}
	}
}
