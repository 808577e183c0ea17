package roster

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"SKCCTracker/internal/model"
	"SKCCTracker/internal/skccnum"
)

// Store fetches, caches, and answers point-in-time membership-tier lookups
// against the three award rosters. Each tier has an independent cache file;
// a table replace is atomic from the reader's point of view.
type Store struct {
	mu       sync.RWMutex
	cacheDir string
	maxAge   time.Duration
	fetcher  Fetcher

	tables  map[model.Tier]map[string]string // member number -> achieved date (YYYYMMDD)
	loaded  map[model.Tier]bool
	skipped map[model.Tier]int
}

// NewStore creates a roster store caching under cacheDir. maxAgeDays bounds
// cache freshness (7 per SKCC publishing cadence).
func NewStore(cacheDir string, maxAgeDays int, fetcher Fetcher) (*Store, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create roster cache dir: %w", err)
	}
	s := &Store{
		cacheDir: cacheDir,
		maxAge:   time.Duration(maxAgeDays) * 24 * time.Hour,
		fetcher:  fetcher,
		tables:   make(map[model.Tier]map[string]string),
		loaded:   make(map[model.Tier]bool),
		skipped:  make(map[model.Tier]int),
	}
	for _, tier := range model.Tiers() {
		s.tables[tier] = map[string]string{}
	}
	return s, nil
}

func (s *Store) cachePath(tier model.Tier) string {
	return filepath.Join(s.cacheDir, string(tier)+"_roster.txt")
}

// cacheAge returns the age of the cached payload, or ok=false when no cache
// file exists.
func (s *Store) cacheAge(tier model.Tier) (time.Duration, bool) {
	fi, err := os.Stat(s.cachePath(tier))
	if err != nil {
		return 0, false
	}
	return time.Since(fi.ModTime()), true
}

// Download refreshes one roster. With force false a cache younger than the
// freshness threshold is used without touching the network. On network
// failure the store degrades to whatever cache exists, stale or not; an
// error is returned only when neither network nor cache can produce data,
// and even then the roster is left installed as empty so lookups degrade to
// "not on roster" instead of failing.
func (s *Store) Download(tier model.Tier, force bool) error {
	if !force {
		if age, ok := s.cacheAge(tier); ok && age < s.maxAge {
			if err := s.loadCache(tier); err == nil {
				log.Printf("[INFO] %s roster is %dh old, using cache", tier, int(age.Hours()))
				return nil
			}
		}
	}

	body, err := s.fetcher.Fetch(tier)
	if err != nil {
		log.Printf("[WARN] download %s roster: %v, falling back to cache", tier, err)
		if cacheErr := s.loadCache(tier); cacheErr == nil {
			return nil
		}
		s.install(tier, nil, 0)
		return fmt.Errorf("%s roster unavailable: %w", tier, err)
	}

	if err := os.WriteFile(s.cachePath(tier), []byte(body), 0o644); err != nil {
		log.Printf("[WARN] write %s roster cache: %v", tier, err)
	}

	entries, skipped := Parse(body)
	s.install(tier, entries, skipped)
	log.Printf("[INFO] parsed %d %s roster entries (%d rows skipped)", len(entries), tier, skipped)
	return nil
}

// DownloadAll refreshes all three rosters, returning per-tier results.
func (s *Store) DownloadAll(force bool) map[model.Tier]error {
	results := make(map[model.Tier]error, 3)
	for _, tier := range model.Tiers() {
		results[tier] = s.Download(tier, force)
	}
	return results
}

func (s *Store) loadCache(tier model.Tier) error {
	data, err := os.ReadFile(s.cachePath(tier))
	if err != nil {
		return fmt.Errorf("read %s roster cache: %w", tier, err)
	}
	entries, skipped := Parse(string(data))
	if len(entries) == 0 {
		return fmt.Errorf("%s roster cache contains no entries", tier)
	}
	s.install(tier, entries, skipped)
	return nil
}

// install replaces a tier's table wholesale (replace-then-swap; readers
// never observe a partially updated roster).
func (s *Store) install(tier model.Tier, entries []model.RosterEntry, skipped int) {
	table := make(map[string]string, len(entries))
	for _, e := range entries {
		table[e.MemberNumber] = e.AchievedDate
	}
	s.mu.Lock()
	s.tables[tier] = table
	s.loaded[tier] = true
	s.skipped[tier] = skipped
	s.mu.Unlock()
}

// Lookup returns the date a member achieved a tier. Any trailing tier suffix
// on the input number is stripped before the lookup ("12345T" -> "12345").
func (s *Store) Lookup(tier model.Tier, memberNumber string) (string, bool) {
	base := skccnum.Base(memberNumber)
	if base == "" {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	date, ok := s.tables[tier][base]
	return date, ok
}

// AchievedBy reports whether the member had achieved the tier on or before
// asOf (YYYYMMDD). An unknown member or empty date is false.
func (s *Store) AchievedBy(tier model.Tier, memberNumber, asOf string) bool {
	asOf = model.NormalizeDate(asOf)
	if asOf == "" {
		return false
	}
	date, ok := s.Lookup(tier, memberNumber)
	return ok && date <= asOf
}

// TribuneOrSenatorBy reports whether the member held Tribune or Senator
// status as of the given date. This is the critical point-in-time check for
// Tribune and Senator contacts.
func (s *Store) TribuneOrSenatorBy(memberNumber, asOf string) bool {
	return s.AchievedBy(model.TierTribune, memberNumber, asOf) ||
		s.AchievedBy(model.TierSenator, memberNumber, asOf)
}

// CenturionOrHigherBy reports whether the member held Centurion, Tribune, or
// Senator status as of the given date.
func (s *Store) CenturionOrHigherBy(memberNumber, asOf string) bool {
	return s.AchievedBy(model.TierCenturion, memberNumber, asOf) ||
		s.TribuneOrSenatorBy(memberNumber, asOf)
}

// Info reports cache state for all three rosters.
func (s *Store) Info() []model.RosterInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]model.RosterInfo, 0, 3)
	for _, tier := range model.Tiers() {
		info := model.RosterInfo{
			Tier:    tier,
			Loaded:  s.loaded[tier],
			Count:   len(s.tables[tier]),
			AgeDays: -1,
			Skipped: s.skipped[tier],
			Status:  "missing",
		}
		if age, ok := s.cacheAge(tier); ok {
			info.AgeDays = int(age.Hours() / 24)
			if age < s.maxAge {
				info.Status = "current"
			} else {
				info.Status = "stale"
			}
		}
		infos = append(infos, info)
	}
	return infos
}
