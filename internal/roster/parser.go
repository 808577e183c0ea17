package roster

import (
	"regexp"
	"strings"
	"time"

	"SKCCTracker/internal/model"
)

// The roster pages are semi-structured HTML tables. A typical row:
//
//	<td>1</td><td>W4DF/SK</td><td>436</td><td>Fred</td><td>Lynchburg</td>
//	<td>VA</td><td>28 Jan 2006</td><td>80M</td>
//
// Tribune rows carry an endorsement in the first cell ("1 x15"), the other
// rosters do not. The extractor is deliberately tolerant: a row that does
// not match, lacks a parseable date, or has a non-numeric member number is
// skipped rather than failing the whole parse.
var (
	rowPattern = regexp.MustCompile(
		`(?is)<td[^>]*>\d+(?:\s+x\d+)?</td>\s*<td[^>]*>([^<]+)</td>\s*<td[^>]*>(\d+)</td>.*?<td[^>]*>(\d{1,2}\s+[A-Za-z]+\s+\d{4})</td>`)
	spaces = regexp.MustCompile(`\s+`)
)

// Parse extracts roster entries from a raw listing. Returns the entries and
// the number of rows skipped for unparseable dates or member numbers.
func Parse(raw string) (entries []model.RosterEntry, skipped int) {
	for _, m := range rowPattern.FindAllStringSubmatch(raw, -1) {
		callsign := strings.ToUpper(strings.TrimSpace(m[1]))
		member := strings.TrimSpace(m[2])
		dateStr := spaces.ReplaceAllString(strings.TrimSpace(m[3]), " ")

		achieved, err := time.Parse("2 Jan 2006", dateStr)
		if err != nil {
			skipped++
			continue
		}
		entries = append(entries, model.RosterEntry{
			MemberNumber: member,
			Callsign:     callsign,
			AchievedDate: achieved.Format("20060102"),
		})
	}
	return entries, skipped
}
