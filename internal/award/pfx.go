package award

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"SKCCTracker/internal/model"
	"SKCCTracker/internal/skccnum"
)

// PFX: accumulate 500,000 points from callsign prefixes. Each unique prefix
// scores the highest member number worked under it; duplicate
// callsign/member pairs are ignored.
type PFX struct {
	op Operator
}

func NewPFX(op Operator) *PFX {
	return &PFX{op: op}
}

// A prefix is everything up to and including the last digit on the left
// side of the call: W4GNS -> W4, VE3XYZ -> VE3, 2E0ABC -> 2E0.
var prefixPattern = regexp.MustCompile(`^([A-Z0-9]*\d)`)

func extractPrefix(callsign string) string {
	callsign = strings.ToUpper(strings.TrimSpace(callsign))
	if i := strings.IndexByte(callsign, '/'); i >= 0 {
		// Keep the longest segment, which is normally the base call.
		longest := ""
		for _, part := range strings.Split(callsign, "/") {
			if len(part) > len(longest) {
				longest = part
			}
		}
		callsign = longest
	}
	if m := prefixPattern.FindStringSubmatch(callsign); m != nil {
		return m[1]
	}
	return ""
}

func (r *PFX) Name() string { return "PFX" }

func (r *PFX) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	qso := c.QSODate()
	if qso < pfxEffectiveDate {
		return false
	}
	if specialEventCalls[c.BaseCallsign()] {
		return false
	}
	if extractPrefix(c.Callsign) == "" {
		return false
	}
	return r.op.memberBy(qso)
}

func (r *PFX) Progress(contacts []model.Contact) model.Progress {
	highestByPrefix := map[string]int{}
	seenPairs := map[string]bool{}

	for _, c := range contacts {
		if !r.Validate(c) {
			continue
		}
		member := skccnum.Base(c.SKCCNumber)
		pair := c.BaseCallsign() + "|" + member
		if seenPairs[pair] {
			continue
		}
		seenPairs[pair] = true

		value, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		prefix := extractPrefix(c.Callsign)
		if value > highestByPrefix[prefix] {
			highestByPrefix[prefix] = value
		}
	}

	points := 0
	for _, v := range highestByPrefix {
		points += v
	}

	return model.Progress{
		Award:       r.Name(),
		Current:     points,
		Required:    pfxRequired,
		Percent:     model.Pct(points, pfxRequired),
		Achieved:    points >= pfxRequired,
		Endorsement: pfxLadder.Label(points),
		NextLevel:   pfxLadder.Next(points),
		Commentary:  fmt.Sprintf("%d points from %d prefixes", points, len(highestByPrefix)),
	}
}
