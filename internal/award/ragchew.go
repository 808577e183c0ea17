package award

import (
	"fmt"
	"sort"

	"SKCCTracker/internal/model"
	"SKCCTracker/internal/skccnum"
)

// RagChew: accumulate 300 minutes of extended conversations of 30+ minutes
// each. Repeat contacts with the same member are fine over time, but
// back-to-back contacts (same member, same day) count once.
type RagChew struct {
	op Operator
}

func NewRagChew(op Operator) *RagChew {
	return &RagChew{op: op}
}

func (r *RagChew) Name() string { return "Rag Chew" }

func (r *RagChew) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	qso := c.QSODate()
	if qso < ragChewEffectiveDate {
		return false
	}
	if c.DurationMinutes < ragChewMinDuration {
		return false
	}
	return r.op.memberBy(qso)
}

func (r *RagChew) Progress(contacts []model.Contact) model.Progress {
	qualifying := make([]model.Contact, 0, len(contacts))
	for _, c := range contacts {
		if r.Validate(c) {
			qualifying = append(qualifying, c)
		}
	}
	sort.SliceStable(qualifying, func(i, j int) bool {
		if qualifying[i].QSODate() != qualifying[j].QSODate() {
			return qualifying[i].QSODate() < qualifying[j].QSODate()
		}
		return qualifying[i].TimeOn < qualifying[j].TimeOn
	})

	totalMinutes := 0
	counted := 0
	lastDate := map[string]string{} // member -> most recent counted day
	for _, c := range qualifying {
		member := skccnum.Base(c.SKCCNumber)
		day := c.QSODate()
		if lastDate[member] == day {
			continue // back-to-back with the same member
		}
		lastDate[member] = day
		totalMinutes += c.DurationMinutes
		counted++
	}

	return model.Progress{
		Award:       r.Name(),
		Current:     totalMinutes,
		Required:    ragChewRequired,
		Percent:     model.Pct(totalMinutes, ragChewRequired),
		Achieved:    totalMinutes >= ragChewRequired,
		Endorsement: ragChewLadder.Label(totalMinutes),
		NextLevel:   ragChewLadder.Next(totalMinutes),
		Commentary:  fmt.Sprintf("%d minutes over %d QSOs", totalMinutes, counted),
	}
}
