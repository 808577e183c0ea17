package award

import (
	"fmt"
	"sort"

	"SKCCTracker/internal/model"
	"SKCCTracker/internal/skccnum"
)

// TripleKey: 100 different members with each of the three mechanical key
// types. A member counts only once across all key types; the earliest
// contact decides which key gets the credit.
type TripleKey struct {
	op Operator
}

func NewTripleKey(op Operator) *TripleKey {
	return &TripleKey{op: op}
}

func (r *TripleKey) Name() string { return "Triple Key" }

func (r *TripleKey) Validate(c model.Contact) bool {
	if !admissible(c) {
		return false
	}
	// Key type is mandatory here, not merely valid-if-present.
	if !c.KeyType.Valid() {
		return false
	}
	qso := c.QSODate()
	if qso < tripleKeyEffectiveDate {
		return false
	}
	return r.op.memberBy(qso)
}

func (r *TripleKey) Progress(contacts []model.Contact) model.Progress {
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

	byKey := map[model.KeyType]map[string]bool{
		model.KeyStraight:   {},
		model.KeyBug:        {},
		model.KeySideswiper: {},
	}
	counted := map[string]bool{}
	for _, c := range qualifying {
		member := skccnum.Base(c.SKCCNumber)
		if counted[member] {
			continue
		}
		byKey[c.KeyType][member] = true
		counted[member] = true
	}

	straight := len(byKey[model.KeyStraight])
	bug := len(byKey[model.KeyBug])
	sideswiper := len(byKey[model.KeySideswiper])

	// The base award needs all three keys at 100; progress tracks the most
	// restrictive count. Endorsements run on the total of unique members.
	minCount := straight
	if bug < minCount {
		minCount = bug
	}
	if sideswiper < minCount {
		minCount = sideswiper
	}
	total := len(counted)

	return model.Progress{
		Award:       r.Name(),
		Current:     minCount,
		Required:    tripleKeyRequired,
		Percent:     model.Pct(minCount, tripleKeyRequired),
		Achieved:    straight >= tripleKeyRequired && bug >= tripleKeyRequired && sideswiper >= tripleKeyRequired,
		Endorsement: tripleKeyLadder.Label(total),
		NextLevel:   tripleKeyLadder.Next(total),
		Commentary: fmt.Sprintf("straight %d, bug %d, sideswiper %d (%d unique members)",
			straight, bug, sideswiper, total),
	}
}
