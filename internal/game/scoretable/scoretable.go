// Package scoretable tracks one player's thirteen scoring boxes, the
// upper-section bonus, and the speculative projections the UI shows
// before a score is committed.
package scoretable

import (
	"fmt"

	"github.com/louisbranch/yahtzee/internal/core/dice"
	"github.com/louisbranch/yahtzee/internal/core/scoring"
)

// BonusThreshold is the upper-section subtotal that earns the bonus.
// It is (1+2+3+4+5+6) x 3: three dice of each face across the section.
const BonusThreshold = 63

// BonusScore is the fixed award for reaching BonusThreshold.
const BonusScore = 35

// record is one box: unfilled, or filled with a final score.
type record struct {
	score  int
	filled bool
}

// Table maps every category to exactly one record. All thirteen boxes
// exist from construction and start unfilled; a filled box is final.
// Aggregates (subtotal, bonus, total) are always computed from the
// records, never stored.
type Table struct {
	records [scoring.NumCategories]record
}

// New returns a table with every box unfilled.
func New() *Table {
	return &Table{}
}

// Score returns the score recorded for c and whether c is filled.
func (t *Table) Score(c scoring.Category) (int, bool) {
	r := t.records[t.index(c)]
	return r.score, r.filled
}

// Has reports whether c is already filled.
func (t *Table) Has(c scoring.Category) bool {
	return t.records[t.index(c)].filled
}

// Confirm records score as the final value of c. Filling a box twice
// is a wiring bug in the caller and panics: silently overwriting would
// corrupt the table.
func (t *Table) Confirm(c scoring.Category, score int) {
	i := t.index(c)
	if t.records[i].filled {
		panic(fmt.Sprintf("scoretable: %v is already filled", c))
	}
	if score < 0 {
		panic(fmt.Sprintf("scoretable: negative score %d for %v", score, c))
	}
	t.records[i] = record{score: score, filled: true}
}

// FilledCount returns the number of filled boxes.
func (t *Table) FilledCount() int {
	n := 0
	for _, r := range t.records {
		if r.filled {
			n++
		}
	}
	return n
}

// AllFilled reports whether every box is filled.
func (t *Table) AllFilled() bool {
	return t.FilledCount() == scoring.NumCategories
}

// UpperSubtotal returns the sum of the filled upper-section boxes.
func (t *Table) UpperSubtotal() int {
	return t.upperSubtotal(noOverride)
}

// Bonus returns the upper-section bonus and whether it is decided.
// It yields (BonusScore, true) once the subtotal reaches the threshold,
// (0, true) once even perfect remaining upper scores cannot reach it,
// and (0, false) while the outcome is still open.
func (t *Table) Bonus() (int, bool) {
	return t.bonus(noOverride)
}

// Total returns the table's grand total: every filled box plus the
// bonus, with an undecided bonus counting as zero.
func (t *Table) Total() int {
	return t.total(noOverride)
}

// UpperSubtotalIf returns UpperSubtotal as though c were filled with
// score. The table is not mutated; if c is already filled the
// hypothetical is ignored.
func (t *Table) UpperSubtotalIf(c scoring.Category, score int) int {
	return t.upperSubtotal(override{category: c, score: score, active: true})
}

// BonusIf returns Bonus as though c were filled with score.
func (t *Table) BonusIf(c scoring.Category, score int) (int, bool) {
	return t.bonus(override{category: c, score: score, active: true})
}

// TotalIf returns Total as though c were filled with score.
func (t *Table) TotalIf(c scoring.Category, score int) int {
	return t.total(override{category: c, score: score, active: true})
}

// override is a single hypothetical record layered over the table, so
// projections stay closed-form instead of copying the whole table.
type override struct {
	category scoring.Category
	score    int
	active   bool
}

var noOverride = override{}

// lookup resolves a box through the override layer.
func (t *Table) lookup(c scoring.Category, over override) (int, bool) {
	r := t.records[t.index(c)]
	if r.filled {
		return r.score, true
	}
	if over.active && over.category == c {
		return over.score, true
	}
	return 0, false
}

func (t *Table) upperSubtotal(over override) int {
	subtotal := 0
	for _, c := range scoring.Categories() {
		if !c.Upper() {
			continue
		}
		if score, ok := t.lookup(c, over); ok {
			subtotal += score
		}
	}
	return subtotal
}

func (t *Table) bonus(over override) (int, bool) {
	current := 0
	max := 0
	for _, c := range scoring.Categories() {
		if !c.Upper() {
			continue
		}
		if score, ok := t.lookup(c, over); ok {
			current += score
			max += score
		} else {
			// An open box can still contribute five of its face.
			max += c.Face() * dice.NumDice
		}
	}

	switch {
	case current >= BonusThreshold:
		return BonusScore, true
	case max < BonusThreshold:
		return 0, true
	default:
		return 0, false
	}
}

func (t *Table) total(over override) int {
	total := 0
	for _, c := range scoring.Categories() {
		if score, ok := t.lookup(c, over); ok {
			total += score
		}
	}
	bonus, _ := t.bonus(over)
	return total + bonus
}

// index validates c and converts it to a record slot.
func (t *Table) index(c scoring.Category) int {
	if !c.Valid() {
		panic(fmt.Sprintf("scoretable: unknown category %d", c))
	}
	return int(c)
}
