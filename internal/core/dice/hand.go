// Package dice implements the five-die hand the game engine plays with.
package dice

import (
	"errors"
	"math/rand"
)

// NumDice is the size of a full hand.
const NumDice = 5

// NumFaces is the number of faces on each die.
const NumFaces = 6

// ErrTooManyDice indicates an operation would grow a hand past NumDice.
var ErrTooManyDice = errors.New("hand cannot hold more than five dice")

// ErrNoDiceToReroll indicates a reroll was requested while every die is held.
var ErrNoDiceToReroll = errors.New("no dice to reroll")

// ErrPositionOutOfRange indicates a die position outside [0, NumDice).
var ErrPositionOutOfRange = errors.New("die position out of range")

// ErrNoDie indicates a die position with no die behind it.
var ErrNoDie = errors.New("no die in position")

// Die is a single die: a pip value in [1, NumFaces] and a held flag.
// The held flag lives here and nowhere else; callers must not keep a
// parallel copy of it.
type Die struct {
	pips int
	held bool
}

// Pips returns the face value of the die.
func (d Die) Pips() int { return d.pips }

// Held reports whether the die is excluded from the next reroll.
func (d Die) Held() bool { return d.held }

// Hand is an ordered collection of up to NumDice dice.
//
// A Hand is owned by exactly one Play at a time. Randomness is always
// injected as a *rand.Rand so tests can drive rolls deterministically.
type Hand struct {
	dice []Die
}

// NewRandom returns a hand of n dice with independently uniform faces.
// It returns ErrTooManyDice when n exceeds NumDice.
func NewRandom(rng *rand.Rand, n int) (Hand, error) {
	if n > NumDice {
		return Hand{}, ErrTooManyDice
	}

	dice := make([]Die, n)
	for i := range dice {
		dice[i] = Die{pips: rollDie(rng)}
	}
	return Hand{dice: dice}, nil
}

// Len returns the number of dice currently in the hand.
func (h *Hand) Len() int { return len(h.dice) }

// Dice returns a copy of the dice in hand order.
func (h *Hand) Dice() []Die {
	out := make([]Die, len(h.dice))
	copy(out, h.dice)
	return out
}

// Pips returns the face values in hand order.
func (h *Hand) Pips() []int {
	pips := make([]int, len(h.dice))
	for i, d := range h.dice {
		pips[i] = d.pips
	}
	return pips
}

// Add appends every die of other to the hand. It returns ErrTooManyDice
// when the combined size would exceed NumDice.
func (h *Hand) Add(other Hand) error {
	if len(h.dice)+len(other.dice) > NumDice {
		return ErrTooManyDice
	}

	h.dice = append(h.dice, other.dice...)
	return nil
}

// Remove drops every die whose position is marked in marks, preserving
// the relative order of the remainder. Marks beyond the current hand
// size are ignored; the number of dice actually removed is returned so
// callers can notice requests that matched nothing.
func (h *Hand) Remove(marks []bool) int {
	kept := h.dice[:0]
	removed := 0
	for i, d := range h.dice {
		if i < len(marks) && marks[i] {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	h.dice = kept
	return removed
}

// Held reports whether the die at pos is held. Positions inside
// [0, NumDice) without a die behind them report false.
func (h *Hand) Held(pos int) (bool, error) {
	if pos < 0 || pos >= NumDice {
		return false, ErrPositionOutOfRange
	}
	if pos >= len(h.dice) {
		return false, nil
	}
	return h.dice[pos].held, nil
}

// AllHeld reports whether the hand is full and every die is held.
func (h *Hand) AllHeld() bool {
	if len(h.dice) != NumDice {
		return false
	}
	for _, d := range h.dice {
		if !d.held {
			return false
		}
	}
	return true
}

// Hold sets the held flag of the die at pos.
func (h *Hand) Hold(pos int, hold bool) error {
	if pos < 0 || pos >= NumDice {
		return ErrPositionOutOfRange
	}
	if pos >= len(h.dice) {
		return ErrNoDie
	}

	h.dice[pos].held = hold
	return nil
}

// HoldAll marks every die in the hand as held.
func (h *Hand) HoldAll() {
	for i := range h.dice {
		h.dice[i].held = true
	}
}

// Reroll removes every unheld die and refills the hand to NumDice with
// fresh random dice. Held dice keep their relative order at the front of
// the hand; the new dice come in unheld. It returns ErrNoDiceToReroll
// when all five dice are held.
func (h *Hand) Reroll(rng *rand.Rand) error {
	if h.AllHeld() {
		return ErrNoDiceToReroll
	}

	h.removeUnheld()
	h.fill(rng)
	return nil
}

// removeUnheld drops every die that is not held, preserving order.
func (h *Hand) removeUnheld() {
	kept := h.dice[:0]
	for _, d := range h.dice {
		if d.held {
			kept = append(kept, d)
		}
	}
	h.dice = kept
}

// fill appends fresh random dice until the hand holds NumDice.
func (h *Hand) fill(rng *rand.Rand) {
	for len(h.dice) < NumDice {
		h.dice = append(h.dice, Die{pips: rollDie(rng)})
	}
}

// rollDie rolls a single six-sided die.
func rollDie(rng *rand.Rand) int {
	return rng.Intn(NumFaces) + 1
}
