// Package play drives a single player's turn: up to three rolls,
// holding dice in between, ending in category selection.
package play

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/louisbranch/yahtzee/internal/core/dice"
)

// Roll counts are 1-based; the third roll is the last.
const (
	InitRollCount = 1
	MaxRollCount  = 3
)

// ErrNoDiceToReroll is the one expected failure of Progress: the player
// asked for another roll while holding every die. Callers branch on it
// as part of normal play.
var ErrNoDiceToReroll = dice.ErrNoDiceToReroll

// ErrPlayFinished indicates a progress attempt past the terminal phase.
var ErrPlayFinished = errors.New("play has already finished")

// ErrUnexpectedRollCount indicates a roll count outside [1, 3]; the
// phase machine never produces one, so seeing it means corruption.
var ErrUnexpectedRollCount = errors.New("unexpected roll count")

// ErrHoldNotAllowed indicates a hold toggle outside SelectOrReroll.
var ErrHoldNotAllowed = errors.New("dice can only be held while selecting or rerolling")

// ErrShuffleNotAllowed indicates a dice shuffle outside the Roll phase.
var ErrShuffleNotAllowed = errors.New("dice can only be shuffled while rolling")

// PhaseKind enumerates the stages of one turn.
type PhaseKind int

const (
	// PhaseInit is the unique start state; no dice exist yet.
	PhaseInit PhaseKind = iota
	// PhaseRoll is a live roll: unheld dice are still tumbling.
	PhaseRoll
	// PhaseSelectOrReroll lets the player hold dice, roll again, or
	// commit a category.
	PhaseSelectOrReroll
	// PhaseSelect follows the third roll: committing a category is the
	// only way out.
	PhaseSelect
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseInit:
		return "Init"
	case PhaseRoll:
		return "Roll"
	case PhaseSelectOrReroll:
		return "SelectOrReroll"
	case PhaseSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// Phase is a tagged phase value. RollCount is meaningful for PhaseRoll
// and PhaseSelectOrReroll and is always in [1, 3].
type Phase struct {
	Kind      PhaseKind
	RollCount int
}

func (p Phase) String() string {
	switch p.Kind {
	case PhaseRoll, PhaseSelectOrReroll:
		return fmt.Sprintf("%s(%d)", p.Kind, p.RollCount)
	default:
		return p.Kind.String()
	}
}

// Play is one player's live turn. It owns the hand exclusively and is
// discarded the moment a category is committed; roll counts never reset
// within a Play.
type Play struct {
	playerID int
	hand     dice.Hand
	phase    Phase
	rng      *rand.Rand
}

// New starts a turn for playerID in the Init phase, drawing randomness
// from rng.
func New(playerID int, rng *rand.Rand) *Play {
	return &Play{
		playerID: playerID,
		phase:    Phase{Kind: PhaseInit},
		rng:      rng,
	}
}

// PlayerID returns the id of the player whose turn this is.
func (p *Play) PlayerID() int { return p.playerID }

// Phase returns the current phase.
func (p *Play) Phase() Phase { return p.phase }

// Dice returns a copy of the current hand's dice in order.
func (p *Play) Dice() []dice.Die { return p.hand.Dice() }

// Pips returns the current hand's face values in order.
func (p *Play) Pips() []int { return p.hand.Pips() }

// Held reports whether the die at pos is held.
func (p *Play) Held(pos int) (bool, error) { return p.hand.Held(pos) }

// AllHeld reports whether every die in a full hand is held.
func (p *Play) AllHeld() bool { return p.hand.AllHeld() }

// Hold toggles the held state of one die. It is legal only in
// SelectOrReroll; anywhere else it reports ErrHoldNotAllowed so wiring
// bugs surface instead of silently flipping flags.
func (p *Play) Hold(pos int, hold bool) error {
	if p.phase.Kind != PhaseSelectOrReroll {
		return ErrHoldNotAllowed
	}
	return p.hand.Hold(pos, hold)
}

// Shuffle rerolls the unheld dice in place without advancing the phase.
// It is legal only during PhaseRoll, where the UI uses it to tumble the
// dice until the player settles the roll.
func (p *Play) Shuffle() error {
	if p.phase.Kind != PhaseRoll {
		return ErrShuffleNotAllowed
	}
	return p.hand.Reroll(p.rng)
}

// Progress advances the turn by one phase transition:
//
//	Init                 -> Roll(1)              draw a fresh hand
//	Roll(n), n < 3       -> SelectOrReroll(n)    hold every die
//	Roll(3)              -> Select               hold every die
//	SelectOrReroll(n<3)  -> Roll(n+1)            reroll the unheld dice
//
// Progressing from SelectOrReroll with every die held fails with
// ErrNoDiceToReroll, which is an ordinary game condition. Progressing
// from Select fails with ErrPlayFinished: committing a score, handled
// by the session, is the only exit from a finished turn.
func (p *Play) Progress() error {
	next, err := p.nextPhase()
	if err != nil {
		return err
	}

	switch {
	case next.Kind == PhaseRoll && next.RollCount == InitRollCount:
		// The first roll is unconditional and ignores held flags.
		hand, err := dice.NewRandom(p.rng, dice.NumDice)
		if err != nil {
			panic(err) // unreachable: NumDice is always a valid size
		}
		p.hand = hand
	case next.Kind == PhaseRoll:
		if err := p.hand.Reroll(p.rng); err != nil {
			return err
		}
	default:
		// Freeze the hand for inspection and selection.
		p.hand.HoldAll()
	}

	p.phase = next
	return nil
}

// nextPhase decides the transition without side effects.
func (p *Play) nextPhase() (Phase, error) {
	switch p.phase.Kind {
	case PhaseInit:
		return Phase{Kind: PhaseRoll, RollCount: InitRollCount}, nil

	case PhaseRoll:
		n := p.phase.RollCount
		switch {
		case n >= InitRollCount && n < MaxRollCount:
			return Phase{Kind: PhaseSelectOrReroll, RollCount: n}, nil
		case n == MaxRollCount:
			return Phase{Kind: PhaseSelect}, nil
		default:
			return Phase{}, ErrUnexpectedRollCount
		}

	case PhaseSelectOrReroll:
		n := p.phase.RollCount
		if n < InitRollCount || n >= MaxRollCount {
			return Phase{}, ErrUnexpectedRollCount
		}
		if p.hand.AllHeld() {
			return Phase{}, ErrNoDiceToReroll
		}
		return Phase{Kind: PhaseRoll, RollCount: n + 1}, nil

	case PhaseSelect:
		return Phase{}, ErrPlayFinished

	default:
		return Phase{}, fmt.Errorf("play: unknown phase kind %d", p.phase.Kind)
	}
}
