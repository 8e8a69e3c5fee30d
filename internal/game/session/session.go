// Package session orchestrates a whole game: one score table per
// player, the live turn, round-robin rotation, and completion.
package session

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/louisbranch/yahtzee/internal/core/scoring"
	"github.com/louisbranch/yahtzee/internal/game/play"
	"github.com/louisbranch/yahtzee/internal/game/scoretable"
)

// Player count limits for one game.
const (
	MinPlayers = 1
	MaxPlayers = 4
)

// ErrInvalidPlayerCount indicates a player count outside [1, 4].
var ErrInvalidPlayerCount = errors.New("player count must be between 1 and 4")

// ErrGameOver indicates an action on a finished game.
var ErrGameOver = errors.New("game is over")

// ErrNotSelecting indicates a commit attempt while the turn is not in
// a selectable phase.
var ErrNotSelecting = errors.New("turn is not in a selecting phase")

// ErrCategoryFilled indicates a commit into an already filled box. The
// UI lets the cursor rest on filled rows, so this is an expected
// condition there, not a fault.
var ErrCategoryFilled = errors.New("category is already filled")

// Game owns all state for one game session. Exactly one Play is live
// at a time; the stored active player id is the source of truth for
// whose turn it is, and ResumePlayerID reconstructs it from table
// progress only as a resume fallback.
type Game struct {
	tables []*scoretable.Table
	active int
	play   *play.Play
	rng    *rand.Rand
}

// New creates a game for numPlayers players, with the first player's
// turn started in the Init phase. Randomness for every roll in the
// game is drawn from rng.
func New(numPlayers int, rng *rand.Rand) (*Game, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, numPlayers)
	}

	tables := make([]*scoretable.Table, numPlayers)
	for i := range tables {
		tables[i] = scoretable.New()
	}

	g := &Game{tables: tables, rng: rng}
	g.play = play.New(g.active, rng)
	return g, nil
}

// NumPlayers returns the number of players in the game.
func (g *Game) NumPlayers() int { return len(g.tables) }

// Table returns player's score table. An unknown player id is a wiring
// bug and panics.
func (g *Game) Table(player int) *scoretable.Table {
	if player < 0 || player >= len(g.tables) {
		panic(fmt.Sprintf("session: unknown player id %d (players: %d)", player, len(g.tables)))
	}
	return g.tables[player]
}

// ActivePlayerID returns the id of the player whose turn it is.
func (g *Game) ActivePlayerID() int { return g.active }

// CurrentPlay returns the live turn, or nil once the game is over.
func (g *Game) CurrentPlay() *play.Play { return g.play }

// Over reports whether every player's table is completely filled.
func (g *Game) Over() bool {
	for _, t := range g.tables {
		if !t.AllFilled() {
			return false
		}
	}
	return true
}

// ResumePlayerID derives whose turn it is from relative table progress:
// the first player with fewer filled boxes than the previous player,
// wrapping to player 0 when everyone is level. It assumes strict
// round-robin lockstep and exists to recover the turn after the live
// Play is lost; ActivePlayerID is the source of truth otherwise.
func (g *Game) ResumePlayerID() int {
	for i := 1; i < len(g.tables); i++ {
		if g.tables[i-1].FilledCount() > g.tables[i].FilledCount() {
			return i
		}
	}
	return 0
}

// Resume rebuilds the live turn after the previous Play was discarded
// mid-round, using ResumePlayerID to pick the player.
func (g *Game) Resume() error {
	if g.Over() {
		return ErrGameOver
	}
	g.active = g.ResumePlayerID()
	g.play = play.New(g.active, g.rng)
	return nil
}

// CommitScore settles the live turn into category c: it scores the
// current hand, records the result in the acting player's table,
// discards the Play, and either starts the next player's turn or ends
// the game. It returns the committed score.
//
// Committing is legal only from SelectOrReroll or Select, and only
// into an unfilled box; both failures leave the game untouched.
func (g *Game) CommitScore(c scoring.Category) (int, error) {
	if g.play == nil {
		return 0, ErrGameOver
	}
	switch g.play.Phase().Kind {
	case play.PhaseSelectOrReroll, play.PhaseSelect:
	default:
		return 0, fmt.Errorf("%w: %v", ErrNotSelecting, g.play.Phase())
	}

	table := g.Table(g.play.PlayerID())
	if table.Has(c) {
		return 0, fmt.Errorf("%w: %v", ErrCategoryFilled, c)
	}

	score := scoring.Score(c, g.play.Pips())
	table.Confirm(c, score)
	g.play = nil

	next := g.AdvanceTurn(g.active)
	if g.Table(next).AllFilled() {
		// Lockstep rotation: the next table filling up means the round
		// is complete for everyone.
		return score, nil
	}

	g.active = next
	g.play = play.New(next, g.rng)
	return score, nil
}

// AdvanceTurn returns the player after current in rotation order.
func (g *Game) AdvanceTurn(current int) int {
	return (current + 1) % len(g.tables)
}

// Totals returns every player's grand total, indexed by player id.
func (g *Game) Totals() []int {
	totals := make([]int, len(g.tables))
	for i, t := range g.tables {
		totals[i] = t.Total()
	}
	return totals
}
