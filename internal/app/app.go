// Package app implements the terminal front end of the game as a
// Bubble Tea program. It translates key events into the engine's
// abstract actions and renders the tables, dice, and menus; all game
// rules live below it in the engine packages.
package app

import (
	"errors"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/louisbranch/yahtzee/internal/core/dice"
	"github.com/louisbranch/yahtzee/internal/core/scoring"
	"github.com/louisbranch/yahtzee/internal/game/play"
	"github.com/louisbranch/yahtzee/internal/game/session"
)

// tickRate paces the dice-tumbling animation while a roll is live.
const tickRate = 80 * time.Millisecond

// lastDie is the highest die position on the dice rows.
const lastDie = dice.NumDice - 1

// action is the abstract input set; the key mapping lives in keys.go.
type action int

const (
	actionNone action = iota
	actionSelect
	actionUp
	actionDown
	actionLeft
	actionRight
	actionExit
)

// screen is the top-level application state.
type screen int

const (
	screenStartMenu screen = iota
	screenPlayerCount
	screenPlay
	screenResult
)

// Start menu entries.
const (
	menuPlay = iota
	menuExit
	menuEntries
)

// cursorZone locates the play-screen cursor: the roll button, the two
// dice rows, or the score table.
type cursorZone int

const (
	zoneRoll cursorZone = iota
	zoneHand
	zoneDiscard
	zoneTable
)

// cursor is the play-screen cursor position. die is meaningful in the
// dice rows, box in the table.
type cursor struct {
	zone cursorZone
	die  int
	box  scoring.Category
}

// tickMsg drives the dice animation.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model for the whole game.
type Model struct {
	rng *rand.Rand

	screen   screen
	menuSel  int
	countSel int // 0..3 select 1..4 players, 4 is "Back"

	game *session.Game
	cur  cursor
}

// New returns a model at the start menu. All dice in the session are
// drawn from rng.
func New(rng *rand.Rand) Model {
	return Model{rng: rng, screen: screenStartMenu}
}

// NewWithPlayers skips the menus and starts a game directly; used when
// the player count comes from the environment or flags.
func NewWithPlayers(rng *rand.Rand, players int) (Model, error) {
	m := New(rng)
	if err := m.startGame(players); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Game exposes the running session for tests.
func (m Model) Game() *session.Game { return m.game }

func (m *Model) startGame(players int) error {
	g, err := session.New(players, m.rng)
	if err != nil {
		return err
	}
	m.game = g
	m.screen = screenPlay
	m.cur = cursor{zone: zoneRoll}
	return nil
}

// Init implements tea.Model. Nothing animates until the first roll.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.updateTick()
	case tea.KeyMsg:
		return m.updateAction(keyAction(msg))
	}
	return m, nil
}

// updateTick tumbles the unheld dice while a roll is live and keeps
// the animation running.
func (m Model) updateTick() (tea.Model, tea.Cmd) {
	if m.screen != screenPlay || m.game == nil {
		return m, nil
	}
	p := m.game.CurrentPlay()
	if p == nil || p.Phase().Kind != play.PhaseRoll {
		return m, nil
	}
	if err := p.Shuffle(); err != nil {
		// The phase moved on between ticks; stop animating.
		return m, nil
	}
	return m, tick()
}

func (m Model) updateAction(act action) (tea.Model, tea.Cmd) {
	if act == actionExit {
		return m, tea.Quit
	}

	switch m.screen {
	case screenStartMenu:
		return m.updateStartMenu(act)
	case screenPlayerCount:
		return m.updatePlayerCount(act)
	case screenPlay:
		return m.updatePlay(act)
	case screenResult:
		return m.updateResult(act)
	}
	return m, nil
}

func (m Model) updateStartMenu(act action) (tea.Model, tea.Cmd) {
	switch act {
	case actionUp:
		if m.menuSel > 0 {
			m.menuSel--
		}
	case actionDown:
		if m.menuSel < menuEntries-1 {
			m.menuSel++
		}
	case actionSelect:
		switch m.menuSel {
		case menuPlay:
			m.screen = screenPlayerCount
			m.countSel = 0
		case menuExit:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updatePlayerCount(act action) (tea.Model, tea.Cmd) {
	const backEntry = session.MaxPlayers // after the 1..4 choices

	switch act {
	case actionUp:
		if m.countSel > 0 {
			m.countSel--
		}
	case actionDown:
		if m.countSel < backEntry {
			m.countSel++
		}
	case actionSelect:
		if m.countSel == backEntry {
			m.screen = screenStartMenu
			m.menuSel = menuPlay
			return m, nil
		}
		if err := m.startGame(m.countSel + 1); err != nil {
			// The selector only offers valid counts.
			panic(err)
		}
	}
	return m, nil
}

func (m Model) updatePlay(act action) (tea.Model, tea.Cmd) {
	p := m.game.CurrentPlay()
	if p == nil {
		// The game ended but the screen has not flipped yet.
		m.screen = screenResult
		return m, nil
	}

	switch p.Phase().Kind {
	case play.PhaseInit:
		return m.updatePhaseInit(act, p)
	case play.PhaseRoll:
		return m.updatePhaseRoll(act, p)
	case play.PhaseSelectOrReroll:
		return m.updatePhaseSelectOrReroll(act, p)
	case play.PhaseSelect:
		return m.updatePhaseSelect(act)
	}
	return m, nil
}

func (m Model) updatePhaseInit(act action, p *play.Play) (tea.Model, tea.Cmd) {
	if act != actionSelect {
		return m, nil
	}
	if err := p.Progress(); err != nil {
		panic(err) // Init always progresses to the first roll
	}
	return m, tick()
}

func (m Model) updatePhaseRoll(act action, p *play.Play) (tea.Model, tea.Cmd) {
	if act != actionSelect {
		return m, nil
	}

	// Settle the roll: the engine freezes every die.
	if err := p.Progress(); err != nil {
		panic(err)
	}
	switch p.Phase().Kind {
	case play.PhaseSelectOrReroll:
		m.cur = cursor{zone: zoneHand}
	case play.PhaseSelect:
		m.moveCursorToTable()
	default:
		panic("unexpected phase after settling a roll")
	}
	return m, nil
}

func (m Model) updatePhaseSelectOrReroll(act action, p *play.Play) (tea.Model, tea.Cmd) {
	switch act {
	case actionSelect:
		switch m.cur.zone {
		case zoneRoll:
			err := p.Progress()
			if errors.Is(err, play.ErrNoDiceToReroll) {
				// Everything is held; rolling again is a no-op.
				return m, nil
			}
			if err != nil {
				panic(err)
			}
			return m, tick()
		case zoneHand, zoneDiscard:
			held, err := p.Held(m.cur.die)
			if err != nil {
				panic(err)
			}
			if err := p.Hold(m.cur.die, !held); err != nil {
				panic(err)
			}
		case zoneTable:
			return m.commitScore()
		}

	case actionLeft:
		switch m.cur.zone {
		case zoneHand, zoneDiscard:
			if m.cur.die > 0 {
				m.cur.die--
			}
		case zoneTable:
			m.cur = cursor{zone: zoneHand, die: lastDie}
		}

	case actionRight:
		switch m.cur.zone {
		case zoneRoll:
			m.moveCursorToTable()
		case zoneHand, zoneDiscard:
			if m.cur.die < lastDie {
				m.cur.die++
			} else {
				m.moveCursorToTable()
			}
		}

	case actionUp:
		switch m.cur.zone {
		case zoneHand:
			// The roll button is pointless while everything is held.
			if !p.AllHeld() {
				m.cur = cursor{zone: zoneRoll}
			}
		case zoneDiscard:
			m.cur.zone = zoneHand
		case zoneTable:
			m.moveTableCursor(-1)
		}

	case actionDown:
		switch m.cur.zone {
		case zoneRoll:
			m.cur = cursor{zone: zoneHand}
		case zoneHand:
			m.cur.zone = zoneDiscard
		case zoneTable:
			m.moveTableCursor(1)
		}
	}
	return m, nil
}

func (m Model) updatePhaseSelect(act action) (tea.Model, tea.Cmd) {
	switch act {
	case actionSelect:
		if m.cur.zone == zoneTable {
			return m.commitScore()
		}
	case actionUp:
		if m.cur.zone == zoneTable {
			m.moveTableCursor(-1)
		}
	case actionDown:
		if m.cur.zone == zoneTable {
			m.moveTableCursor(1)
		}
	}
	return m, nil
}

func (m Model) updateResult(act action) (tea.Model, tea.Cmd) {
	if act == actionSelect {
		return m, tea.Quit
	}
	return m, nil
}

// commitScore settles the turn into the cursor's box and either hands
// the dice to the next player or ends the game.
func (m Model) commitScore() (tea.Model, tea.Cmd) {
	_, err := m.game.CommitScore(m.cur.box)
	if errors.Is(err, session.ErrCategoryFilled) {
		// Selecting a filled row is a normal no-op.
		return m, nil
	}
	if err != nil {
		panic(err)
	}

	if m.game.Over() {
		m.screen = screenResult
		return m, nil
	}
	m.cur = cursor{zone: zoneRoll}
	return m, nil
}

// moveCursorToTable places the cursor on the first open box of the
// acting player's table.
func (m *Model) moveCursorToTable() {
	table := m.game.Table(m.game.ActivePlayerID())
	for _, c := range scoring.Categories() {
		if !table.Has(c) {
			m.cur = cursor{zone: zoneTable, box: c}
			return
		}
	}
}

// moveTableCursor steps the table cursor by delta rows, wrapping and
// skipping filled boxes.
func (m *Model) moveTableCursor(delta int) {
	table := m.game.Table(m.game.ActivePlayerID())
	start := m.cur.box
	box := start
	for {
		box = scoring.Category((int(box) + delta + scoring.NumCategories) % scoring.NumCategories)
		if !table.Has(box) || box == start {
			m.cur = cursor{zone: zoneTable, box: box}
			return
		}
	}
}
