package app

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/louisbranch/yahtzee/internal/core/scoring"
	"github.com/louisbranch/yahtzee/internal/game/play"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(rand.New(rand.NewSource(3)))
}

// press feeds one key into the model and returns the updated model.
func press(t *testing.T, m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(key)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", updated)
	}
	return next, cmd
}

func TestMenuFlow_StartsGame(t *testing.T) {
	m := newTestModel(t)
	if m.screen != screenStartMenu {
		t.Fatalf("screen = %d, want start menu", m.screen)
	}

	// Play -> player count -> 2 players.
	m, _ = press(t, m, keyEnter)
	if m.screen != screenPlayerCount {
		t.Fatalf("screen = %d, want player count", m.screen)
	}
	m, _ = press(t, m, keyDown) // 2 players
	m, _ = press(t, m, keyEnter)

	if m.screen != screenPlay {
		t.Fatalf("screen = %d, want play", m.screen)
	}
	if m.Game() == nil || m.Game().NumPlayers() != 2 {
		t.Fatal("game not started with 2 players")
	}
	if m.cur.zone != zoneRoll {
		t.Fatalf("cursor zone = %d, want roll button", m.cur.zone)
	}
}

func TestMenuFlow_BackReturnsToStartMenu(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, keyEnter)
	for i := 0; i < 4; i++ {
		m, _ = press(t, m, keyDown)
	}
	m, _ = press(t, m, keyEnter)
	if m.screen != screenStartMenu {
		t.Fatalf("screen = %d, want start menu", m.screen)
	}
}

func TestMenuFlow_ExitQuits(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, keyDown) // Exit entry
	_, cmd := press(t, m, keyEnter)
	assertQuit(t, cmd)
}

func TestQuitKey_AnyScreen(t *testing.T) {
	m := newTestModel(t)
	_, cmd := press(t, m, keyQuit)
	assertQuit(t, cmd)
}

func TestPlayFlow_RollSettleCommit(t *testing.T) {
	m, err := NewWithPlayers(rand.New(rand.NewSource(3)), 1)
	if err != nil {
		t.Fatalf("NewWithPlayers() error = %v", err)
	}

	p := m.Game().CurrentPlay()
	if got := p.Phase().Kind; got != play.PhaseInit {
		t.Fatalf("phase = %v, want Init", got)
	}

	// First roll starts the dice animation.
	m, cmd := press(t, m, keyEnter)
	if got := m.Game().CurrentPlay().Phase().Kind; got != play.PhaseRoll {
		t.Fatalf("phase = %v, want Roll", got)
	}
	if cmd == nil {
		t.Fatal("no animation tick scheduled for the roll")
	}

	// A tick tumbles the dice and keeps the animation alive.
	updated, cmd := m.Update(tickMsg{})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("animation stopped while the roll is live")
	}

	// Settle: every die is frozen and the cursor moves to the hand.
	m, _ = press(t, m, keyEnter)
	p = m.Game().CurrentPlay()
	if got := p.Phase().Kind; got != play.PhaseSelectOrReroll {
		t.Fatalf("phase = %v, want SelectOrReroll", got)
	}
	if !p.AllHeld() {
		t.Fatal("dice not frozen after settling")
	}
	if m.cur.zone != zoneHand || m.cur.die != 0 {
		t.Fatalf("cursor = %+v, want hand position 0", m.cur)
	}

	// Toggling a hold drops the die into the roll row.
	m, _ = press(t, m, keyEnter)
	if held, _ := p.Held(0); held {
		t.Fatal("die 0 still held after toggle")
	}

	// Walk right onto the score table and commit the first open box.
	for i := 0; i < 5; i++ {
		m, _ = press(t, m, keyRight)
	}
	if m.cur.zone != zoneTable || m.cur.box != scoring.Aces {
		t.Fatalf("cursor = %+v, want table row Aces", m.cur)
	}
	m, _ = press(t, m, keyEnter)

	if !m.Game().Table(0).Has(scoring.Aces) {
		t.Fatal("Aces not committed")
	}
	// Single player: the next turn starts immediately.
	if got := m.Game().CurrentPlay().Phase().Kind; got != play.PhaseInit {
		t.Fatalf("phase after commit = %v, want Init", got)
	}
	if m.cur.zone != zoneRoll {
		t.Fatalf("cursor zone = %d, want roll button", m.cur.zone)
	}
}

func TestTableCursor_SkipsFilledBoxes(t *testing.T) {
	m, err := NewWithPlayers(rand.New(rand.NewSource(3)), 1)
	if err != nil {
		t.Fatalf("NewWithPlayers() error = %v", err)
	}

	// First turn: roll, settle, commit Aces.
	m, _ = press(t, m, keyEnter)
	m, _ = press(t, m, keyEnter)
	m, _ = press(t, m, keyRight) // onto the table from the roll button? cursor is on hand
	for m.cur.zone != zoneTable {
		m, _ = press(t, m, keyRight)
	}
	m, _ = press(t, m, keyEnter)

	// Second turn: the first open box is now Twos.
	m, _ = press(t, m, keyEnter) // roll
	m, _ = press(t, m, keyEnter) // settle
	for m.cur.zone != zoneTable {
		m, _ = press(t, m, keyRight)
	}
	if m.cur.box != scoring.Twos {
		t.Fatalf("first open box = %v, want Twos", m.cur.box)
	}

	// Moving up from Twos wraps past the filled Aces to Chance.
	m, _ = press(t, m, keyUp)
	if m.cur.box != scoring.Chance {
		t.Fatalf("cursor after up = %v, want Chance", m.cur.box)
	}
	m, _ = press(t, m, keyDown)
	if m.cur.box != scoring.Twos {
		t.Fatalf("cursor after down = %v, want Twos", m.cur.box)
	}
}

func TestView_Screens(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "YAHTZEE") {
		t.Fatal("start menu view missing title")
	}

	m, _ = press(t, m, keyEnter)
	if !strings.Contains(m.View(), "players?") {
		t.Fatal("player count view missing prompt")
	}

	m, _ = press(t, m, keyEnter) // 1 player
	view := m.View()
	for _, want := range []string{"Player 1", "Roll", "Chance", "Total"} {
		if !strings.Contains(view, want) {
			t.Fatalf("play view missing %q:\n%s", want, view)
		}
	}
}

func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("cmd = nil, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("cmd is not tea.Quit")
	}
}
