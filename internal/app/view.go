package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/louisbranch/yahtzee/internal/core/scoring"
	"github.com/louisbranch/yahtzee/internal/game/play"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	heldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

const scoreCellWidth = 6

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case screenStartMenu:
		return m.startMenuView()
	case screenPlayerCount:
		return m.playerCountView()
	case screenPlay:
		return m.playView()
	case screenResult:
		return m.resultView()
	}
	return ""
}

func (m Model) startMenuView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("YAHTZEE"))
	b.WriteString("\n\n")
	for i, entry := range []string{"Play", "Exit"} {
		b.WriteString(menuLine(entry, i == m.menuSel))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("arrows/wasd move · enter selects · q quits"))
	return b.String()
}

func (m Model) playerCountView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("How many players?"))
	b.WriteString("\n\n")
	for n := 1; n <= 4; n++ {
		label := fmt.Sprintf("%d Players", n)
		if n == 1 {
			label = "1 Player"
		}
		b.WriteString(menuLine(label, m.countSel == n-1))
	}
	b.WriteString(menuLine("Back", m.countSel == 4))
	return b.String()
}

func menuLine(label string, selected bool) string {
	if selected {
		return cursorStyle.Render("> "+label) + "\n"
	}
	return "  " + label + "\n"
}

func (m Model) playView() string {
	p := m.game.CurrentPlay()
	if p == nil {
		return ""
	}

	var b strings.Builder
	phase := p.Phase()
	b.WriteString(titleStyle.Render(fmt.Sprintf("Player %d", p.PlayerID()+1)))
	switch phase.Kind {
	case play.PhaseRoll, play.PhaseSelectOrReroll:
		b.WriteString(faintStyle.Render(fmt.Sprintf("  roll %d/%d", phase.RollCount, play.MaxRollCount)))
	case play.PhaseSelect:
		b.WriteString(faintStyle.Render("  final roll"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.rollButton(p))
	b.WriteString("\n\n")
	b.WriteString(m.diceRows(p))
	b.WriteString("\n")
	b.WriteString(m.scoreBoard(p))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.phaseHint(phase)))
	return b.String()
}

func (m Model) rollButton(p *play.Play) string {
	label := "[ Roll ]"
	if m.cur.zone == zoneRoll {
		return cursorStyle.Render(label)
	}
	if p.Phase().Kind == play.PhaseSelectOrReroll && p.AllHeld() {
		return faintStyle.Render(label)
	}
	return label
}

// diceRows renders the hand on two lines: dice being kept on top, dice
// marked for the next roll below. A die occupies the same column in
// either line, so toggling a hold visually drops it down or lifts it up.
func (m Model) diceRows(p *play.Play) string {
	hand := p.Dice()

	renderSlot := func(pos int, wantHeld bool) string {
		slot := "   "
		if pos < len(hand) && hand[pos].Held() == wantHeld {
			slot = fmt.Sprintf("[%d]", hand[pos].Pips())
			if wantHeld {
				slot = heldStyle.Render(slot)
			}
		}
		zone := zoneDiscard
		if wantHeld {
			zone = zoneHand
		}
		if m.cur.zone == zone && m.cur.die == pos {
			return cursorStyle.Render(slot)
		}
		return slot
	}

	var keep, roll []string
	for pos := 0; pos <= lastDie; pos++ {
		keep = append(keep, renderSlot(pos, true))
		roll = append(roll, renderSlot(pos, false))
	}

	return fmt.Sprintf("keep  %s\nroll  %s\n",
		strings.Join(keep, " "), strings.Join(roll, " "))
}

// scoreBoard renders every player's table side by side: thirteen box
// rows plus bonus and total. For the acting player, open boxes preview
// the score the current hand would earn, and the bonus and total rows
// preview the effect of committing the box under the cursor.
func (m Model) scoreBoard(p *play.Play) string {
	selecting := false
	switch p.Phase().Kind {
	case play.PhaseSelectOrReroll, play.PhaseSelect:
		selecting = true
	}
	pips := p.Pips()
	active := m.game.ActivePlayerID()

	var b strings.Builder

	b.WriteString(headerStyle.Render(pad("", 16)))
	for player := 0; player < m.game.NumPlayers(); player++ {
		b.WriteString(headerStyle.Render(pad(fmt.Sprintf("P%d", player+1), scoreCellWidth)))
	}
	b.WriteString("\n")

	for _, c := range scoring.Categories() {
		name := pad(c.String(), 16)
		onCursor := m.cur.zone == zoneTable && m.cur.box == c
		if onCursor {
			b.WriteString(cursorStyle.Render(name))
		} else {
			b.WriteString(name)
		}

		for player := 0; player < m.game.NumPlayers(); player++ {
			table := m.game.Table(player)
			switch score, filled := table.Score(c); {
			case filled:
				b.WriteString(pad(fmt.Sprintf("%d", score), scoreCellWidth))
			case player == active && selecting:
				preview := pad(fmt.Sprintf("%d", scoring.Score(c, pips)), scoreCellWidth)
				if onCursor {
					b.WriteString(cursorStyle.Render(preview))
				} else {
					b.WriteString(faintStyle.Render(preview))
				}
			default:
				b.WriteString(faintStyle.Render(pad("-", scoreCellWidth)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(pad("Bonus", 16))
	for player := 0; player < m.game.NumPlayers(); player++ {
		bonus, decided := m.game.Table(player).Bonus()
		if player == active && selecting && m.cursorOnOpenBox() {
			bonus, decided = m.game.Table(player).BonusIf(m.cur.box, scoring.Score(m.cur.box, pips))
		}
		cell := "?"
		if decided {
			cell = fmt.Sprintf("%d", bonus)
		}
		b.WriteString(faintStyle.Render(pad(cell, scoreCellWidth)))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render(pad("Total", 16)))
	for player := 0; player < m.game.NumPlayers(); player++ {
		total := m.game.Table(player).Total()
		if player == active && selecting && m.cursorOnOpenBox() {
			total = m.game.Table(player).TotalIf(m.cur.box, scoring.Score(m.cur.box, pips))
		}
		b.WriteString(headerStyle.Render(pad(fmt.Sprintf("%d", total), scoreCellWidth)))
	}
	b.WriteString("\n")

	return b.String()
}

// cursorOnOpenBox reports whether the table cursor sits on a box the
// acting player has not filled yet.
func (m Model) cursorOnOpenBox() bool {
	if m.cur.zone != zoneTable {
		return false
	}
	return !m.game.Table(m.game.ActivePlayerID()).Has(m.cur.box)
}

func (m Model) phaseHint(phase play.Phase) string {
	switch phase.Kind {
	case play.PhaseInit:
		return "enter rolls the dice"
	case play.PhaseRoll:
		return "enter stops the roll"
	case play.PhaseSelectOrReroll:
		return "select dice to keep or roll, pick a box to score"
	case play.PhaseSelect:
		return "pick a box to score"
	default:
		return ""
	}
}

func (m Model) resultView() string {
	totals := m.game.Totals()
	best := 0
	for _, t := range totals {
		if t > best {
			best = t
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Final scores"))
	b.WriteString("\n\n")
	for player, total := range totals {
		line := fmt.Sprintf("Player %d  %4d", player+1, total)
		if total == best {
			line += "  *"
			b.WriteString(headerStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter or q exits"))
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
