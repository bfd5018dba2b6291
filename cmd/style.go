package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/scoundrel/domain/game"
)

func render(area *pterm.AreaPrinter, s game.Snapshot) {
	switch s.Phase {
	case game.PhaseMenu:
		area.Update(renderMenu(s))
	case game.PhaseNameEntry:
		area.Update(renderNameEntry(s))
	case game.PhaseLeaderboard:
		area.Update(renderLeaderboard(s))
	case game.PhaseRunning:
		area.Update(renderRun(s))
	case game.PhaseGameOver:
		area.Update(renderGameOver(s))
	}
}

func renderMenu(s game.Snapshot) string {
	items := []string{"New run", "Leaderboard", "Quit"}
	lines := make([]string, len(items))
	for i, item := range items {
		if i == s.MenuSelected {
			lines[i] = pterm.LightCyan("> " + item)
		} else {
			lines[i] = "  " + item
		}
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	menu := pbox.WithTitle("Scoundrel").WithTitleTopCenter().Sprint(strings.Join(lines, "\n"))
	return menu + "\n" + keyHint("↑/↓ move · enter select · q quit")
}

func renderNameEntry(s game.Snapshot) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := fmt.Sprintf("Who dares the dungeon?\n\n%s_", s.NameInput)
	box := pbox.WithTitle("Name").WithTitleTopCenter().Sprint(body)
	return box + "\n" + keyHint("enter start · backspace erase · esc quit")
}

func renderLeaderboard(s game.Snapshot) string {
	rows := pterm.TableData{{"#", "Name", "Score", "Result", "When"}}
	for i, e := range s.Leaderboard {
		result := "died"
		if e.Won {
			result = "cleared"
		}
		when := time.Unix(int64(e.TS), 0).Format("2006-01-02 15:04")
		rows = append(rows, []string{
			strconv.Itoa(i + 1), e.Name, strconv.Itoa(e.Score), result, when,
		})
	}
	table, _ := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if len(s.Leaderboard) == 0 {
		table = "No runs recorded yet."
	}
	return table + "\n" + keyHint("m menu · n new run · q quit")
}

func renderRun(s game.Snapshot) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)

	slots := make([]string, len(s.Room))
	for i, c := range s.Room {
		slot := fmt.Sprintf(" %d:%s ", i+1, c.String())
		if i == s.Selected {
			slot = pterm.BgGreen.Sprint(slot)
		}
		slots[i] = slot
	}
	roomTitle := fmt.Sprintf("Room %d", s.RoomNumber)
	room := pterm.Panel{Data: pbox.WithTitle(roomTitle).WithTitleTopCenter().Sprint(strings.Join(slots, " "))}

	player := pterm.Panel{Data: pbox.WithTitle(s.PlayerName).WithTitleTopLeft().Sprintf(
		"HP: %d/%d\nWeapon: %s\nDeck: %d  Discard: %d\nPicks this turn: %d/3",
		s.HP, s.MaxHP, weaponLine(s.Weapon), s.DeckLen, s.DiscardLen, s.ChoicesThisTurn,
	)}

	logBox := pterm.Panel{Data: pbox.WithTitle("Log").WithTitleTopLeft().Sprint(
		strings.Join(tail(s.Log, 6), "\n"),
	)}

	out, _ := pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{room},
		{player, logBox},
	}).Srender()
	return out + keyHint("←/→ move · enter/space take · w weapon · b barehand · v avoid · 1-4 quick pick · l scores · q quit")
}

func renderGameOver(s game.Snapshot) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)

	outcome := pterm.LightRed("You fell in the dungeon.")
	if s.HP > 0 {
		outcome = pterm.LightGreen("You cleared the dungeon!")
	}
	result := outcome + fmt.Sprintf("\n\nFinal score: %d", s.Score)
	if s.Rank > 0 {
		result += fmt.Sprintf("\nLeaderboard rank: #%d", s.Rank)
	}
	resultBox := pbox.WithTitle("Run over").WithTitleTopCenter().Sprint(result)

	var history []string
	for _, room := range game.GroupByRoom(s.History) {
		history = append(history, pterm.LightYellow(fmt.Sprintf("Room %d", room.Number)))
		for _, ev := range room.Events {
			history = append(history, "  "+describeEvent(ev))
		}
	}
	historyBox := pbox.WithTitle("History").WithTitleTopLeft().Sprint(strings.Join(tail(history, 18), "\n"))

	return resultBox + "\n" + historyBox + "\n" + keyHint("n new run · l scores · m menu · q quit")
}

// describeEvent renders one history entry. The switch is exhaustive
// over the closed event set.
func describeEvent(ev game.Event) string {
	switch e := ev.(type) {
	case game.RoomStart:
		return fmt.Sprintf("entered room %d", e.Number)
	case game.Potion:
		return fmt.Sprintf("drank a potion (%d): HP %d→%d", e.Value, e.HPBefore, e.HPAfter)
	case game.PotionDiscarded:
		return fmt.Sprintf("wasted a potion (%d)", e.Value)
	case game.WeaponEquip:
		return fmt.Sprintf("equipped a weapon (%d)", e.Value)
	case game.Fight:
		if e.WithWeapon {
			return fmt.Sprintf("fought monster %d with weapon %d, took %d", e.Monster, e.WeaponValue, e.DamageTaken)
		}
		return fmt.Sprintf("fought monster %d barehanded, took %d", e.Monster, e.DamageTaken)
	case game.Avoid:
		return "avoided the room"
	default:
		return fmt.Sprintf("%v", ev)
	}
}

func weaponLine(w *game.WeaponView) string {
	if w == nil {
		return "none"
	}
	line := fmt.Sprintf("%s (power %d)", w.Card.String(), w.Card.Value())
	if w.LastMonster > 0 {
		line += fmt.Sprintf(", next kill ≤ %d", w.LastMonster)
	}
	if len(w.Stack) > 0 {
		kills := make([]string, len(w.Stack))
		for i, k := range w.Stack {
			kills[i] = k.String()
		}
		line += " [" + strings.Join(kills, " ") + "]"
	}
	return line
}

func keyHint(hint string) string {
	return pterm.FgGray.Sprint(hint)
}

func tail(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
