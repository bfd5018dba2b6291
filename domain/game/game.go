package game

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/scoundrel/domain/card"
	"github.com/luca-patrignani/scoundrel/domain/deck"
	"github.com/luca-patrignani/scoundrel/leaderboard"
)

// New creates a fresh aggregate in the menu phase. The board may be nil
// when no leaderboard is wanted (scores are then simply not submitted).
func New(board *leaderboard.Board, defaultName string) *Game {
	d := deck.New()
	d.Shuffle()
	return &Game{
		Phase:      PhaseMenu,
		Player:     NewPlayer(),
		Deck:       d,
		PlayerName: defaultName,
		Board:      board,
		Log: []string{
			"Welcome to Scoundrel!",
			"Press n to start a run or pick from the menu.",
		},
	}
}

// NewRun resets every per-run field, shuffles a fresh deck and enters
// the running phase with the first room revealed.
func (g *Game) NewRun() {
	g.Player = NewPlayer()
	g.Deck = deck.New()
	g.Deck.Shuffle()
	g.Room = [RoomSize]card.Card{}
	g.Selected = 0
	g.ChoicesThisTurn = 0
	g.AvoidedLastTurn = false
	g.PotionUsedThisTurn = false
	g.Discard = nil
	g.History = nil
	g.Score = 0
	g.Rank = 0
	g.lastPotion = 0
	g.Phase = PhaseRunning
	g.Log = []string{"A fresh dungeon awaits..."}
	g.refillRoom()
	g.RoomNumber = 1
	g.History = append(g.History, RoomStart{Number: g.RoomNumber})
}

// MoveSelection moves the room cursor by dx, clamped to the four slots.
func (g *Game) MoveSelection(dx int) {
	if g.Phase != PhaseRunning {
		return
	}
	ns := g.Selected + dx
	if ns < 0 {
		ns = 0
	}
	if ns > RoomSize-1 {
		ns = RoomSize - 1
	}
	g.Selected = ns
}

// SelectSlot puts the cursor on the given room slot.
func (g *Game) SelectSlot(i int) {
	if g.Phase != PhaseRunning || i < 0 || i > RoomSize-1 {
		return
	}
	g.Selected = i
}

// Tick is a placeholder for future animation timing.
func (g *Game) Tick() {}

// MenuUp moves the main-menu cursor up.
func (g *Game) MenuUp() {
	if g.MenuSelected > 0 {
		g.MenuSelected--
	}
}

// MenuDown moves the main-menu cursor down.
func (g *Game) MenuDown() {
	if g.MenuSelected < 2 {
		g.MenuSelected++
	}
}

// MenuActivate triggers the selected menu item. The quit item is
// handled by the input loop, not here.
func (g *Game) MenuActivate() {
	switch g.MenuSelected {
	case 0:
		g.StartNameEntry()
	case 1:
		g.Phase = PhaseLeaderboard
	}
}

// StartNameEntry switches to name entry with an empty input buffer.
func (g *Game) StartNameEntry() {
	g.Phase = PhaseNameEntry
	g.NameInput = ""
}

// OpenLeaderboard shows the leaderboard.
func (g *Game) OpenLeaderboard() {
	g.Phase = PhaseLeaderboard
}

// OpenMenu returns to the main menu.
func (g *Game) OpenMenu() {
	g.Phase = PhaseMenu
}

// NameInputChar appends a printable character to the name buffer,
// capped at 20 characters.
func (g *Game) NameInputChar(ch rune) {
	if (ch < '!' || ch > '~') && ch != ' ' {
		return
	}
	if len(g.NameInput) < 20 {
		g.NameInput += string(ch)
	}
}

// NameInputBackspace removes the last character of the name buffer.
func (g *Game) NameInputBackspace() {
	if g.NameInput != "" {
		g.NameInput = g.NameInput[:len(g.NameInput)-1]
	}
}

// NameInputSubmit adopts the trimmed input as the player name when it
// is non-empty and starts a new run either way.
func (g *Game) NameInputSubmit() {
	if name := strings.TrimSpace(g.NameInput); name != "" {
		g.PlayerName = name
	}
	g.NewRun()
}

func (g *Game) logf(format string, args ...any) {
	g.Log = append(g.Log, fmt.Sprintf(format, args...))
}
