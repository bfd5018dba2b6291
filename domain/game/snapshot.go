package game

import (
	"slices"

	"github.com/luca-patrignani/scoundrel/domain/card"
	"github.com/luca-patrignani/scoundrel/leaderboard"
)

// Snapshot is the immutable view of the run handed to the rendering
// layer after every intent. Slices are copies; mutating a snapshot
// never touches the live game.
type Snapshot struct {
	Phase Phase

	HP     int
	MaxHP  int
	Weapon *WeaponView // nil when bare-handed

	Room               [RoomSize]card.Card
	Selected           int
	ChoicesThisTurn    int
	PotionUsedThisTurn bool
	AvoidedLastTurn    bool

	DeckLen    int
	DiscardLen int
	RoomNumber int

	Log     []string
	History []Event

	Score int // meaningful only in the game-over phase
	Rank  int // 1-based, 0 when the run is not finished

	Leaderboard []leaderboard.Entry

	MenuSelected int
	NameInput    string
	PlayerName   string
}

// WeaponView is the weapon portion of a snapshot.
type WeaponView struct {
	Card        card.Card
	LastMonster int
	Stack       []card.Card
}

// Snapshot produces a value copy of the current run state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:              g.Phase,
		HP:                 g.Player.HP,
		MaxHP:              g.Player.MaxHP,
		Room:               g.Room,
		Selected:           g.Selected,
		ChoicesThisTurn:    g.ChoicesThisTurn,
		PotionUsedThisTurn: g.PotionUsedThisTurn,
		AvoidedLastTurn:    g.AvoidedLastTurn,
		DeckLen:            g.Deck.Len(),
		DiscardLen:         len(g.Discard),
		RoomNumber:         g.RoomNumber,
		Log:                slices.Clone(g.Log),
		History:            slices.Clone(g.History),
		Score:              g.Score,
		Rank:               g.Rank,
		MenuSelected:       g.MenuSelected,
		NameInput:          g.NameInput,
		PlayerName:         g.PlayerName,
	}
	if w := g.Player.Weapon; w != nil {
		s.Weapon = &WeaponView{
			Card:        w.Card,
			LastMonster: w.LastMonster,
			Stack:       slices.Clone(w.Stack),
		}
	}
	if g.Board != nil {
		s.Leaderboard = g.Board.Entries()
	}
	return s
}
