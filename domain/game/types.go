package game

import (
	"github.com/luca-patrignani/scoundrel/domain/card"
	"github.com/luca-patrignani/scoundrel/domain/deck"
	"github.com/luca-patrignani/scoundrel/leaderboard"
)

// Phase is the top-level state of the application, orthogonal to the
// per-room turn state tracked on the Game itself.
type Phase string

const (
	PhaseMenu        Phase = "menu"
	PhaseNameEntry   Phase = "name_entry"
	PhaseLeaderboard Phase = "leaderboard"
	PhaseRunning     Phase = "running"
	PhaseGameOver    Phase = "game_over"
)

// UseMode selects how a taken monster card is fought.
type UseMode string

const (
	UseDefault  UseMode = "default"  // weapon when eligible, bare hands otherwise
	UseBarehand UseMode = "barehand" // always bare hands
	UseWeapon   UseMode = "weapon"   // weapon when eligible, bare hands otherwise
)

// MaxHP is the fixed hit point cap of this ruleset.
const MaxHP = 20

// RoomSize is the number of face-up slots in a room.
const RoomSize = 4

// maxPicks is the number of cards that may be taken per turn while more
// than one card would remain; the last room card carries forward.
const maxPicks = 3

// Player is the adventurer's mutable state for one run.
type Player struct {
	HP     int
	MaxHP  int
	Weapon *WeaponState // nil when bare-handed
}

// NewPlayer returns a full-health player with no weapon.
func NewPlayer() Player {
	return Player{HP: MaxHP, MaxHP: MaxHP}
}

// WeaponState is an equipped diamond card together with the monsters
// defeated by it. Once a monster is killed, the weapon may only be used
// on monsters of equal or lower value until it is replaced.
type WeaponState struct {
	Card        card.Card
	LastMonster int         // value of the last monster killed, 0 until first kill
	Stack       []card.Card // killed monsters, oldest first
}

// Value returns the weapon power.
func (w *WeaponState) Value() int {
	return w.Card.Value()
}

// CanUseOn reports whether the weapon may be used against a monster of
// the given value: always before the first kill, afterwards only for
// values at or below the last kill.
func (w *WeaponState) CanUseOn(monsterValue int) bool {
	return w.LastMonster == 0 || monsterValue <= w.LastMonster
}

// Game is the single mutable aggregate of a run. One Game is owned by
// the calling loop; every operation runs synchronously to completion.
type Game struct {
	Phase  Phase
	Player Player
	Deck   deck.Deck
	Room   [RoomSize]card.Card // zero card = empty slot

	Selected           int // room cursor, 0-3
	ChoicesThisTurn    int
	AvoidedLastTurn    bool
	PotionUsedThisTurn bool

	Discard []card.Card
	Log     []string // user-facing notices, appended only
	History []Event  // structured run history, appended only

	RoomNumber int
	Score      int // meaningful only once Phase is PhaseGameOver
	Rank       int // 1-based leaderboard rank of the finished run, 0 otherwise

	MenuSelected int
	NameInput    string
	PlayerName   string

	Board *leaderboard.Board

	// value of the last successfully drunk potion, cleared by any
	// non-potion resolution; feeds the perfect-clear victory bonus
	lastPotion int
}
