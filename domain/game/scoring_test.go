package game

import (
	"testing"

	"github.com/luca-patrignani/scoundrel/domain/card"
	"github.com/luca-patrignani/scoundrel/domain/deck"
	"github.com/luca-patrignani/scoundrel/leaderboard"
)

func TestDeathScoreSubtractsRemainingMonsters(t *testing.T) {
	g := runningGame(
		deck.From(mustCard(t, card.Clubs, 7)),
		[RoomSize]card.Card{
			mustCard(t, card.Spades, 5), // fought now
			mustCard(t, card.Clubs, 5),  // left behind
			{}, {},
		},
	)
	g.Player.HP = 2

	g.TakeSelected(UseBarehand) // 2 - 5 = -3

	if g.Phase != PhaseGameOver {
		t.Fatal("death must end the run")
	}
	if g.Score != -15 {
		t.Fatalf("expected score -3 - 7 - 5 = -15, got %d", g.Score)
	}
}

func TestDeathIgnoresRemainingNonMonsters(t *testing.T) {
	g := runningGame(
		deck.From(mustCard(t, card.Hearts, 9), mustCard(t, card.Diamonds, 8)),
		[RoomSize]card.Card{mustCard(t, card.Spades, card.Ace), {}, {}, {}},
	)
	g.Player.HP = 4

	g.TakeSelected(UseBarehand) // 4 - 14 = -10

	if g.Score != -10 {
		t.Fatalf("potions and weapons carry no penalty, expected -10, got %d", g.Score)
	}
}

func TestVictoryBonusForPerfectPotionFinish(t *testing.T) {
	g := runningGame(deck.From(), [RoomSize]card.Card{
		mustCard(t, card.Hearts, 6), {}, {}, {},
	})
	g.Player.HP = 14

	g.TakeSelected(UseDefault) // heals to exactly 20, empties the run

	if g.Phase != PhaseGameOver {
		t.Fatal("empty deck and room must end the run")
	}
	if g.Score != 26 {
		t.Fatalf("expected 20 + 6 = 26, got %d", g.Score)
	}
}

func TestVictoryNoBonusBelowMaxHP(t *testing.T) {
	g := runningGame(deck.From(), [RoomSize]card.Card{
		mustCard(t, card.Hearts, 6), {}, {}, {},
	})
	g.Player.HP = 12

	g.TakeSelected(UseDefault) // heals to 18

	if g.Score != 18 {
		t.Fatalf("expected 18 without bonus, got %d", g.Score)
	}
}

func TestVictoryNoBonusWhenLastResolutionNotPotion(t *testing.T) {
	g := runningGame(deck.From(), [RoomSize]card.Card{
		mustCard(t, card.Diamonds, 5), {}, {}, {},
	})
	g.lastPotion = 6 // a potion earlier in the run

	g.TakeSelected(UseDefault) // equipping clears the bonus channel

	if g.Score != MaxHP {
		t.Fatalf("expected plain %d, got %d", MaxHP, g.Score)
	}
}

func TestWastedPotionKeepsBonusChannel(t *testing.T) {
	g := runningGame(deck.From(), [RoomSize]card.Card{})
	g.PotionUsedThisTurn = true
	g.lastPotion = 6

	resolveCard(g, mustCard(t, card.Hearts, 2), UseDefault)

	if g.lastPotion != 6 {
		t.Fatalf("a wasted potion must not overwrite the bonus channel, got %d", g.lastPotion)
	}

	resolveCard(g, mustCard(t, card.Diamonds, 4), UseDefault)

	if g.lastPotion != 0 {
		t.Fatal("a non-potion resolution must clear the bonus channel")
	}
}

func TestTerminalRunSubmitsToLeaderboard(t *testing.T) {
	board := leaderboard.NewBoard(nil)
	g := runningGame(
		deck.From(),
		[RoomSize]card.Card{mustCard(t, card.Spades, card.King), {}, {}, {}},
	)
	g.Board = board
	g.Player.HP = 3

	g.TakeSelected(UseBarehand) // 3 - 13 = -10, death

	if g.Rank != 1 {
		t.Fatalf("single entry must rank 1, got %d", g.Rank)
	}
	entries := board.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one submitted entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Name != "Tester" || e.Score != -10 || e.Won {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.TS == 0 {
		t.Fatal("entry must carry a timestamp")
	}
}
