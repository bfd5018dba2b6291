package game

import (
	"time"

	"github.com/luca-patrignani/scoundrel/leaderboard"
)

// finishVictory ends the run once deck and room are both empty. The
// score is the final HP, plus the last potion's value when that potion
// was the final resolution and topped HP out at the maximum.
func (g *Game) finishVictory() {
	g.Phase = PhaseGameOver
	score := g.Player.HP
	if g.Player.HP == g.Player.MaxHP && g.lastPotion > 0 {
		score += g.lastPotion
	}
	g.Score = score
	g.logf("You clear the dungeon. Final score: %d.", score)
	g.submitScore(true)
}

// finishDeath ends the run at HP <= 0. Every monster still waiting in
// the deck or the room counts against the score.
func (g *Game) finishDeath() {
	g.Phase = PhaseGameOver
	penalty := 0
	for _, c := range g.Deck.Cards() {
		if c.IsMonster() {
			penalty += c.Value()
		}
	}
	for _, c := range g.Room {
		if !c.IsZero() && c.IsMonster() {
			penalty += c.Value()
		}
	}
	g.Score = g.Player.HP - penalty
	g.logf("You fall... Final score: %d.", g.Score)
	g.submitScore(false)
}

// submitScore records the terminal outcome on the leaderboard and fixes
// the run's rank.
func (g *Game) submitScore(won bool) {
	if g.Board == nil {
		return
	}
	g.Rank = g.Board.Submit(leaderboard.Entry{
		Name:  g.PlayerName,
		Score: g.Score,
		Won:   won,
		TS:    uint64(time.Now().Unix()),
	})
}
