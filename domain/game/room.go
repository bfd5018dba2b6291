package game

import "github.com/luca-patrignani/scoundrel/domain/card"

// TakeSelected removes the card under the cursor and resolves it with
// the given use mode.
//
// When three cards were already taken this turn and two or more are
// still visible, the turn force-ends without taking anything: the
// remaining card is carried into the next room. A fourth pick is still
// allowed when it would leave the room empty. Taking from an empty slot
// is a silent no-op.
func (g *Game) TakeSelected(mode UseMode) {
	if g.Phase != PhaseRunning {
		return
	}
	if g.ChoicesThisTurn >= maxPicks && g.visibleCount() >= 2 {
		g.logf("You've already taken %d cards. Ending turn.", maxPicks)
		g.endTurn()
		return
	}
	c := g.Room[g.Selected]
	if c.IsZero() {
		return
	}
	g.Room[g.Selected] = card.Card{}

	resolveCard(g, c, mode)

	if g.Player.HP <= 0 {
		g.finishDeath()
		return
	}

	g.ChoicesThisTurn++
	if g.visibleCount() <= 1 || g.ChoicesThisTurn >= maxPicks {
		g.endTurn()
	}
}

// AvoidRoom scoops all four room cards to the bottom of the deck, in
// slot order, and deals the next room. Avoiding requires a full room
// and cannot be done twice in a row; violations only log a notice.
func (g *Game) AvoidRoom() {
	if g.Phase != PhaseRunning {
		return
	}
	if g.AvoidedLastTurn {
		g.logf("You cannot avoid two rooms in a row.")
		return
	}
	if g.visibleCount() < RoomSize {
		g.logf("You may only avoid when %d cards are visible.", RoomSize)
		return
	}
	for i := range g.Room {
		g.Deck.PushBottom(g.Room[i])
		g.Room[i] = card.Card{}
	}
	g.AvoidedLastTurn = true
	g.PotionUsedThisTurn = false
	g.ChoicesThisTurn = 0
	g.logf("You avoid the room, slipping past the dangers.")
	g.History = append(g.History, Avoid{})
	g.refillRoom()
	if g.Phase == PhaseRunning {
		g.RoomNumber++
		g.History = append(g.History, RoomStart{Number: g.RoomNumber})
	}
}

func (g *Game) visibleCount() int {
	n := 0
	for _, c := range g.Room {
		if !c.IsZero() {
			n++
		}
	}
	return n
}

// refillRoom draws into the empty slots only; a carried-over card stays
// where it is. When the deck and the room are both exhausted the run is
// won. If the cursor ended up on an empty slot it snaps to the first
// occupied one.
func (g *Game) refillRoom() {
	for i := range g.Room {
		if !g.Room[i].IsZero() {
			continue
		}
		c, ok := g.Deck.Draw()
		if !ok {
			break
		}
		g.Room[i] = c
	}
	if g.Room[g.Selected].IsZero() {
		for i, c := range g.Room {
			if !c.IsZero() {
				g.Selected = i
				break
			}
		}
	}
	if g.Deck.Empty() && g.visibleCount() == 0 {
		g.finishVictory()
	}
}

// endTurn resets the per-turn flags, refills the room around any
// carried card and advances the room counter when the run goes on.
func (g *Game) endTurn() {
	g.AvoidedLastTurn = false
	g.PotionUsedThisTurn = false
	g.ChoicesThisTurn = 0
	g.refillRoom()
	if g.Phase == PhaseRunning {
		g.RoomNumber++
		g.History = append(g.History, RoomStart{Number: g.RoomNumber})
	}
}
