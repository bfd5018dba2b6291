package game

import (
	"fmt"

	"github.com/luca-patrignani/scoundrel/domain/card"
)

// resolveCard applies one taken card against the run state, dispatching
// on its suit, and records exactly one event describing the outcome.
func resolveCard(g *Game, c card.Card, mode UseMode) {
	switch c.Suit() {
	case card.Hearts:
		drinkPotion(g, c)
	case card.Diamonds:
		equipWeapon(g, c)
	case card.Clubs, card.Spades:
		fightMonster(g, c, mode)
	default:
		panic(fmt.Sprintf("resolve of impossible card %s", c.Label()))
	}

	// Only a potion as the very last resolution counts toward the
	// perfect-clear bonus.
	if !c.IsPotion() {
		g.lastPotion = 0
	}
}

// drinkPotion heals up to the HP cap. Only the first potion of a turn
// restores health; later ones are wasted. The card is discarded either
// way.
func drinkPotion(g *Game, c card.Card) {
	value := c.Value()
	if !g.PotionUsedThisTurn {
		before := g.Player.HP
		g.Player.HP = min(g.Player.HP+value, g.Player.MaxHP)
		g.logf("You drink a potion (%d). HP %d→%d.", value, before, g.Player.HP)
		g.lastPotion = value
		g.History = append(g.History, Potion{Value: value, HPBefore: before, HPAfter: g.Player.HP})
	} else {
		g.logf("You already used a potion this turn; this one is discarded.")
		g.History = append(g.History, PotionDiscarded{Value: value})
	}
	g.PotionUsedThisTurn = true
	g.Discard = append(g.Discard, c)
}

// equipWeapon binds the diamond card as the new weapon. A previously
// equipped weapon is fully unbound: its card and every monster stacked
// on it go to the discard pile.
func equipWeapon(g *Game, c card.Card) {
	if w := g.Player.Weapon; w != nil {
		g.Discard = append(g.Discard, w.Card)
		g.Discard = append(g.Discard, w.Stack...)
	}
	g.Player.Weapon = &WeaponState{Card: c}
	g.logf("You equip a weapon (%d).", c.Value())
	g.History = append(g.History, WeaponEquip{Value: c.Value()})
}

// fightMonster resolves combat. The weapon is used for the default and
// weapon modes when it exists and its kill ceiling allows this monster;
// otherwise the fight is bare-handed for the monster's full value.
func fightMonster(g *Game, c card.Card, mode UseMode) {
	value := c.Value()
	useWeapon := false
	if w := g.Player.Weapon; w != nil && w.CanUseOn(value) {
		useWeapon = mode != UseBarehand
	}

	if useWeapon {
		w := g.Player.Weapon
		dmg := max(value-w.Value(), 0)
		if dmg > 0 {
			before := g.Player.HP
			g.Player.HP -= dmg
			g.logf("You strike with %d. Monster %d hits back (%d dmg). HP %d→%d.",
				w.Value(), value, dmg, before, g.Player.HP)
		} else {
			g.logf("You strike with %d. Monster %d falls.", w.Value(), value)
		}
		g.History = append(g.History, Fight{
			Monster:     value,
			WithWeapon:  true,
			WeaponValue: w.Value(),
			DamageTaken: dmg,
		})
		// The kill lands on the weapon stack and tightens the ceiling
		// even when the monster dealt no damage.
		w.Stack = append(w.Stack, c)
		w.LastMonster = value
	} else {
		before := g.Player.HP
		g.Player.HP -= value
		g.logf("You fight barehanded. Monster %d hits you (%d dmg). HP %d→%d.",
			value, value, before, g.Player.HP)
		g.Discard = append(g.Discard, c)
		g.History = append(g.History, Fight{Monster: value, DamageTaken: value})
	}
}
