package deck

import (
	"math/rand/v2"
	"slices"

	"github.com/luca-patrignani/scoundrel/domain/card"
)

// Deck is an ordered pile of cards. The top of the deck is the end of
// the backing slice.
type Deck struct {
	cards []card.Card
}

// New builds the 44-card dungeon deck: all clubs and spades ranks 1-13
// (monsters), diamonds 2-10 (weapons) and hearts 2-10 (potions). Red
// face cards and red aces are pruned per the ruleset.
func New() Deck {
	cards := make([]card.Card, 0, 44)
	for _, s := range []card.Suit{card.Clubs, card.Spades} {
		for r := card.Ace; r <= card.King; r++ {
			c, _ := card.NewCard(s, r)
			cards = append(cards, c)
		}
	}
	for _, s := range []card.Suit{card.Diamonds, card.Hearts} {
		for r := card.Rank(2); r <= 10; r++ {
			c, _ := card.NewCard(s, r)
			cards = append(cards, c)
		}
	}
	return Deck{cards: cards}
}

// From builds a deck holding exactly the given cards, bottom first.
func From(cards ...card.Card) Deck {
	return Deck{cards: slices.Clone(cards)}
}

// Shuffle randomizes the deck order in place.
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. The second return value is
// false when the deck is empty; an empty deck is a normal end-of-run
// condition, not an error.
func (d *Deck) Draw() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// PushBottom inserts a card under the deck so that it is drawn after
// every other remaining card. O(n) per call, which is fine for a
// 44-card deck.
func (d *Deck) PushBottom(c card.Card) {
	d.cards = slices.Insert(d.cards, 0, c)
}

// Len returns the number of remaining cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether no cards remain.
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []card.Card {
	return slices.Clone(d.cards)
}
