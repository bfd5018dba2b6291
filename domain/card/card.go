package card

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Suit of a playing card. Black suits (clubs, spades) are monsters,
// diamonds are weapons and hearts are potions.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Symbol returns the plain suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

func (s Suit) String() string {
	return s.Symbol()
}

// Rank constants for face cards and ace
const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Rank is 1-13: ace through king. 0 marks the empty-slot sentinel card.
type Rank uint8

// Label returns the printed rank: A, 2-10, J, Q or K.
func (r Rank) Label() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= 2 && r <= 10 {
		return fmt.Sprintf("%d", uint8(r))
	}
	return "?"
}

// Card is an immutable (suit, rank) pair. The zero value (rank 0) is
// not a playing card; it stands for an empty room slot.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Returns the Card or an error if suit or rank is out of range.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spades || rank == 0 || rank > King {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// IsZero reports whether the Card is the empty-slot sentinel.
func (c Card) IsZero() bool {
	return c.rank == 0
}

// IsMonster reports whether the Card is a monster (clubs or spades).
func (c Card) IsMonster() bool {
	return c.suit == Clubs || c.suit == Spades
}

// IsWeapon reports whether the Card is a weapon (diamonds).
func (c Card) IsWeapon() bool {
	return c.suit == Diamonds
}

// IsPotion reports whether the Card is a potion (hearts).
func (c Card) IsPotion() bool {
	return c.suit == Hearts
}

// Value is the combat value of the Card: Ace counts 14, numerals as
// printed, J/Q/K 11-13. For diamonds it is the weapon power and for
// hearts the heal amount (both 2-10 by deck construction).
func (c Card) Value() int {
	if c.rank == Ace {
		return 14
	}
	return int(c.rank)
}

// Label returns the plain, uncolored representation, e.g. "A♠" or "7♥".
func (c Card) Label() string {
	if c.IsZero() {
		return "▓"
	}
	return c.rank.Label() + c.suit.Symbol()
}

// String returns a human-readable representation of the Card with the
// suit colored for terminal display (red for diamonds/hearts).
func (c Card) String() string {
	if c.IsZero() {
		return "▓"
	}

	var suit string
	switch c.suit {
	case Diamonds, Hearts:
		suit = pterm.LightRed(c.suit.Symbol())
	default:
		suit = pterm.Black(c.suit.Symbol())
	}
	return c.rank.Label() + suit
}
