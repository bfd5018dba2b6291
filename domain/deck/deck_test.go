package deck

import (
	"testing"

	"github.com/luca-patrignani/scoundrel/domain/card"
)

func mustCard(t *testing.T, s card.Suit, r card.Rank) card.Card {
	t.Helper()
	c, err := card.NewCard(s, r)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewDeckComposition(t *testing.T) {
	d := New()
	if d.Len() != 44 {
		t.Fatalf("expected 44 cards, got %d", d.Len())
	}

	seen := map[card.Card]int{}
	bySuit := map[card.Suit]int{}
	for _, c := range d.Cards() {
		seen[c]++
		bySuit[c.Suit()]++
	}
	for c, n := range seen {
		if n != 1 {
			t.Fatalf("duplicate card %s", c.Label())
		}
	}
	if bySuit[card.Clubs] != 13 || bySuit[card.Spades] != 13 {
		t.Fatalf("expected 13 clubs and 13 spades, got %d and %d",
			bySuit[card.Clubs], bySuit[card.Spades])
	}
	if bySuit[card.Diamonds] != 9 || bySuit[card.Hearts] != 9 {
		t.Fatalf("expected 9 diamonds and 9 hearts, got %d and %d",
			bySuit[card.Diamonds], bySuit[card.Hearts])
	}
	for _, c := range d.Cards() {
		if c.IsMonster() {
			continue
		}
		if c.Rank() < 2 || c.Rank() > 10 {
			t.Fatalf("red card out of range: %s", c.Label())
		}
	}
}

func TestDrawIsLIFO(t *testing.T) {
	a := mustCard(t, card.Clubs, 3)
	b := mustCard(t, card.Hearts, 7)
	d := From(a, b)

	c, ok := d.Draw()
	if !ok || c != b {
		t.Fatalf("expected %s first, got %s", b.Label(), c.Label())
	}
	c, ok = d.Draw()
	if !ok || c != a {
		t.Fatalf("expected %s second, got %s", a.Label(), c.Label())
	}
	if _, ok := d.Draw(); ok {
		t.Fatal("expected empty deck")
	}
}

func TestPushBottomDrawnLast(t *testing.T) {
	a := mustCard(t, card.Clubs, 3)
	b := mustCard(t, card.Hearts, 7)
	avoided := mustCard(t, card.Spades, card.Ace)

	d := From(a, b)
	d.PushBottom(avoided)

	if c, _ := d.Draw(); c != b {
		t.Fatalf("expected %s, got %s", b.Label(), c.Label())
	}
	if c, _ := d.Draw(); c != a {
		t.Fatalf("expected %s, got %s", a.Label(), c.Label())
	}
	if c, _ := d.Draw(); c != avoided {
		t.Fatalf("expected the avoided card last, got %s", c.Label())
	}
}

func TestShuffleKeepsCards(t *testing.T) {
	d := New()
	before := map[card.Card]int{}
	for _, c := range d.Cards() {
		before[c]++
	}

	d.Shuffle()

	after := map[card.Card]int{}
	for _, c := range d.Cards() {
		after[c]++
	}
	if len(before) != len(after) {
		t.Fatalf("card set changed: %d vs %d", len(before), len(after))
	}
	for c, n := range before {
		if after[c] != n {
			t.Fatalf("card %s lost in shuffle", c.Label())
		}
	}
}
