package card

import "testing"

func TestNewCardRejectsInvalid(t *testing.T) {
	if _, err := NewCard(Spades, 0); err == nil {
		t.Fatal("expected error for rank 0")
	}
	if _, err := NewCard(Spades, 14); err == nil {
		t.Fatal("expected error for rank 14")
	}
	if _, err := NewCard(Suit(4), 5); err == nil {
		t.Fatal("expected error for suit 4")
	}
}

func TestCardValueMapping(t *testing.T) {
	cases := []struct {
		rank Rank
		want int
	}{
		{Ace, 14},
		{2, 2},
		{7, 7},
		{10, 10},
		{Jack, 11},
		{Queen, 12},
		{King, 13},
	}
	for _, tc := range cases {
		c, err := NewCard(Spades, tc.rank)
		if err != nil {
			t.Fatal(err)
		}
		if c.Value() != tc.want {
			t.Fatalf("rank %d: expected value %d, got %d", tc.rank, tc.want, c.Value())
		}
	}
}

func TestCardKinds(t *testing.T) {
	club, _ := NewCard(Clubs, 5)
	spade, _ := NewCard(Spades, King)
	diamond, _ := NewCard(Diamonds, 7)
	heart, _ := NewCard(Hearts, 3)

	if !club.IsMonster() || !spade.IsMonster() {
		t.Fatal("clubs and spades must be monsters")
	}
	if diamond.IsMonster() || heart.IsMonster() {
		t.Fatal("red cards must not be monsters")
	}
	if !diamond.IsWeapon() {
		t.Fatal("diamonds must be weapons")
	}
	if !heart.IsPotion() {
		t.Fatal("hearts must be potions")
	}
}

func TestCardLabel(t *testing.T) {
	c, _ := NewCard(Hearts, Ace)
	if c.Label() != "A♥" {
		t.Fatalf("expected A♥, got %s", c.Label())
	}
	c, _ = NewCard(Clubs, Jack)
	if c.Label() != "J♣" {
		t.Fatalf("expected J♣, got %s", c.Label())
	}
	c, _ = NewCard(Spades, 10)
	if c.Label() != "10♠" {
		t.Fatalf("expected 10♠, got %s", c.Label())
	}
}

func TestZeroCardIsZero(t *testing.T) {
	var c Card
	if !c.IsZero() {
		t.Fatal("zero value must be the empty-slot sentinel")
	}
	real, _ := NewCard(Diamonds, 2)
	if real.IsZero() {
		t.Fatal("a real card must not be zero")
	}
}
