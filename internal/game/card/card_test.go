package card

import "testing"

func TestCreateDeckInvariant(t *testing.T) {
	deck := CreateDeck()

	if len(deck) != FullDeckSize {
		t.Fatalf("expected %d cards, got %d", FullDeckSize, len(deck))
	}

	ids := make(map[string]bool, len(deck))
	pairs := make(map[string]bool, len(deck))
	for _, c := range deck {
		if ids[c.ID] {
			t.Fatalf("duplicate card id %s", c.ID)
		}
		ids[c.ID] = true

		key := string(c.Suit) + "/" + string(rune('0'+c.Rank/10)) + string(rune('0'+c.Rank%10))
		if pairs[key] {
			t.Fatalf("duplicate (suit,rank) pair %s", key)
		}
		pairs[key] = true

		if c.Rank < 1 || c.Rank > RanksPerSuit {
			t.Fatalf("card %s has rank %d outside 1..%d", c.ID, c.Rank, RanksPerSuit)
		}
		if SuitToElement[c.Suit] != c.Element {
			t.Fatalf("card %s element %s does not match suit %s", c.ID, c.Element, c.Suit)
		}
	}
	if len(pairs) != FullDeckSize {
		t.Fatalf("expected %d distinct (suit,rank) pairs, got %d", FullDeckSize, len(pairs))
	}
}

func TestDeckOrderSuitMajor(t *testing.T) {
	deck := CreateDeck()

	for si, suit := range Suits {
		for rank := 1; rank <= RanksPerSuit; rank++ {
			c := deck[si*RanksPerSuit+rank-1]
			if c.Suit != suit || c.Rank != rank {
				t.Fatalf("position %d: expected %s/%d, got %s/%d", si*RanksPerSuit+rank-1, suit, rank, c.Suit, c.Rank)
			}
		}
	}
}

func TestElementSuitBijection(t *testing.T) {
	if len(SuitToElement) != len(Suits) || len(ElementToSuit) != len(Elements) {
		t.Fatal("mapping tables incomplete")
	}
	for suit, el := range SuitToElement {
		if ElementToSuit[el] != suit {
			t.Fatalf("mapping not bijective for suit %s", suit)
		}
	}
}

func TestShuffleDeckDeterministic(t *testing.T) {
	deck := CreateDeck()

	a := ShuffleDeck(deck, "seed-A")
	b := ShuffleDeck(deck, "seed-A")
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed diverged at index %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}

	c := ShuffleDeck(deck, "seed-B")
	same := true
	for i := range a {
		if a[i].ID != c[i].ID {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical permutations")
	}
}

func TestShuffleDeckPreservesCards(t *testing.T) {
	deck := CreateDeck()
	shuffled := ShuffleDeck(deck, "conserve")

	if len(shuffled) != len(deck) {
		t.Fatalf("shuffle changed deck size: %d", len(shuffled))
	}
	seen := make(map[string]bool, len(shuffled))
	for _, c := range shuffled {
		if seen[c.ID] {
			t.Fatalf("shuffle duplicated card %s", c.ID)
		}
		seen[c.ID] = true
	}

	// Input must be untouched.
	for i, c := range CreateDeck() {
		if deck[i].ID != c.ID {
			t.Fatalf("shuffle mutated its input at index %d", i)
		}
	}
}

func TestWildSentinelDistinctIDs(t *testing.T) {
	deckIDs := make(map[string]bool)
	for _, c := range CreateDeck() {
		deckIDs[c.ID] = true
	}

	for i := 0; i < 8; i++ {
		w := CreateWildSentinel(i)
		if !w.IsWildSentinel() {
			t.Fatalf("wild sentinel %d has rank %d", i, w.Rank)
		}
		if deckIDs[w.ID] {
			t.Fatalf("wild sentinel id %s collides with deck", w.ID)
		}
	}
}

func TestMatchesIgnoresIdentity(t *testing.T) {
	a := Card{ID: "x", Rank: 5, Suit: SuitEmbers, Element: ElementFire}
	b := Card{ID: "y", Rank: 5, Suit: SuitEmbers, Element: ElementFire}
	if !a.Matches(b) {
		t.Fatal("cards with equal rank/suit/element must match")
	}
	b.Rank = 6
	if a.Matches(b) {
		t.Fatal("cards with different ranks must not match")
	}
}
