package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "opening deal",
			input: "10s 10h 6d 9c",
			expected: []Card{
				{Suit: Spades, Rank: Ten},
				{Suit: Hearts, Rank: Ten},
				{Suit: Diamonds, Rank: Six},
				{Suit: Clubs, Rank: Nine},
			},
		},
		{
			name:  "ten as T",
			input: "Ts Kh",
			expected: []Card{
				{Suit: Spades, Rank: Ten},
				{Suit: Hearts, Rank: King},
			},
		},
		{
			name:  "case insensitive",
			input: "as KH qD jc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "Xs Ks",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "As Kx",
			wantErr: true,
		},
		{
			name:    "rank one is not a card",
			input:   "1s",
			wantErr: true,
		},
		{
			name:    "missing suit",
			input:   "A",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("As Ks")
	expected := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Spades, Rank: King},
	}
	if !cardsEqual(cards, expected) {
		t.Errorf("MustParseCards() = %v, want %v", cards, expected)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func TestCardString(t *testing.T) {
	tests := map[Card]string{
		{Suit: Spades, Rank: Ace}:    "A♠",
		{Suit: Hearts, Rank: Ten}:    "10♥",
		{Suit: Diamonds, Rank: Six}:  "6♦",
		{Suit: Clubs, Rank: King}:    "K♣",
		{Suit: Clubs, Rank: Rank(0)}: "?♣",
	}
	for card, want := range tests {
		if got := card.String(); got != want {
			t.Errorf("Card.String() = %q, want %q", got, want)
		}
	}
}

func TestRankPoints(t *testing.T) {
	tests := []struct {
		rank Rank
		want []int
	}{
		{Ace, []int{1, 11}},
		{Two, []int{2}},
		{Nine, []int{9}},
		{Ten, []int{10}},
		{Jack, []int{10}},
		{Queen, []int{10}},
		{King, []int{10}},
	}
	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			got := tt.rank.Points()
			if len(got) != len(tt.want) {
				t.Fatalf("Points() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Points() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestInvalidCardsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"rank zero points", func() { Rank(0).Points() }},
		{"rank fourteen points", func() { Rank(14).Points() }},
		{"bad suit", func() { NewCard(Suit(7), Ace) }},
		{"bad rank", func() { NewCard(Spades, Rank(0)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s should panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestCardPredicates(t *testing.T) {
	ace := NewCard(Hearts, Ace)
	if !ace.IsAce() || !ace.IsRed() || ace.IsFaceCard() {
		t.Errorf("unexpected predicates for %s", ace)
	}
	queen := NewCard(Clubs, Queen)
	if queen.IsAce() || queen.IsRed() || !queen.IsFaceCard() {
		t.Errorf("unexpected predicates for %s", queen)
	}
	if (Card{}).Valid() {
		t.Error("zero card should not be valid")
	}
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rank != b[i].Rank || a[i].Suit != b[i].Suit {
			return false
		}
	}
	return true
}
