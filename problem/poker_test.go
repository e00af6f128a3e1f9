package problem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHand(t *testing.T, codes ...string) Hand {
	t.Helper()
	require.Len(t, codes, 5)
	cards := make([]Card, 5)
	for i, code := range codes {
		card, err := ParseCard(code)
		require.NoError(t, err)
		cards[i] = card
	}
	return NewHand(cards)
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		code  string
		value Value
		suit  Suit
	}{
		{"2D", 2, Diamonds},
		{"9H", 9, Hearts},
		{"TC", Ten, Clubs},
		{"JS", Jack, Spades},
		{"QD", Queen, Diamonds},
		{"KH", King, Hearts},
		{"AS", Ace, Spades},
	}

	for _, tt := range tests {
		card, err := ParseCard(tt.code)
		require.NoError(t, err, tt.code)
		assert.Equal(t, tt.value, card.Value)
		assert.Equal(t, tt.suit, card.Suit)
		assert.Equal(t, tt.code, card.String())
	}
}

func TestParseCardInvalid(t *testing.T) {
	for _, code := range []string{"", "2", "2DX", "1D", "0D", "2X", "XD"} {
		_, err := ParseCard(code)
		assert.Error(t, err, "code %q", code)
	}
}

func TestSuitRoundTrip(t *testing.T) {
	// Every suit must survive parse(print(s)); a lookup-table typo in
	// either direction shows up here.
	for _, s := range []Suit{Diamonds, Hearts, Clubs, Spades} {
		parsed, err := ParseSuit(s.String()[0])
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

func TestValueRoundTripAll(t *testing.T) {
	for v := Value(2); v <= Ace; v++ {
		parsed, err := ParseValue(v.String()[0])
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}

func TestHandRankCategories(t *testing.T) {
	tests := []struct {
		name     string
		cards    []string
		expected Category
	}{
		{"RoyalFlush", []string{"TS", "JS", "QS", "KS", "AS"}, RoyalFlush},
		{"StraightFlush", []string{"2S", "3S", "4S", "5S", "6S"}, StraightFlush},
		{"FourOfAKind", []string{"9C", "9D", "9H", "9S", "2C"}, FourOfAKind},
		{"FullHouse", []string{"3C", "3D", "3S", "9S", "9D"}, FullHouse},
		{"Flush", []string{"3D", "6D", "7D", "TD", "QD"}, Flush},
		{"Straight", []string{"2C", "3D", "4H", "5S", "6C"}, Straight},
		{"ThreeOfAKind", []string{"2D", "9C", "AS", "AH", "AC"}, ThreeOfAKind},
		{"TwoPairs", []string{"AH", "AD", "KS", "KD", "5C"}, TwoPairs},
		{"OnePair", []string{"5H", "5C", "6S", "7S", "KD"}, OnePair},
		{"HighCard", []string{"5D", "8C", "9S", "JS", "AC"}, HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := mustHand(t, tt.cards...)
			assert.Equal(t, tt.expected, hand.Rank().Category)
		})
	}
}

func TestHandCompare(t *testing.T) {
	tests := []struct {
		name     string
		first    []string
		second   []string
		expected int
	}{
		{
			"HigherCategoryWins",
			[]string{"2S", "3S", "4S", "5S", "6S"},
			[]string{"AH", "AD", "AC", "KS", "KD"},
			1,
		},
		{
			"HigherPairWins",
			[]string{"5H", "5C", "6S", "7S", "KD"},
			[]string{"2C", "3S", "8S", "8D", "TD"},
			-1,
		},
		{
			"KickerBreaksPairTie",
			[]string{"4D", "6S", "9H", "QH", "QC"},
			[]string{"3D", "6D", "7H", "QD", "QS"},
			1,
		},
		{
			"FullHouseTripleDecides",
			[]string{"2H", "2D", "4C", "4D", "4S"},
			[]string{"3C", "3D", "3S", "9S", "9D"},
			1,
		},
		{
			"TwoPairSecondPairDecides",
			[]string{"AH", "AD", "KS", "KD", "5C"},
			[]string{"AS", "AC", "QS", "QD", "2C"},
			1,
		},
		{
			"HighCardChain",
			[]string{"5D", "8C", "9S", "JS", "AC"},
			[]string{"2C", "5C", "7D", "8S", "QH"},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := mustHand(t, tt.first...)
			second := mustHand(t, tt.second...)
			assert.Equal(t, tt.expected, first.Compare(second))
			assert.Equal(t, -tt.expected, second.Compare(first))
		})
	}
}

func TestParseRound(t *testing.T) {
	first, second, err := parseRound("TS JS QS KS AS 2C 3D 4H 5S 6C")
	require.NoError(t, err)
	assert.Equal(t, RoyalFlush, first.Rank().Category)
	assert.Equal(t, Straight, second.Rank().Category)

	_, _, err = parseRound("TS JS QS")
	assert.Error(t, err)
}

func TestHandString(t *testing.T) {
	hand := mustHand(t, "2D", "AC", "TS", "5H", "5C")
	assert.Equal(t, "[AC, TS, 5H, 5C, 2D]", fmt.Sprint(hand))
}

func TestPokerAnswer(t *testing.T) {
	assert.Equal(t, "6", solveAnswer(t, "poker"))
}
