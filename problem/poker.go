package problem

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed poker.txt
var pokerHandsText string

// Poker counts how many rounds the first player wins in a file of
// two-player five-card draw rounds.
type Poker struct{}

// NewPoker returns the solver over the embedded rounds file.
func NewPoker() *Poker {
	return &Poker{}
}

func (p *Poker) Name() string { return "poker" }

func (p *Poker) Solve(ctx context.Context, env *Context) (string, error) {
	var wins int
	for i, line := range strings.Split(strings.TrimSpace(pokerHandsText), "\n") {
		first, second, err := parseRound(line)
		if err != nil {
			return "", fmt.Errorf("round %d: %w", i+1, err)
		}
		switch cmp := first.Compare(second); {
		case cmp > 0:
			wins++
		case cmp == 0:
			return "", fmt.Errorf("round %d: hands %v and %v rank equal", i+1, first, second)
		}
	}
	return strconv.Itoa(wins), nil
}

func parseRound(line string) (Hand, Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 10 {
		return Hand{}, Hand{}, fmt.Errorf("expected 10 cards, got %d", len(fields))
	}
	cards := make([]Card, 10)
	for i, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return Hand{}, Hand{}, err
		}
		cards[i] = card
	}
	return NewHand(cards[:5]), NewHand(cards[5:]), nil
}

// Suit is one of the four card suits.
type Suit uint8

const (
	Diamonds Suit = iota
	Hearts
	Clubs
	Spades
)

// ParseSuit decodes the single-letter suit code.
func ParseSuit(c byte) (Suit, error) {
	switch c {
	case 'D':
		return Diamonds, nil
	case 'H':
		return Hearts, nil
	case 'C':
		return Clubs, nil
	case 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", c)
	}
}

func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

// Value is a card value with aces high: Two is 2 and Ace is 14.
type Value uint8

const (
	Ten   Value = 10
	Jack  Value = 11
	Queen Value = 12
	King  Value = 13
	Ace   Value = 14
)

// ParseValue decodes the single-character value code.
func ParseValue(c byte) (Value, error) {
	switch c {
	case 'A':
		return Ace, nil
	case 'K':
		return King, nil
	case 'Q':
		return Queen, nil
	case 'J':
		return Jack, nil
	case 'T':
		return Ten, nil
	default:
		if c >= '2' && c <= '9' {
			return Value(c - '0'), nil
		}
		return 0, fmt.Errorf("invalid card value %q", c)
	}
}

func (v Value) String() string {
	switch v {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	case Ten:
		return "T"
	default:
		return strconv.Itoa(int(v))
	}
}

// Card is a playing card.
type Card struct {
	Value Value
	Suit  Suit
}

// ParseCard decodes a two-character card code such as "TS" or "4H".
func ParseCard(text string) (Card, error) {
	if len(text) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", text)
	}
	value, err := ParseValue(text[0])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", text, err)
	}
	suit, err := ParseSuit(text[1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", text, err)
	}
	return Card{Value: value, Suit: suit}, nil
}

func (c Card) String() string {
	return c.Value.String() + c.Suit.String()
}

// Hand is five cards sorted descending by value.
type Hand [5]Card

// NewHand sorts the given five cards into a hand. It panics if the slice
// does not hold exactly five cards.
func NewHand(cards []Card) Hand {
	if len(cards) != 5 {
		panic(fmt.Sprintf("poker hand needs 5 cards, got %d", len(cards)))
	}
	var hand Hand
	copy(hand[:], cards)
	sort.SliceStable(hand[:], func(i, j int) bool {
		return hand[i].Value > hand[j].Value
	})
	return hand
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, card := range h {
		parts[i] = card.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Category is a hand category, ordered weakest first.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Rank is a fully comparable hand strength: the category followed by the
// tiebreak values, group values first ordered by multiplicity then value,
// kickers after.
type Rank struct {
	Category Category
	Values   []Value
}

// Compare orders h against other: positive if h wins, negative if other
// wins, zero for an exact tie.
func (h Hand) Compare(other Hand) int {
	left, right := h.Rank(), other.Rank()
	if left.Category != right.Category {
		if left.Category > right.Category {
			return 1
		}
		return -1
	}
	for i := range left.Values {
		if left.Values[i] != right.Values[i] {
			if left.Values[i] > right.Values[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Rank classifies the hand.
func (h Hand) Rank() Rank {
	flush := true
	for _, card := range h[1:] {
		if card.Suit != h[0].Suit {
			flush = false
			break
		}
	}

	// groups are (value, multiplicity) pairs ordered by multiplicity then
	// value, both descending, which is exactly the tiebreak order.
	type group struct {
		value Value
		count int
	}
	var groups []group
	for _, card := range h {
		if n := len(groups); n > 0 && groups[n-1].value == card.Value {
			groups[n-1].count++
		} else {
			groups = append(groups, group{value: card.Value})
			groups[len(groups)-1].count = 1
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})
	values := make([]Value, len(groups))
	for i, g := range groups {
		values[i] = g.value
	}

	straight := len(groups) == 5 && h[0].Value-h[4].Value == 4

	switch {
	case straight && flush:
		if h[0].Value == Ace {
			return Rank{Category: RoyalFlush}
		}
		return Rank{Category: StraightFlush, Values: values[:1]}
	case groups[0].count == 4:
		return Rank{Category: FourOfAKind, Values: values}
	case groups[0].count == 3 && len(groups) == 2:
		return Rank{Category: FullHouse, Values: values}
	case flush:
		return Rank{Category: Flush, Values: values}
	case straight:
		return Rank{Category: Straight, Values: values[:1]}
	case groups[0].count == 3:
		return Rank{Category: ThreeOfAKind, Values: values}
	case groups[0].count == 2 && groups[1].count == 2:
		return Rank{Category: TwoPairs, Values: values}
	case groups[0].count == 2:
		return Rank{Category: OnePair, Values: values}
	default:
		return Rank{Category: HighCard, Values: values}
	}
}
