package scoring

// Category identifies one of the thirteen boxes on a score table.
//
// The declaration order is the canonical display order and must not
// change: table rendering and the "next empty box" cursor both iterate
// Categories() in this order.
type Category int

const (
	Aces Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance
)

// NumCategories is the number of boxes on a score table.
const NumCategories = 13

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, 0, NumCategories)
	for c := Aces; c <= Chance; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the thirteen categories.
func (c Category) Valid() bool {
	return c >= Aces && c <= Chance
}

// Upper reports whether c belongs to the upper section.
func (c Category) Upper() bool {
	return c >= Aces && c <= Sixes
}

// Face returns the face value an upper-section category counts,
// or 0 for lower-section categories.
func (c Category) Face() int {
	if !c.Upper() {
		return 0
	}
	return int(c) + 1
}

func (c Category) String() string {
	switch c {
	case Aces:
		return "Aces"
	case Twos:
		return "Twos"
	case Threes:
		return "Threes"
	case Fours:
		return "Fours"
	case Fives:
		return "Fives"
	case Sixes:
		return "Sixes"
	case ThreeOfAKind:
		return "Three of a kind"
	case FourOfAKind:
		return "Four of a kind"
	case FullHouse:
		return "Full house"
	case SmallStraight:
		return "Small straight"
	case LargeStraight:
		return "Large straight"
	case Yahtzee:
		return "Yahtzee"
	case Chance:
		return "Chance"
	default:
		return "Unknown"
	}
}
