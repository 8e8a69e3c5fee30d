// Package scoring evaluates a final hand against the thirteen boxes.
package scoring

import (
	"fmt"
	"sort"

	"github.com/louisbranch/yahtzee/internal/core/dice"
)

// Fixed scores for the lower-section boxes that do not sum dice.
const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50
)

// Score returns the score the given hand earns in category c.
//
// Score is pure and total over complete hands. Passing anything other
// than exactly five pip values is a caller bug and panics; the turn
// machine only offers a hand for selection once it is full.
func Score(c Category, pips []int) int {
	if len(pips) != dice.NumDice {
		panic(fmt.Sprintf("scoring: hand has %d dice, want %d", len(pips), dice.NumDice))
	}

	switch c {
	case Aces, Twos, Threes, Fours, Fives, Sixes:
		return upperSection(pips, c.Face())
	case ThreeOfAKind:
		return nOfAKind(pips, 3)
	case FourOfAKind:
		return nOfAKind(pips, 4)
	case FullHouse:
		return fullHouse(pips)
	case SmallStraight:
		return smallStraight(pips)
	case LargeStraight:
		return largeStraight(pips)
	case Yahtzee:
		return yahtzee(pips)
	case Chance:
		return sum(pips)
	default:
		panic(fmt.Sprintf("scoring: unknown category %d", c))
	}
}

// upperSection scores the sum of all dice showing face.
func upperSection(pips []int, face int) int {
	count := 0
	for _, p := range pips {
		if p == face {
			count++
		}
	}
	return count * face
}

// nOfAKind scores the sum of the whole hand when at least n dice share
// a face, and zero otherwise.
func nOfAKind(pips []int, n int) int {
	counts := faceCounts(pips)
	for _, c := range counts {
		if c >= n {
			return sum(pips)
		}
	}
	return 0
}

// fullHouse requires exactly two distinct faces with multiplicities
// two and three. Five of a kind does not qualify.
func fullHouse(pips []int) int {
	counts := faceCounts(pips)
	pair, triple := false, false
	for _, c := range counts {
		switch c {
		case 2:
			pair = true
		case 3:
			triple = true
		}
	}
	if pair && triple {
		return FullHouseScore
	}
	return 0
}

// smallStraight requires at least four consecutive faces among the
// distinct values of the hand.
func smallStraight(pips []int) int {
	uniq := distinctSorted(pips)
	if len(uniq) < 4 {
		return 0
	}

	run := 1
	for i := 1; i < len(uniq); i++ {
		if uniq[i] == uniq[i-1]+1 {
			run++
			if run >= 4 {
				return SmallStraightScore
			}
		} else {
			run = 1
		}
	}
	return 0
}

// largeStraight requires all five dice to form one consecutive run.
func largeStraight(pips []int) int {
	sorted := append([]int(nil), pips...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return 0
		}
	}
	return LargeStraightScore
}

// yahtzee requires all five dice to show the same face.
func yahtzee(pips []int) int {
	for _, p := range pips {
		if p != pips[0] {
			return 0
		}
	}
	return YahtzeeScore
}

func sum(pips []int) int {
	total := 0
	for _, p := range pips {
		total += p
	}
	return total
}

// faceCounts returns how many dice show each face, indexed by face.
func faceCounts(pips []int) [dice.NumFaces + 1]int {
	var counts [dice.NumFaces + 1]int
	for _, p := range pips {
		counts[p]++
	}
	return counts
}

// distinctSorted returns the distinct pip values in ascending order.
func distinctSorted(pips []int) []int {
	counts := faceCounts(pips)
	out := make([]int, 0, dice.NumFaces)
	for face := 1; face <= dice.NumFaces; face++ {
		if counts[face] > 0 {
			out = append(out, face)
		}
	}
	return out
}
