package poker

import (
	"fmt"
	"math/bits"
)

// HandType enumerates the categories of poker hands from weakest to
// strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable hand description.
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the comparable strength of a 7-card hand. Higher values are
// stronger. The encoding packs the hand type above five rank nibbles in
// significance order, so integer comparison implements poker comparison.
type HandRank uint32

// Type returns the hand category the rank encodes.
func (hr HandRank) Type() HandType {
	return HandType(hr >> 20)
}

// Compare returns 1 if a is stronger, -1 if b is stronger, 0 for a tie.
func Compare(a, b HandRank) int {
	if a > b {
		return 1
	}
	if a < b {
		return -1
	}
	return 0
}

// HandClass is the classification of a hand: its type plus the constituent
// rank(s) the display selector needs to pick out the winning cards.
type HandClass struct {
	Type HandType
	// Rank is the defining rank: the paired/tripled/quadded rank, the
	// straight's high card, the two-pair high pair or the full house trips.
	Rank Rank
	// SecondRank is the two-pair low pair or the full house pair.
	SecondRank Rank
}

func (hc HandClass) String() string {
	return hc.Type.String()
}

// Evaluate7 ranks and classifies the best 5-card hand among exactly seven
// cards.
func Evaluate7(cards []Card) (HandRank, HandClass, error) {
	if len(cards) != 7 {
		return 0, HandClass{}, fmt.Errorf("evaluate: want 7 cards, have %d", len(cards))
	}

	var suitMasks [4]uint16
	var rankMask uint16
	for _, c := range cards {
		suitMasks[c.Suit] |= 1 << c.Rank.index()
		rankMask |= 1 << c.Rank.index()
	}

	// Flush and straight flush. At most one suit can hold five of seven
	// cards, so the first hit is the only hit.
	for _, mask := range suitMasks {
		if bits.OnesCount16(mask) < 5 {
			continue
		}
		if hi := straightHigh(mask); hi >= 0 {
			return encode(StraightFlush, hi),
				HandClass{Type: StraightFlush, Rank: rankFromIndex(hi)}, nil
		}
		top := topIndices(mask, 5, 0)
		return encode(Flush, top...),
			HandClass{Type: Flush, Rank: rankFromIndex(top[0])}, nil
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quadsMask != 0 {
		quad := highestIndex(quadsMask)
		kicker := highestIndex(rankMask &^ (1 << quad))
		return encode(FourOfAKind, quad, kicker),
			HandClass{Type: FourOfAKind, Rank: rankFromIndex(quad)}, nil
	}

	if tripsMask != 0 {
		trip := highestIndex(tripsMask)
		pairCandidates := pairsMask | (tripsMask &^ (1 << trip))
		if pairCandidates != 0 {
			pair := highestIndex(pairCandidates)
			return encode(FullHouse, trip, pair),
				HandClass{Type: FullHouse, Rank: rankFromIndex(trip), SecondRank: rankFromIndex(pair)}, nil
		}
	}

	if hi := straightHigh(rankMask); hi >= 0 {
		return encode(Straight, hi),
			HandClass{Type: Straight, Rank: rankFromIndex(hi)}, nil
	}

	if tripsMask != 0 {
		trip := highestIndex(tripsMask)
		kickers := topIndices(rankMask, 2, 1<<trip)
		return encode(ThreeOfAKind, trip, kickers[0], kickers[1]),
			HandClass{Type: ThreeOfAKind, Rank: rankFromIndex(trip)}, nil
	}

	if bits.OnesCount16(pairsMask) >= 2 {
		high := highestIndex(pairsMask)
		low := highestIndex(pairsMask &^ (1 << high))
		kicker := highestIndex(rankMask &^ (1<<high | 1<<low))
		return encode(TwoPair, high, low, kicker),
			HandClass{Type: TwoPair, Rank: rankFromIndex(high), SecondRank: rankFromIndex(low)}, nil
	}

	if pairsMask != 0 {
		pair := highestIndex(pairsMask)
		kickers := topIndices(rankMask, 3, 1<<pair)
		return encode(Pair, pair, kickers[0], kickers[1], kickers[2]),
			HandClass{Type: Pair, Rank: rankFromIndex(pair)}, nil
	}

	top := topIndices(rankMask, 5, 0)
	return encode(HighCard, top...),
		HandClass{Type: HighCard, Rank: rankFromIndex(top[0])}, nil
}

// encode packs the hand type and up to five rank indices, most significant
// first, into a HandRank.
func encode(t HandType, rankIndices ...int) HandRank {
	r := uint32(t) << 20
	shift := 16
	for _, idx := range rankIndices {
		r |= uint32(idx) << shift
		shift -= 4
	}
	return HandRank(r)
}

// highestIndex returns the highest set rank index of a nonempty mask.
func highestIndex(mask uint16) int {
	return bits.Len16(mask) - 1
}

// topIndices returns the n highest rank indices of mask, descending,
// excluding any bits in exclude.
func topIndices(mask uint16, n int, exclude uint16) []int {
	mask &^= exclude
	out := make([]int, 0, n)
	for len(out) < n && mask != 0 {
		top := highestIndex(mask)
		out = append(out, top)
		mask &^= 1 << top
	}
	return out
}

// straightHigh returns the rank index of the highest straight in the mask,
// or -1 when there is none. The wheel returns Five's index.
func straightHigh(mask uint16) int {
	const wheel = 0x100F // Ace plus 2-3-4-5

	// The cascade keeps only bits that start a run of five.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return highestIndex(seq) + 4
	}
	if mask&wheel == wheel {
		return Five.index()
	}
	return -1
}
