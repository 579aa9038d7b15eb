package poker

// SelectShowdown picks the cards that justify a classification out of the
// seven showdown cards (two hole cards plus the board, sorted ascending).
// The result is ordered highest-relevance first and holds at most five
// cards. For a bare high card only the deciding card is returned.
func SelectShowdown(class HandClass, cards []Card) []Card {
	switch class.Type {
	case HighCard:
		return []Card{cards[len(cards)-1]}
	case Pair, ThreeOfAKind, FourOfAKind:
		return takeByRank(cards, class.Rank)
	case TwoPair, FullHouse:
		return takeByRank(cards, class.Rank, class.SecondRank)
	case Straight:
		return straightCards(cards, class.Rank)
	case Flush:
		return flushCards(cards)
	case StraightFlush:
		return straightCards(suitGroup(cards), class.Rank)
	default:
		return nil
	}
}

// takeByRank filters the cards matching any of the wanted ranks, descending,
// truncated to five.
func takeByRank(cards []Card, ranks ...Rank) []Card {
	out := make([]Card, 0, 5)
	for _, c := range cards {
		for _, r := range ranks {
			if c.Rank == r {
				out = append(out, c)
				break
			}
		}
	}
	sortCardsDesc(out)
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// straightCards walks the rank ring downward starting at the straight's
// high rank and collects one card per rank. The ring wraps from Two back to
// Ace, which is what makes the wheel (A-2-3-4-5) come out as Ace plus the
// four low cards.
func straightCards(cards []Card, high Rank) []Card {
	out := make([]Card, 0, 5)
	want := high
	for range 5 {
		for _, c := range cards {
			if c.Rank == want {
				out = append(out, c)
				break
			}
		}
		if want == Two {
			want = Ace
		} else {
			want--
		}
	}
	sortCardsDesc(out)
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// flushCards keeps the five highest cards of the largest suit group.
func flushCards(cards []Card) []Card {
	out := suitGroup(cards)
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// suitGroup partitions by suit and returns the largest group untruncated,
// sorted descending. Straight-flush selection needs every card of the suit:
// the straight can sit below the five highest. Groups are visited in the
// fixed Suit enumeration order, so an equal-length tie goes to the earlier
// suit.
func suitGroup(cards []Card) []Card {
	var groups [4][]Card
	for _, c := range cards {
		groups[c.Suit] = append(groups[c.Suit], c)
	}
	longest := groups[0]
	for _, g := range groups[1:] {
		if len(g) > len(longest) {
			longest = g
		}
	}
	out := make([]Card, len(longest))
	copy(out, longest)
	sortCardsDesc(out)
	return out
}
