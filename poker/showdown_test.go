package poker

import "testing"

// Each scenario feeds the sorted 7-card hand through the evaluator and
// checks that the selector picks exactly the cards justifying the result.
func TestSelectShowdown(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		cards []string
		want  string
	}{
		{"high card", []string{"Th", "2c", "3c", "4c", "5c", "7h", "8h"}, "T♥"},
		{"pair", []string{"Th", "Tc", "3c", "4c", "5c", "7h", "8h"}, "T♥ T♣"},
		{"two pair", []string{"Th", "Tc", "3c", "3h", "5c", "7h", "8h"}, "T♥ T♣ 3♥ 3♣"},
		{"trips", []string{"Th", "Tc", "Td", "5c", "6h", "7h", "8h"}, "T♥ T♦ T♣"},
		{"straight", []string{"Th", "3c", "4c", "5c", "6h", "7h", "8h"}, "8♥ 7♥ 6♥ 5♣ 4♣"},
		{"wheel straight", []string{"Ah", "3c", "4c", "2c", "5h", "7h", "8h"}, "A♥ 5♥ 4♣ 3♣ 2♣"},
		{"flush", []string{"Th", "3h", "4h", "5c", "6h", "7h", "8h"}, "T♥ 8♥ 7♥ 6♥ 4♥"},
		{"full house", []string{"Th", "Tc", "Td", "5c", "5h", "7h", "8h"}, "T♥ T♦ T♣ 5♥ 5♣"},
		{"quads", []string{"Th", "Tc", "Td", "Ts", "6h", "7h", "8h"}, "T♠ T♥ T♦ T♣"},
		{"straight flush", []string{"9h", "3c", "4h", "5h", "6h", "7h", "8h"}, "9♥ 8♥ 7♥ 6♥ 5♥"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cards := mustCards(t, tc.cards...)
			SortCards(cards)
			_, class, err := Evaluate7(cards)
			if err != nil {
				t.Fatal(err)
			}
			got := ShowCards(SelectShowdown(class, cards))
			if got != tc.want {
				t.Errorf("SelectShowdown(%v) = %q, want %q", class, got, tc.want)
			}
		})
	}
}

// With all seven cards suited the straight can sit below the five highest
// flush cards; the selection must still be the full five-card straight.
func TestSelectShowdownStraightFlushBelowTopFlushCards(t *testing.T) {
	t.Parallel()
	cards := mustCards(t, "Ah", "Kh", "9h", "8h", "7h", "6h", "5h")
	SortCards(cards)
	_, class, err := Evaluate7(cards)
	if err != nil {
		t.Fatal(err)
	}
	if class.Type != StraightFlush {
		t.Fatalf("type = %v, want straight flush", class.Type)
	}
	if class.Rank != Nine {
		t.Fatalf("high rank = %v, want Nine", class.Rank)
	}
	if got, want := ShowCards(SelectShowdown(class, cards)), "9♥ 8♥ 7♥ 6♥ 5♥"; got != want {
		t.Errorf("selection = %q, want %q", got, want)
	}
}

// A flush with six suited cards must keep only the five highest.
func TestSelectShowdownLongFlush(t *testing.T) {
	t.Parallel()
	cards := mustCards(t, "2h", "3h", "4h", "9h", "Th", "Qh", "8c")
	SortCards(cards)
	_, class, err := Evaluate7(cards)
	if err != nil {
		t.Fatal(err)
	}
	if class.Type != Flush {
		t.Fatalf("type = %v, want flush", class.Type)
	}
	got := SelectShowdown(class, cards)
	if len(got) != 5 {
		t.Fatalf("selected %d cards, want 5", len(got))
	}
	if want := "Q♥ T♥ 9♥ 4♥ 3♥"; ShowCards(got) != want {
		t.Errorf("selection = %q, want %q", ShowCards(got), want)
	}
}
