package game

import (
	"testing"

	"poks/internal/currency"
	"poks/internal/randutil"
)

func TestActionSlotHoldsOneAction(t *testing.T) {
	slot := NewActionSlot()
	if !slot.Empty() {
		t.Fatal("new slot should be empty")
	}
	if !slot.Set(NewFold()) {
		t.Fatal("first deposit rejected")
	}
	if slot.Set(NewCheck()) {
		t.Fatal("second deposit must be rejected while one is pending")
	}
	if a := slot.take(); a == nil || a.Kind != ActionFold {
		t.Fatalf("take = %v, want the deposited fold", a)
	}
	if !slot.Empty() {
		t.Fatal("slot should be empty after take")
	}
	if slot.take() != nil {
		t.Fatal("empty take should return nil")
	}
}

func TestHumanActsOnlyWhenDecided(t *testing.T) {
	h := NewHuman()
	seats := []*Seat{
		NewSeat(currency.New(100, 0), h),
		NewSeat(currency.New(100, 0), NewCPU(randutil.New(7))),
	}
	g, err := Build(seats, 0, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	p := g.Players()[0]
	if a := h.Act(g, p); a != nil {
		t.Fatal("undecided human returned an action")
	}

	h.Slot().Set(NewCall(currency.New(0, 50)))
	a := h.Act(g, p)
	if a == nil || a.Kind != ActionCall {
		t.Fatalf("decided human returned %v", a)
	}
	if err := g.ProcessAction(a); err != nil {
		t.Fatalf("processing the human call: %v", err)
	}
	if a := h.Act(g, p); a != nil {
		t.Fatal("slot must drain after one poll")
	}
}
