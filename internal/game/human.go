package game

import "sync"

// ActionSlot is a single-action mailbox between an input source (a UI
// goroutine) and the engine. The input side deposits at most one pending
// action; the engine consumes it on its next poll. A deposit while an
// action is already pending is rejected so a slow engine never silently
// drops a decision.
type ActionSlot struct {
	mu      sync.Mutex
	pending *Action
}

// NewActionSlot creates an empty slot.
func NewActionSlot() *ActionSlot {
	return &ActionSlot{}
}

// Set deposits an action. It reports false when a previous action has not
// been consumed yet.
func (s *ActionSlot) Set(a Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		return false
	}
	s.pending = &a
	return true
}

// Empty reports whether the slot has no pending action.
func (s *ActionSlot) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending == nil
}

func (s *ActionSlot) take() *Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.pending
	s.pending = nil
	return a
}

// Human is a strategy driven by an external input source through an
// ActionSlot. It returns whatever action is pending, or nil when the
// player has not decided yet.
type Human struct {
	slot *ActionSlot
}

// NewHuman creates a human strategy with a fresh slot.
func NewHuman() *Human {
	return &Human{slot: NewActionSlot()}
}

// Slot returns the mailbox the input side writes decisions into.
func (h *Human) Slot() *ActionSlot {
	return h.slot
}

// Act implements Strategy.
func (h *Human) Act(_ *Game, _ *Player) *Action {
	return h.slot.take()
}
