package lobby

import "poks/internal/game"

// actionRing keeps the most recent hand-history entries in a fixed-size
// ring. Old entries fall off the front once the capacity is reached.
type actionRing struct {
	entries []game.LogEntry
	start   int
	cap     int
}

func newActionRing(capacity int) *actionRing {
	return &actionRing{
		entries: make([]game.LogEntry, 0, capacity),
		cap:     capacity,
	}
}

func (r *actionRing) push(e game.LogEntry) {
	if len(r.entries) < r.cap {
		r.entries = append(r.entries, e)
		return
	}
	r.entries[r.start] = e
	r.start = (r.start + 1) % r.cap
}

func (r *actionRing) len() int {
	return len(r.entries)
}

// snapshot returns the entries oldest first.
func (r *actionRing) snapshot() []game.LogEntry {
	out := make([]game.LogEntry, 0, len(r.entries))
	out = append(out, r.entries[r.start:]...)
	out = append(out, r.entries[:r.start]...)
	return out
}
