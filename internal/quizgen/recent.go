package quizgen

// RecentWindow is the default anti-repeat window size.
const RecentWindow = 7

// Recent is a bounded FIFO of recently shown composite ids. Process-lifetime
// only; it is never persisted and resets on restart.
type Recent struct {
	cap int
	ids []string
}

// NewRecent creates a window holding up to n ids. n < 1 falls back to the
// default window size.
func NewRecent(n int) *Recent {
	if n < 1 {
		n = RecentWindow
	}
	return &Recent{cap: n}
}

// Remember appends an id, evicting the oldest when the window is full.
func (r *Recent) Remember(id string) {
	r.ids = append(r.ids, id)
	if len(r.ids) > r.cap {
		r.ids = r.ids[1:]
	}
}

// Contains reports whether the id is in the window.
func (r *Recent) Contains(id string) bool {
	for _, v := range r.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Len returns the number of ids currently remembered.
func (r *Recent) Len() int {
	return len(r.ids)
}
