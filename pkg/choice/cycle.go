package choice

// Transition tells the cycle how to continue from its current position.
type Transition int

const (
	// Advance continues from the stored position.
	Advance Transition = iota
	// Reset restarts from the first candidate. Used when the filtered set
	// changes identity (new filter or new calendar key).
	Reset
)

func (t Transition) String() string {
	if t == Reset {
		return "reset"
	}
	return "advance"
}

// Cycle walks a filtered candidate list without immediate repeats until the
// list is exhausted, then wraps. The zero value starts at the first
// candidate.
type Cycle struct {
	position int
}

// Position is the index the next Advance will select.
func (c *Cycle) Position() int {
	return c.position
}

// Next selects an index into a list of length n and moves the position on.
// It returns false when the list is empty, leaving the position at zero.
func (c *Cycle) Next(n int, t Transition) (int, bool) {
	if t == Reset || n <= 0 {
		c.position = 0
	}
	if n <= 0 {
		return 0, false
	}
	selected := c.position % n
	c.position = (selected + 1) % n
	return selected, true
}
