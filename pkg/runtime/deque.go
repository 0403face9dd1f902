package runtime

// Deque is a worker's ordered sequence of stacklets. The head (index 0) is
// the steal end (oldest); the tail (last index) is the work end (youngest).
// Only the tail is touched by the owning worker's own operations; only the
// head may be removed, and only by a thief (cf. worksteal.go's Chase-Lev
// convention: owner works the bottom, thief steals the top).
type Deque struct {
	stacklets []*Stacklet
}

func (d *Deque) push(s *Stacklet) { d.stacklets = append(d.stacklets, s) }

func (d *Deque) pop() *Stacklet {
	n := len(d.stacklets)
	assertf(n > 0, "pop on empty deque")
	s := d.stacklets[n-1]
	d.stacklets = d.stacklets[:n-1]
	return s
}

// popHead removes and returns the oldest stacklet. Used only by steal.
func (d *Deque) popHead() *Stacklet {
	assertf(len(d.stacklets) > 0, "popHead on empty deque")
	s := d.stacklets[0]
	d.stacklets = d.stacklets[1:]
	return s
}

func (d *Deque) isEmpty() bool { return len(d.stacklets) == 0 }
func (d *Deque) Len() int      { return len(d.stacklets) }

func (d *Deque) tail() *Stacklet { return d.stacklets[len(d.stacklets)-1] }

// isSingleFrame reports whether the deque consists of exactly one stacklet
// containing exactly one frame.
func (d *Deque) isSingleFrame() bool {
	return len(d.stacklets) == 1 && d.stacklets[0].singleFrame()
}

// Stacklets returns the deque's stacklets, oldest to youngest, for display.
func (d *Deque) Stacklets() []*Stacklet { return d.stacklets }
