package runtime

// idAssigner hands out stable monotonic ids starting at 0. Each System owns
// its own instances (one for frames, one for views), created fresh in
// NewSystem, never a package-level global — otherwise undo's full-replay
// reconstruction could not produce bit-identical ids.
type idAssigner struct {
	next int
}

func newIDAssigner() *idAssigner { return &idAssigner{} }

func (a *idAssigner) assign() int {
	id := a.next
	a.next++
	return id
}
