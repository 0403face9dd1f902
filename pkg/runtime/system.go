package runtime

// System is the full scheduler+splitter state: every worker, the initial
// frame, and the id generators shared across them. It owns no action
// history; package rts drives a System and keeps the history for undo.
type System struct {
	Workers []*Worker
	Initial *Frame

	frameIDs *idAssigner
	viewIDs  *idAssigner
}

// InitSplitterValue is the value every default splitter (x, y) starts with.
const InitSplitterValue = "init-val"

// NewSystem constructs numWorkers blank workers and gives the lowest-index
// worker the initial frame, with default splitters x and y already pushed.
func NewSystem(numWorkers int) *System {
	sys := &System{frameIDs: newIDAssigner(), viewIDs: newIDAssigner()}
	sys.Workers = make([]*Worker, numWorkers)
	for i := range sys.Workers {
		sys.Workers[i] = newWorker(i, sys.frameIDs, sys.viewIDs)
	}

	w0 := sys.Workers[0]
	sys.Initial = newFrame(sys.frameIDs.assign(), Initial, w0)
	w0.Deque.push(newStacklet(sys.Initial))

	h := newHMap(nil)
	for _, s := range []string{"x", "y"} {
		v := newView(sys.viewIDs.assign(), InitSplitterValue, nil)
		h.BaseMap[s] = v
		h.TopMap[s] = v
	}
	w0.Hmaps.appendFresh(h)

	return sys
}

// NumWorkers reports how many workers this system was built with.
func (s *System) NumWorkers() int { return len(s.Workers) }
