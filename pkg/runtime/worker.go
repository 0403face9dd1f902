package runtime

// Worker holds one scheduling lane: a stacklet deque, its aligned hypermap
// deque, and a view cache. It implements every control-point operation in
// §4 of the spec: call, spawn, return, steal, sync, plus the splitter ops
// in worker_splitter.go.
type Worker struct {
	ID    int
	Deque *Deque
	Hmaps *HypermapDeque
	Cache map[string]*View

	frameIDs *idAssigner
	viewIDs  *idAssigner
}

func newWorker(id int, frameIDs, viewIDs *idAssigner) *Worker {
	return &Worker{
		ID:       id,
		Deque:    &Deque{},
		Hmaps:    newHypermapDeque(),
		Cache:    make(map[string]*View),
		frameIDs: frameIDs,
		viewIDs:  viewIDs,
	}
}

// Idle reports whether the worker currently has no work assigned.
func (w *Worker) Idle() bool { return w.Deque.isEmpty() }

// Call creates a new call-kind frame atop the current activation.
func (w *Worker) Call() error {
	if w.Deque.isEmpty() {
		return ErrEmptyDeque
	}
	st := w.Deque.tail()
	parent := st.youngest()
	f := newFrame(w.frameIDs.assign(), Call, w)
	f.attach(parent)
	st.push(f)
	return nil
}

// Spawn creates a new spawn-kind frame in a fresh stacklet, with a fresh
// hypermap chained off the previous youngest HMap.
func (w *Worker) Spawn() error {
	if w.Deque.isEmpty() {
		return ErrEmptyDeque
	}
	parent := w.Deque.tail().youngest()
	f := newFrame(w.frameIDs.assign(), Spawn, w)
	f.attach(parent)
	w.Deque.push(newStacklet(f))
	w.Hmaps.appendFresh(newHMap(w.Hmaps.youngestHmap()))
	return nil
}

// Return retires the worker's current activation. Call-returns may keep the
// stacklet alive (more call frames remain) or destroy it and unconditionally
// reclaim the parent; spawn-returns always destroy the stacklet and, if the
// deque empties, attempt a provably-good steal of the parent.
func (w *Worker) Return() error {
	if w.Deque.isEmpty() {
		return ErrEmptyDeque
	}
	st := w.Deque.tail()
	r := st.youngest()
	if r.Kind == Initial {
		return ErrReturnFromInitial
	}
	if len(r.Children) != 0 {
		return ErrOutstandingChildren
	}
	if r.Kind == Spawn {
		if err := checkFullyPopped(w.Hmaps.youngestHmap()); err != nil {
			return err
		}
	}

	p := r.Parent
	r.Worker = nil
	r.detachFromParent()

	switch r.Kind {
	case Call:
		return w.returnFromCall(st, p)
	case Spawn:
		return w.returnFromSpawn(p)
	default:
		assertf(false, "return on frame of unexpected kind")
		return nil
	}
}

func (w *Worker) returnFromCall(st *Stacklet, p *Frame) error {
	if !st.singleFrame() {
		st.pop()
		return nil
	}
	w.Deque.pop()
	discarded := w.Hmaps.popLastList()
	if w.Deque.isEmpty() {
		w.unconditionalSteal(p, discarded)
	}
	return nil
}

// unconditionalSteal reclaims p for w with no children-emptiness check,
// per the resolved open question (DESIGN.md). Splitter lineage continues
// transparently: the fresh chunk for p chains off the discarded chunk's
// youngest HMap.
func (w *Worker) unconditionalSteal(p *Frame, discarded []*HMap) {
	assertf(p.Worker == nil, "unconditional steal target already owned")
	p.Worker = w
	w.Deque.push(newStacklet(p))
	w.Hmaps.pushList([]*HMap{newHMap(discarded[len(discarded)-1])})
}

func (w *Worker) returnFromSpawn(p *Frame) error {
	w.Deque.pop()
	discarded := w.Hmaps.popLastList()
	if !w.Deque.isEmpty() {
		return nil
	}
	w.attemptProvablyGoodSteal(p, discarded)
	return nil
}

// attemptProvablyGoodSteal is called when a spawn-return empties w's deque
// (p is the returning frame's parent) and by Sync on the frame it has just
// suspended. If p is still
// actively owned by some worker, it was never suspended at a sync, so there
// is nothing to resume and donated is dropped: some other still-outstanding
// sibling or p itself will reach sync eventually, at which point a fresh
// detachment picks up from wherever p's execution then stands. If p is
// unowned it must have been suspended (the only other way a frame with
// outstanding children loses its worker), so donated is folded into its
// detachment payload, and p is resumed immediately once it has no
// outstanding children left.
func (w *Worker) attemptProvablyGoodSteal(p *Frame, donated []*HMap) {
	if p.Worker != nil {
		return
	}
	assertf(p.detach != nil, "unowned frame with no detachment payload")
	p.detach.HMapList = append(p.detach.HMapList, donated...)
	if len(p.Children) == 0 {
		w.resumeSuspended(p)
	}
}

func (w *Worker) resumeSuspended(p *Frame) {
	merged := mergeHMapList(p.detach.HMapList)
	p.detach = nil
	p.Worker = w
	w.Deque.push(newStacklet(p))
	w.Hmaps.pushList([]*HMap{merged})
	w.Cache = make(map[string]*View)
}

// Sync suspends the current activation at a join point, or is a no-op if
// other local work remains.
func (w *Worker) Sync() error {
	if w.Deque.isEmpty() {
		return ErrEmptyDeque
	}
	if !w.Deque.isSingleFrame() {
		return nil
	}
	c := w.Deque.tail().youngest()
	w.Deque.pop()
	list := w.Hmaps.popLastList()
	c.Worker = nil
	c.detach = &detachment{HMapList: list}
	w.Cache = make(map[string]*View)
	w.attemptProvablyGoodSteal(c, nil)
	return nil
}

// Steal claims the victim's oldest stacklet, keeping only its youngest
// frame; the intermediate call-frames are de-facto completed from the
// thief's perspective (§4.6).
func (w *Worker) Steal(victim *Worker) error {
	if !w.Deque.isEmpty() {
		return ErrNonemptyDeque
	}
	if victim.Deque.Len() < 2 {
		return ErrInsufficientVictim
	}
	st := victim.Deque.popHead()
	y := st.youngest()
	for _, f := range st.Frames[:len(st.Frames)-1] {
		f.Worker = nil
	}
	y.Worker = w
	st.Frames = []*Frame{y}
	w.Deque.push(st)

	list := victim.Hmaps.popHeadList()
	w.Hmaps.pushList(list)
	w.Hmaps.appendToYoungestList(newHMap(list[len(list)-1]))
	w.Cache = make(map[string]*View)
	return nil
}

func checkFullyPopped(h *HMap) error {
	for s, top := range h.TopMap {
		if top != h.BaseMap[s] {
			return ErrUnpoppedOnReturn
		}
	}
	return nil
}
