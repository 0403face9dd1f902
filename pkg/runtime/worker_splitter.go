package runtime

// Access returns the currently visible view of splitter s for the worker's
// current activation, walking the HMap parent chain if s has no local
// binding in the youngest HMap. Results are memoized in the worker's cache;
// Set and Pop drop the splitter's entry, and a steal, sync or resume clears
// the whole cache.
func (w *Worker) Access(splitter string) (*View, error) {
	if v, ok := w.Cache[splitter]; ok {
		return v, nil
	}
	v := resolveView(w.Hmaps.youngestHmap(), splitter)
	if v == nil {
		return nil, ErrUnknownSplitter
	}
	w.Cache[splitter] = v
	return v, nil
}

func resolveView(h *HMap, splitter string) *View {
	for cur := h; cur != nil; cur = cur.Parent {
		if cur.contains(splitter) {
			return cur.TopMap[splitter]
		}
	}
	return nil
}

// Push opens a new local scope for splitter, shadowing whatever value was
// previously visible: the new view starts as a copy of that value, chained
// to it as parent so a later Pop can step back. Pushing the same splitter
// more than once in the same chunk before popping is allowed; each Push
// nests one level deeper, and each Pop steps back exactly one level.
func (w *Worker) Push(splitter string) error {
	parent, err := w.Access(splitter)
	if err != nil {
		return err
	}
	h := w.Hmaps.youngestHmap()
	v := newView(w.viewIDs.assign(), parent.Value, parent)
	if !h.contains(splitter) {
		h.BaseMap[splitter] = parent
	}
	h.TopMap[splitter] = v
	w.Cache[splitter] = v
	return nil
}

// Set mutates the value of whatever view is currently visible for splitter,
// in place — the same view Access would return. It does not open a new
// local scope: setting a splitter that was never locally pushed in this
// chunk mutates an inherited ancestor's view directly, visible to every
// other chunk still sharing it, exactly as if no chunk boundary existed.
func (w *Worker) Set(splitter, value string) error {
	v, err := w.Access(splitter)
	if err != nil {
		return err
	}
	v.Value = value
	delete(w.Cache, splitter)
	return nil
}

// Write is an alias for Set; the grammar exposes both spellings but they
// have identical semantics (resolved open question, see DESIGN.md).
func (w *Worker) Write(splitter, value string) error { return w.Set(splitter, value) }

// Pop steps the current chunk's top view for splitter back one level,
// toward the chunk's base view. Popping a splitter this chunk never pushed,
// or popping past the point it first pushed it, is rejected
// (ErrPopOutOfScope). Returning with any splitter still unwound from its
// base is separately rejected (ErrUnpoppedOnReturn, spawn-returns only).
func (w *Worker) Pop(splitter string) error {
	h := w.Hmaps.youngestHmap()
	if !h.contains(splitter) || h.TopMap[splitter] == h.BaseMap[splitter] {
		return ErrPopOutOfScope
	}
	h.TopMap[splitter] = h.TopMap[splitter].Parent
	delete(w.Cache, splitter)
	return nil
}

// mergeHMapList combines a donated chain of HMaps — p's own chunk at the
// moment it was suspended, plus one donation per outstanding child,
// accumulated in whatever order those children happened to return — back
// into a single HMap. Children return in no particular order, so the merge
// cannot just fold the list left to right: for every splitter touched by
// more than one entry, it keeps whichever view is the most specific (the
// one found by following .Parent from the other), which is exactly the one
// still reflecting a push no one has popped yet. A splitter a later entry
// introduces that accum never locally touched is adopted directly.
func mergeHMapList(list []*HMap) *HMap {
	assertf(len(list) > 0, "merge of empty hmap list")
	accum := list[0]
	for _, child := range list[1:] {
		for s, childBase := range child.BaseMap {
			if _, ok := accum.BaseMap[s]; !ok {
				accum.BaseMap[s] = childBase
				accum.TopMap[s] = child.TopMap[s]
				continue
			}
			accum.TopMap[s] = mostSpecific(accum.TopMap[s], child.TopMap[s])
		}
	}
	return accum
}

// mostSpecific returns whichever of a, b is reachable from the other by
// following .Parent — the more deeply nested, still-shadowing view. Both
// ultimately chain back to the same ancestor (the splitter's binding at the
// moment their common parent frame spawned), so exactly one direction holds.
func mostSpecific(a, b *View) *View {
	for cur := b; cur != nil; cur = cur.Parent {
		if cur == a {
			return b
		}
	}
	for cur := a; cur != nil; cur = cur.Parent {
		if cur == b {
			return a
		}
	}
	assertf(false, "merge: views share no common ancestry")
	return nil
}
