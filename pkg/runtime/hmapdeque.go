package runtime

// HypermapDeque is one per worker: a list whose i-th entry is itself a list
// of HMaps (oldest to youngest) corresponding to the i-th stacklet in the
// worker's deque. Its length is always exactly the stacklet deque's length.
type HypermapDeque struct {
	lists [][]*HMap
}

func newHypermapDeque() *HypermapDeque { return &HypermapDeque{} }

// appendFresh starts a new hypermap list containing a single fresh HMap,
// corresponding to a freshly pushed stacklet (spawn, or the initial frame).
func (d *HypermapDeque) appendFresh(hmap *HMap) { d.lists = append(d.lists, []*HMap{hmap}) }

// pushList appends an existing list as a whole, corresponding to a stacklet
// transferred by steal or reclaimed by unconditional/provably-good steal.
func (d *HypermapDeque) pushList(list []*HMap) { d.lists = append(d.lists, list) }

// popHeadList removes and returns the oldest list, paired with Deque.popHead.
func (d *HypermapDeque) popHeadList() []*HMap {
	assertf(len(d.lists) > 0, "popHeadList on empty hypermap deque")
	l := d.lists[0]
	d.lists = d.lists[1:]
	return l
}

// popLastList removes and returns the youngest list, paired with Deque.pop
// when a stacklet is destroyed on return.
func (d *HypermapDeque) popLastList() []*HMap {
	n := len(d.lists)
	assertf(n > 0, "popLastList on empty hypermap deque")
	l := d.lists[n-1]
	d.lists = d.lists[:n-1]
	return l
}

// appendToYoungestList appends hmap to the end of the youngest list, used
// when a worker starts a fresh execution chunk atop an inherited chain.
func (d *HypermapDeque) appendToYoungestList(hmap *HMap) {
	n := len(d.lists)
	assertf(n > 0, "appendToYoungestList on empty hypermap deque")
	d.lists[n-1] = append(d.lists[n-1], hmap)
}

func (d *HypermapDeque) oldestHmaps() []*HMap    { return d.lists[0] }
func (d *HypermapDeque) youngestHmaps() []*HMap  { return d.lists[len(d.lists)-1] }
func (d *HypermapDeque) youngestHmap() *HMap     { l := d.youngestHmaps(); return l[len(l)-1] }
func (d *HypermapDeque) oldestOfYoungest() *HMap { return d.youngestHmaps()[0] }

func (d *HypermapDeque) Len() int { return len(d.lists) }

// Lists exposes the raw list-of-lists for display.
func (d *HypermapDeque) Lists() [][]*HMap { return d.lists }
