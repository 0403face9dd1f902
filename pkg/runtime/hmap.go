package runtime

// HMap is a per-stacklet hypermap record: for every splitter active in that
// stacklet's execution chunk, BaseMap holds the view it had when the chunk
// began and TopMap holds its current view. BaseMap.keys() == TopMap.keys()
// always (H1); TopMap[s] reaches BaseMap[s] by following .Parent zero or
// more times (H2).
type HMap struct {
	BaseMap map[string]*View
	TopMap  map[string]*View
	Parent  *HMap
}

func newHMap(parent *HMap) *HMap {
	return &HMap{
		BaseMap: make(map[string]*View),
		TopMap:  make(map[string]*View),
		Parent:  parent,
	}
}

func (h *HMap) contains(splitter string) bool {
	_, ok := h.BaseMap[splitter]
	return ok
}

func (h *HMap) topView(splitter string) *View { return h.TopMap[splitter] }
