package runtime

// View is a node in a splitter's lineage chain: a value plus a parent link.
// Multiple views of the same splitter name exist simultaneously once
// different branches of the computation have pushed it. A view's lifetime
// ends when it is destroyed during a merge (see worker_splitter.go's merge).
type View struct {
	ID     int
	Value  string
	Parent *View
}

func newView(id int, value string, parent *View) *View {
	return &View{ID: id, Value: value, Parent: parent}
}
