package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ha1tch/rtsim/pkg/runtime"
)

// WorkerDeque renders one worker's stacklet deque, oldest to youngest, with
// the active (tail) stacklet marked and greyed.
func WorkerDeque(w *runtime.Worker) string {
	var b strings.Builder
	stacklets := w.Deque.Stacklets()
	for i, st := range stacklets {
		label := "        "
		active := i == len(stacklets)-1
		if active {
			label = "Active: "
		}
		var frames []string
		for _, f := range st.Frames {
			frames = append(frames, f.String())
		}
		line := label + strings.Join(frames, "\t\t")
		if active {
			line = Color(line, "grey")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// WorkerHypermaps renders one worker's hypermap-deque lists and view cache,
// when splitter state is in play. Each list is shown as its HMaps'
// base->top view values per splitter, oldest to youngest.
func WorkerHypermaps(w *runtime.Worker) string {
	var b strings.Builder
	for i, list := range w.Hmaps.Lists() {
		fmt.Fprintf(&b, "  list %d:\n", i)
		for j, h := range list {
			fmt.Fprintf(&b, "    hmap %d: %s\n", j, formatHMap(h))
		}
	}
	if len(w.Cache) > 0 {
		names := make([]string, 0, len(w.Cache))
		for s := range w.Cache {
			names = append(names, s)
		}
		sort.Strings(names)
		var parts []string
		for _, s := range names {
			parts = append(parts, fmt.Sprintf("%s=%s", s, w.Cache[s].Value))
		}
		fmt.Fprintf(&b, "  cache: {%s}\n", strings.Join(parts, ", "))
	}
	return b.String()
}

func formatHMap(h *runtime.HMap) string {
	names := make([]string, 0, len(h.TopMap))
	for s := range h.TopMap {
		names = append(names, s)
	}
	sort.Strings(names)
	var parts []string
	for _, s := range names {
		parts = append(parts, fmt.Sprintf("%s: base=%s top=%s", s, h.BaseMap[s].Value, h.TopMap[s].Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// State renders the full system: frame tree, then every worker's deque and
// hypermap state, matching the teacher-style print_state layout.
func State(sys *runtime.System) string {
	var b strings.Builder
	b.WriteString("Full frame tree:\n\n")
	b.WriteString(Tree(sys.Initial))
	b.WriteString("\nWorker deques:\n\n")
	for _, w := range sys.Workers {
		fmt.Fprintf(&b, "* Worker %d *\n", w.ID)
		b.WriteString(WorkerDeque(w))
		b.WriteString(WorkerHypermaps(w))
		b.WriteString("\n")
	}
	return b.String()
}
