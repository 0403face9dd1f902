package render

import (
	"strings"

	"github.com/ha1tch/rtsim/pkg/runtime"
)

// Tree renders the full frame tree rooted at initial, using ASCII branch
// glyphs: "|-" for a non-last child, "`-" for the last, with "|" or a space
// for continuation columns beneath.
func Tree(initial *runtime.Frame) string {
	lines := frameLines(initial)
	return strings.Join(lines, "\n") + "\n"
}

func frameLines(f *runtime.Frame) []string {
	lines := []string{f.String()}
	children := f.Children
	for i, child := range children {
		childLines := frameLines(child)
		last := i == len(children)-1
		if last {
			lines = append(lines, "`-"+childLines[0])
			for _, l := range childLines[1:] {
				lines = append(lines, "  "+l)
			}
		} else {
			lines = append(lines, "|-"+childLines[0])
			for _, l := range childLines[1:] {
				lines = append(lines, "| "+l)
			}
		}
	}
	return lines
}
