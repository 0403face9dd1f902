// Package runtime implements the work-stealing scheduler kernel and the
// splitter (hyperobject) engine of the simulator.
//
// This package implements:
//   - Frame, Stacklet, Deque: the spawn-call tree and its per-worker scheduling partition
//   - View, HMap, HypermapDeque: per-splitter lineage chains and their per-stacklet scoping
//   - Worker: call, spawn, return, steal, sync, and the splitter control points
//
// Nothing in this package parses input or prints output; it is driven by
// the action dispatcher in package rts and rendered by package render.
package runtime
