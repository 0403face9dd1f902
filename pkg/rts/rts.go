// Package rts is the dispatcher: it owns a runtime.System plus the action
// history, routes parsed actions to worker methods, and implements undo by
// full replay (§4.9).
package rts

import (
	"github.com/ha1tch/rtsim/pkg/action"
	"github.com/ha1tch/rtsim/pkg/runtime"
)

// RTS drives one runtime.System from a sequence of actions.
type RTS struct {
	numWorkers int
	sys        *runtime.System
	history    []action.Action
}

// New constructs an RTS with numWorkers blank workers and the initial frame
// on the lowest-index worker.
func New(numWorkers int) *RTS {
	return &RTS{numWorkers: numWorkers, sys: runtime.NewSystem(numWorkers)}
}

// System returns the live scheduler/splitter state, for display.
func (r *RTS) System() *runtime.System { return r.sys }

// History returns the actions successfully applied so far, in order.
func (r *RTS) History() []action.Action { return r.history }

// Do applies a, appending it to history on success. On failure, state is
// rebuilt by replaying the existing history, discarding any partial
// mutation the failed attempt may have made.
func (r *RTS) Do(a action.Action) error {
	switch a.Kind {
	case action.Undo:
		return r.undo()
	case action.Help:
		return nil
	}
	if err := r.apply(a); err != nil {
		r.restore(r.history)
		return err
	}
	r.history = append(r.history, a)
	return nil
}

func (r *RTS) undo() error {
	if len(r.history) == 0 {
		return nil
	}
	kept := r.history[:len(r.history)-1]
	r.restore(kept)
	r.history = kept
	return nil
}

// restore rebuilds the system from scratch and replays h. h is assumed to
// contain only actions that previously applied cleanly.
func (r *RTS) restore(h []action.Action) {
	r.sys = runtime.NewSystem(r.numWorkers)
	for _, prev := range h {
		_ = r.apply(prev)
	}
}

func (r *RTS) apply(a action.Action) error {
	if !r.validWorker(a.Worker) {
		return runtime.ErrUnknownWorker
	}
	w := r.sys.Workers[a.Worker]
	switch a.Kind {
	case action.Call:
		return w.Call()
	case action.Spawn:
		return w.Spawn()
	case action.Return:
		return w.Return()
	case action.Sync:
		return w.Sync()
	case action.Steal:
		if !r.validWorker(a.Victim) {
			return runtime.ErrUnknownWorker
		}
		return w.Steal(r.sys.Workers[a.Victim])
	case action.Push:
		return w.Push(a.Splitter)
	case action.Set:
		return w.Set(a.Splitter, a.Value)
	case action.Pop:
		return w.Pop(a.Splitter)
	case action.Access:
		_, err := w.Access(a.Splitter)
		return err
	case action.Write:
		return w.Write(a.Splitter, a.Value)
	default:
		return runtime.ErrUnknownWorker
	}
}

func (r *RTS) validWorker(idx int) bool {
	return idx >= 0 && idx < r.numWorkers
}
