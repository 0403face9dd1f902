package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ha1tch/rtsim/pkg/action"
	"github.com/ha1tch/rtsim/pkg/render"
	"github.com/ha1tch/rtsim/pkg/rts"
)

// runner pairs the dispatcher with its stdout sink.
type runner struct {
	r *rts.RTS
	w io.Writer
}

func newRunner(numWorkers int) *runner {
	return &runner{r: rts.New(numWorkers), w: os.Stdout}
}

// process parses and applies one input line, printing the parse/precondition
// error in the teacher's red-prefixed style on failure.
func (run *runner) process(line string) {
	a, err := action.Parse(line)
	if err != nil {
		fmt.Fprintln(run.w, render.Color(">> Unable to parse action", "red"))
		fmt.Fprintln(run.w)
		return
	}
	if err := run.r.Do(a); err != nil {
		fmt.Fprintln(run.w, render.Color(fmt.Sprintf(">> Invalid action: %s", err), "red"))
		fmt.Fprintln(run.w)
		return
	}
	if a.Kind == action.Help {
		printUsage()
	}
}

func runBatchFile(run *runner, path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fmt.Fprintln(run.w, render.State(run.r.System()))
		fmt.Fprintln(run.w, render.Color(fmt.Sprintf("> %s", line), "red"))
		run.process(line)
	}
}

func runInteractive(run *runner, in *bufio.Reader) {
	for {
		fmt.Fprintln(run.w, render.State(run.r.System()))
		fmt.Fprint(run.w, render.Color("> ", "red"))
		line, err := in.ReadString('\n')
		if err != nil {
			return
		}
		fmt.Fprintln(run.w)
		run.process(strings.TrimSpace(line))
	}
}
