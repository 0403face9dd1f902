// Command rtsim is the interactive work-stealing/splitter simulator.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ha1tch/rtsim/pkg/version"
)

const numWorkers = 4

func main() {
	args := parseFlags(os.Args[1:])

	r := newRunner(numWorkers)

	if len(args) > 0 {
		runBatchFile(r, args[0])
	}

	runInteractive(r, bufio.NewReader(os.Stdin))
}

func parseFlags(args []string) []string {
	var result []string
	for _, arg := range args {
		switch arg {
		case "-v", "--version":
			fmt.Println("rtsim", version.Version)
			os.Exit(0)
		case "-h", "--help":
			printUsage()
			os.Exit(0)
		default:
			result = append(result, arg)
		}
	}
	return result
}

func printUsage() {
	fmt.Println(`rtsim - work-stealing/splitter runtime simulator v` + version.Version + `

USAGE:
    rtsim [OPTIONS] [batch-file]

OPTIONS:
    -v, --version    Print version and exit
    -h, --help       Print this help message and exit

ACTIONS (one per line, interactive or batch):
    call <worker>
    spawn <worker>
    return <worker>
    steal <thief> <victim>
    sync <worker>
    push <worker> <splitter>
    set <worker> <splitter> <value>
    pop <worker> <splitter>
    access <worker> <splitter>
    write <worker> <splitter> <value>
    undo
    help

NOTE:
    A batch file is processed line by line, echoing each queued line, before
    falling into the interactive loop. EOF on stdin ends the session.`)
}
