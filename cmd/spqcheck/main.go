// Command spqcheck runs the stable priority queue scenarios and prints an
// assertion summary.
//
// Usage:
//
//	spqcheck                  Run every scenario
//	spqcheck -run ties,size   Run the named scenarios in order
//	spqcheck -list            List scenario names
//	spqcheck -v               Log each scenario as it runs
//
// The exit status is 1 when any assertion failed and 2 on bad usage.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/davidvella/spq/check"
	"github.com/davidvella/spq/scenario"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("spqcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	runFlag := fs.String("run", "", "comma-separated scenario names (default: all)")
	list := fs.Bool("list", false, "list scenarios and exit")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.NewWithOptions(stderr, log.Options{
		ReportCaller: true,
		Prefix:       "spqcheck",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if *list {
		for _, s := range scenario.All() {
			fmt.Fprintln(stdout, s.Name)
		}
		return 0
	}

	var names []string
	if *runFlag != "" {
		for _, name := range strings.Split(*runFlag, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}

	r := check.NewReporter(check.WithOutput(stdout), check.WithLogger(logger))
	logger.Debug("running scenarios", "names", names)
	if err := scenario.Run(r, names...); err != nil {
		logger.Error("scenario run failed", "err", err)
		if errors.Is(err, scenario.ErrUnknown) {
			return 2
		}
		return 1
	}

	if err := r.Report(); err != nil {
		logger.Error("report", "err", err)
		return 1
	}
	if r.Failed() > 0 {
		return 1
	}
	return 0
}
