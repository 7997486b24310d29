package check

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
)

// Reporter tallies assertions for a single run.
//
// A Reporter is not safe for concurrent use.
type Reporter struct {
	total  int
	failed int
	out    io.Writer
	logger *log.Logger
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithOutput sets where Report writes the summary. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) {
		r.out = w
	}
}

// WithLogger sets the logger that receives failed assertions.
func WithLogger(l *log.Logger) Option {
	return func(r *Reporter) {
		r.logger = l
	}
}

// NewReporter returns a Reporter with zeroed counters.
func NewReporter(opts ...Option) *Reporter {
	r := &Reporter{out: os.Stdout}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller: true,
			Prefix:       "check",
		})
	}
	return r
}

// Record counts one assertion and returns held unchanged.
func (r *Reporter) Record(held bool, description string) bool {
	r.logger.Helper()

	r.total++
	if !held {
		r.failed++
		r.logger.Error("assertion failed", "condition", description)
	}
	return held
}

// Logger returns the logger that receives failed assertions. Functions that
// wrap Record call Logger().Helper() so failures point at their caller.
func (r *Reporter) Logger() *log.Logger {
	return r.logger
}

// Total returns the number of recorded assertions.
func (r *Reporter) Total() int {
	return r.total
}

// Failed returns the number of recorded assertions that did not hold.
func (r *Reporter) Failed() int {
	return r.failed
}

// Ratio returns the percentage of assertions that held. It reports false when
// nothing has been recorded.
func (r *Reporter) Ratio() (float64, bool) {
	if r.total == 0 {
		return 0, false
	}
	return 100 * float64(r.total-r.failed) / float64(r.total), true
}

// Report writes the summary line.
func (r *Reporter) Report() error {
	ratio := "N/A"
	if p, ok := r.Ratio(); ok {
		ratio = strconv.FormatFloat(p, 'g', 6, 64) + "%"
	}

	_, err := fmt.Fprintf(r.out, "[TOTAL ASSERTIONS: %d, FAILED ASSERTIONS: %d, PASS RATIO: %s]\n",
		r.total, r.failed, ratio)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
