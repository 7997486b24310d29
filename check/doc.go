// Package check counts boolean assertions and prints a pass/fail summary.
//
// A Reporter is created once per run and handed to every scenario that records
// into it:
//
//	r := check.NewReporter()
//	r.Record(q.Len() == 3, "q.Len() == 3")
//	r.Report() // [TOTAL ASSERTIONS: 1, FAILED ASSERTIONS: 0, PASS RATIO: 100%]
//
// Failed assertions are logged with their description as they happen.
package check
