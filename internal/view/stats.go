package view

import (
	"fmt"
	"strings"
)

// errorDisplayLimit caps how many error lines the summary repeats verbatim,
// the remainder is reported as a count.
const errorDisplayLimit = 10

// Statistics accumulates the counters of a single view generation run.
// It is threaded by pointer through the sequential build call chain and
// accumulates monotonically; builds are single-threaded by contract so no
// synchronization is involved.
type Statistics struct {
	DirsCreated     int
	SymlinksCreated int
	SymlinksSkipped int //pre-existing entries left untouched
	SymlinksBroken  int //created deliberately with a target that does not exist yet
	Errors          []string
}

// RecordError appends a textual error without aborting the run.
func (s *Statistics) RecordError(format string, values ...interface{}) {
	s.Errors = append(s.Errors, fmt.Sprintf(format, values...))
}

// Add merges the counters of another run into this one.
func (s *Statistics) Add(other Statistics) {
	s.DirsCreated += other.DirsCreated
	s.SymlinksCreated += other.SymlinksCreated
	s.SymlinksSkipped += other.SymlinksSkipped
	s.SymlinksBroken += other.SymlinksBroken
	s.Errors = append(s.Errors, other.Errors...)
}

// String renders the operator-facing end-of-run summary.
func (s *Statistics) String() string {
	var summary strings.Builder
	fmt.Fprintf(&summary, "Directories created: %d\n", s.DirsCreated)
	fmt.Fprintf(&summary, "Symlinks created: %d\n", s.SymlinksCreated)
	fmt.Fprintf(&summary, "Symlinks skipped (already exist): %d\n", s.SymlinksSkipped)
	fmt.Fprintf(&summary, "Broken symlinks: %d", s.SymlinksBroken)
	if len(s.Errors) > 0 {
		fmt.Fprintf(&summary, "\nErrors: %d", len(s.Errors))
		for i, err := range s.Errors {
			if i == errorDisplayLimit {
				fmt.Fprintf(&summary, "\n  ... and %d more", len(s.Errors)-errorDisplayLimit)
				break
			}
			fmt.Fprintf(&summary, "\n  %s", err)
		}
	}
	return summary.String()
}
