// Package unittest categorises tests by size so that slow tests can be
// filtered out with flags, e.g. "go test ./... -small".
package unittest

import (
	"flag"
	"testing"
)

const (
	SMALL_TEST  = "small"
	MEDIUM_TEST = "medium"
)

var (
	small  = flag.Bool(SMALL_TEST, false, "Whether or not to run small tests.")
	medium = flag.Bool(MEDIUM_TEST, false, "Whether or not to run medium tests.")

	// DEFAULT_RUN indicates whether the given test type runs by default
	// when no filter flag is specified.
	DEFAULT_RUN = map[string]bool{
		SMALL_TEST:  true,
		MEDIUM_TEST: true,
	}

	// TEST_TYPES lists all of the types of tests.
	TEST_TYPES = []string{
		SMALL_TEST,
		MEDIUM_TEST,
	}
)

// ShouldRun determines whether the test should run based on the provided flags.
func ShouldRun(testType string) bool {
	// Fallback if no test filter is specified.
	if !*small && !*medium {
		return DEFAULT_RUN[testType]
	}

	switch testType {
	case SMALL_TEST:
		return *small
	case MEDIUM_TEST:
		return *medium
	}
	return false
}

// SmallTest is a function which should be called at the beginning of a small
// test: a fast test with no dependencies outside the process.
func SmallTest(t testing.TB) {
	if !ShouldRun(SMALL_TEST) {
		t.Skip("Not running small tests.")
	}
}

// MediumTest is a function which should be called at the beginning of a
// medium-sized test: one that touches the filesystem or spawns goroutines.
func MediumTest(t testing.TB) {
	if !ShouldRun(MEDIUM_TEST) {
		t.Skip("Not running medium tests.")
	}
}
