// Package bdd expresses unit tests as Gherkin-style scenarios without
// pulling in a heavy BDD framework.
//
// Create a scenario around a test fixture, register each step with one
// of Given, When, Then, And, or But (all interchangeable, pick the one
// that reads best), then call Run. Steps execute in registration order
// against the shared fixture; the first failing step stops the run and
// its error is returned to the caller as-is.
//
//	type fixture struct {
//		a      int
//		result int
//	}
//
//	func TestDouble(t *testing.T) {
//		f := &fixture{}
//		err := bdd.New(f).
//			Given(inputIs(5)).
//			When(doubled()).
//			Then(resultIs(10)).
//			Run()
//		require.NoError(t, err)
//	}
//
// Each step is best written as a named function returning a Step, as
// above, so the chain documents the test's intent.
//
// The builder is deliberately thin: it does not name, retry, time out,
// or parallelise steps, and it never inspects or wraps a step's error.
// A scenario and its fixture are not safe for concurrent use; callers
// must keep each scenario on a single goroutine.
package bdd
