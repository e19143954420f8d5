package bench

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Part names used when a scope is opened without an explicit name.
const (
	defaultInlineName   = "setup"
	defaultSeparateName = "core"
)

type ScopeOptions struct {
	// Name tags the measured region. Empty defaults to "setup" for
	// inline scopes and "core" for separate scopes.
	Name string
	// Class is the reporting class the part belongs to. A name keeps the
	// class of its first use; reusing it under the other class fails with
	// ErrClassConflict.
	Class Class
	// DisableGC overrides the Run's default garbage collection
	// suppression for this scope. Nil means use the Run's default.
	DisableGC *bool
}

// Scope measures the wall time spent in body and accumulates it under
// the named part for the current iteration. Two scopes with the same
// name within one iteration sum their durations.
//
// If body returns an error or panics, the elapsed time is not recorded
// and the failure propagates unchanged; the prior garbage collection
// state is restored on every exit path.
func (r *Run) Scope(opts ScopeOptions, body func() error) error {
	name := opts.Name
	if name == "" {
		if opts.Class == Separate {
			name = defaultSeparateName
		} else {
			name = defaultInlineName
		}
	}

	if existing, ok := r.classes[name]; ok && existing != opts.Class {
		return fmt.Errorf("part %q is already %v: %w", name, existing, ErrClassConflict)
	}
	r.classes[name] = opts.Class

	disableGC := r.defaultDisableGC
	if opts.DisableGC != nil {
		disableGC = *opts.DisableGC
	}
	restore := func() {}
	if disableGC {
		prev := debug.SetGCPercent(-1)
		restore = func() { debug.SetGCPercent(prev) }
	}

	iteration := r.currentIteration

	start := r.clock.Now()
	if err := runBody(body, restore); err != nil {
		return err
	}
	end := r.clock.Now()
	delta := end.Sub(start)

	if r.samples[iteration] == nil {
		r.samples[iteration] = map[string]time.Duration{}
	}
	r.samples[iteration][name] += delta
	return nil
}

// runBody isolates the deferred restore so that it runs before a body
// panic re-propagates and before the end timestamp is taken on a normal
// return.
func runBody(body func() error, restore func()) error {
	defer restore()
	return body()
}

// Part opens an inline scope: its time is folded into the main loop's
// measured time.
func (r *Run) Part(name string, body func() error) error {
	return r.Scope(ScopeOptions{Name: name, Class: Inline}, body)
}

// SeparatePart opens a separate scope: its time is reported
// independently of the main loop, e.g. one-time setup cost.
func (r *Run) SeparatePart(name string, body func() error) error {
	return r.Scope(ScopeOptions{Name: name, Class: Separate}, body)
}
