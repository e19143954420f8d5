// Package workload provides the unit-of-work bodies driven by the demo
// benchmark. Each workload splits an iteration into a Setup step and a
// Core step so both reporting classes get exercised.
package workload

type Workload interface {
	Name() string
	Setup() error // Prepares one iteration's inputs.
	Core() error  // Performs the work being measured.
}
