package bench

import "errors"

var (
	// ErrClassConflict is returned when a part name is reused under a
	// different reporting class than its first use. The first class
	// assignment stays in effect.
	ErrClassConflict = errors.New("part already registered under the other reporting class")

	// ErrUnknownPart is returned by stats queries for a part name that
	// was never recorded.
	ErrUnknownPart = errors.New("unknown part name")

	// ErrInvalidSection is returned when an aggregation request names a
	// section outside SectionInline, SectionSeparate and SectionAll.
	ErrInvalidSection = errors.New("section must be one of inline, separate or all")
)
