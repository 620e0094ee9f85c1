// Package xerrors defines the error-kind sentinels used across the
// extraction core, wrapped via github.com/pkg/errors so call sites carry a
// stack trace without hand-rolling one. Grounded on moshee-sound's use of
// github.com/pkg/errors (id3/id3v2/id3v2.go, flac/flac.go), which pairs a
// package-level errors.New sentinel with errors.Wrap at call sites.
package xerrors

import "github.com/pkg/errors"

// Sentinel kinds, per spec.md §7.
var (
	// InvalidInput: null/empty inputs where disallowed; bonds whose
	// endpoints are not in the container; graph references crossing
	// containers.
	InvalidInput = errors.New("invalid input")

	// DetectorFailure: the sugar Detector reported an unrecoverable
	// internal error.
	DetectorFailure = errors.New("sugar detector failure")

	// PatternMatchFailure: the SMARTS matcher failed to compile or execute
	// a pattern.
	PatternMatchFailure = errors.New("pattern match failure")

	// Internal: an internal-consistency inconsistency was detected. Per
	// spec.md §7 these are logged as diagnostics, not necessarily
	// propagated — the sentinel exists so code that does choose to return
	// one can be tested with errors.Is.
	Internal = errors.New("internal inconsistency")
)

// Wrap annotates err with msg and a stack trace, answering nil if err is
// nil. Thin wrapper kept so call sites never import pkg/errors directly.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

// WithStack annotates err with a stack trace without changing its message,
// answering nil if err is nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(err)
}

// Is reports whether err matches target, per the standard errors.Is
// semantics (pkg/errors sentinels are plain errors and compose with it).
func Is(err, target error) bool { return errors.Is(err, target) }
