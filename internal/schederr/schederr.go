// Package schederr defines the closed set of sentinel errors returned
// by the scheduler core, so callers can branch with errors.Is instead
// of string matching diagnostic text.
package schederr

import "errors"

var (
	// ErrLoadFailure covers file-open failure, code store exhaustion, or
	// PCB allocation failure during load. The caller's in-progress call
	// is rolled back before this is returned.
	ErrLoadFailure = errors.New("schederr: load failure")

	// ErrBadPolicy is returned when a policy token doesn't match one of
	// FCFS, SJF, RR, RR30, AGING.
	ErrBadPolicy = errors.New("schederr: bad policy")

	// ErrDuplicateProgram is returned when the same script path appears
	// more than once in a single load call.
	ErrDuplicateProgram = errors.New("schederr: duplicate program")

	// ErrAlreadyRunning is returned by Run when it is invoked while a
	// previous Run on the same Scheduler is still active.
	ErrAlreadyRunning = errors.New("schederr: scheduler already running")

	// ErrPolicyNotImplemented is returned for a recognized-but-unhandled
	// Policy value reaching the dispatch switch (defensive; the closed
	// Policy sum should make this unreachable).
	ErrPolicyNotImplemented = errors.New("schederr: scheduling policy not implemented")
)

// Diagnostic returns the human-readable, spec-pinned diagnostic text
// for a sentinel error, or "" if err doesn't match a known sentinel.
// This text is what spec.md's external interpreter historically
// printed to the shell; this module logs it and also returns it here
// so a caller that still wants the literal string can have it without
// re-deriving it from the error value.
func Diagnostic(err error) string {
	switch {
	case errors.Is(err, ErrLoadFailure):
		return "Bad command: exec load"
	case errors.Is(err, ErrBadPolicy):
		return "Bad command: exec policy"
	case errors.Is(err, ErrDuplicateProgram):
		return "Bad command: exec duplicate program"
	case errors.Is(err, ErrPolicyNotImplemented):
		return "Scheduling policy not implemented"
	default:
		return ""
	}
}
