package scheduler

import "github.com/sanadi3/427-A2/internal/schederr"

// Policy is the closed set of scheduling disciplines this module
// implements. It is a string-backed sum rather than an interface, per
// spec.md §9's "policy dispatch: five closed policy variants... avoid
// dynamic dispatch" note.
type Policy string

const (
	FCFS  Policy = "FCFS"
	SJF   Policy = "SJF"
	RR    Policy = "RR"
	RR30  Policy = "RR30"
	AGING Policy = "AGING"
)

// quantumRR and quantumRR30 are the fixed quanta named in spec.md §1.
const (
	quantumRR   = 2
	quantumRR30 = 30
	quantumAGE  = 1
)

// ParsePolicy matches the case-sensitive policy tokens spec.md §6
// names. An unrecognized token returns ErrBadPolicy.
func ParsePolicy(token string) (Policy, error) {
	switch Policy(token) {
	case FCFS, SJF, RR, RR30, AGING:
		return Policy(token), nil
	default:
		return "", schederr.ErrBadPolicy
	}
}

// quantum returns the slice quantum for p, or -1 for policies (FCFS,
// SJF) that always run to completion (a negative max_instructions in
// spec.md's run_process_slice terms).
func (p Policy) quantum() int {
	switch p {
	case RR:
		return quantumRR
	case RR30:
		return quantumRR30
	case AGING:
		return quantumAGE
	default:
		return -1
	}
}
