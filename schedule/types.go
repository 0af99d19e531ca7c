package schedule

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxTargets is the number of rated valves a Problem can track: the width of
// the Open bitset.
const MaxTargets = 64

// Sentinel errors for problem construction.
var (
	// ErrNilInput is returned when the graph or distance index is nil.
	ErrNilInput = errors.New("schedule: graph and distance index are required")

	// ErrInvalidAgents is returned when Config.Agents < 1.
	ErrInvalidAgents = errors.New("schedule: agent count must be at least 1")

	// ErrInvalidTime is returned when Config.MaxTime < 0.
	ErrInvalidTime = errors.New("schedule: time budget must be non-negative")

	// ErrStartNotFound is returned when Config.Start is not a known valve.
	ErrStartNotFound = errors.New("schedule: start valve not found")

	// ErrTooManyValves is returned when more than MaxTargets valves are rated.
	ErrTooManyValves = errors.New("schedule: too many rated valves")

	// ErrUnreachable is returned when two sites have no hop count.
	ErrUnreachable = errors.New("schedule: sites not connected")

	// ErrInvariant is the sentinel every InvariantError unwraps to.
	ErrInvariant = errors.New("schedule: invariant violated")
)

// InvariantError describes a broken state-machine invariant. It is raised
// with panic by the transition code and recovered by package search.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string { return "schedule: invariant violated: " + e.Reason }

// Unwrap returns ErrInvariant.
func (e *InvariantError) Unwrap() error { return ErrInvariant }

func violate(format string, args ...any) {
	panic(&InvariantError{Reason: fmt.Sprintf(format, args...)})
}

// Config parameterizes a Problem.
type Config struct {
	// Start is the valve every agent begins at.
	Start string

	// MaxTime is the time budget in ticks.
	MaxTime int

	// Agents is the number of cooperating agents.
	Agents int

	// Forced makes an idle agent claim a target whenever one is feasible;
	// it waits only when none is left. Off by default: an idle agent may
	// always stand down for the rest of the horizon.
	Forced bool
}

// DefaultConfig returns the single-agent, 30-tick configuration starting at AA.
func DefaultConfig() Config {
	return Config{Start: "AA", MaxTime: 30, Agents: 1}
}

// Kind enumerates the per-agent action states.
type Kind uint8

const (
	// Idle agents have no commitment and choose on the next tick.
	Idle Kind = iota
	// Travelling agents are committed to opening a target site.
	Travelling
	// Waiting agents take no further action until the deadline.
	Waiting
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Travelling:
		return "travelling"
	case Waiting:
		return "waiting"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Action is one agent's current activity. Sites are indices into the
// Problem's site table.
type Action struct {
	Kind Kind

	// At is the current site for Idle and Waiting, the origin for Travelling.
	At int

	// To is the target site (Travelling only).
	To int

	// Remaining is the number of ticks until To is open (Travelling only).
	// It covers the hops plus the one tick spent opening the valve.
	Remaining int
}

// IdleAt returns an Idle action at site.
func IdleAt(site int) Action { return Action{Kind: Idle, At: site} }

// WaitAt returns a Waiting action at site.
func WaitAt(site int) Action { return Action{Kind: Waiting, At: site} }

// Travel returns a Travelling action from one site to another.
func Travel(from, to, remaining int) Action {
	return Action{Kind: Travelling, At: from, To: to, Remaining: remaining}
}

// State is an immutable snapshot of the schedule. Successor states never
// share an Actions backing array with their parent.
type State struct {
	Time     int
	Actions  []Action
	Open     uint64
	Rate     int
	Released int
}

// IsOpen reports whether site is open in s.
func (s State) IsOpen(site int) bool { return s.Open&(1<<uint(site)) != 0 }

// OpenCount returns the number of opened sites.
func (s State) OpenCount() int {
	return bits.OnesCount64(s.Open)
}
