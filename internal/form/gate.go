// Package form provides the submission state machine shared by the
// booking and tour forms. A Gate tracks one form instance's lifecycle
// (Editing → Submitting → Succeeded/Failed) and guarantees that a single
// instance never has two submissions in flight. Separate form instances
// hold separate gates and never coordinate.
package form

import "sync"

// State is the submission lifecycle of one form instance.
// Modelling it as a single enum (instead of loading/error booleans)
// makes invalid combinations unrepresentable.
type State int

const (
	// Editing accepts input changes; submission has not been attempted
	// or the last attempt failed validation before leaving the form.
	Editing State = iota
	// Submitting means a request is in flight. Inputs and the submit
	// control are disabled until the collaborator responds.
	Submitting
	// Succeeded is terminal: the submission was accepted and the form is
	// about to hand off to navigation.
	Succeeded
	// Failed re-enables the form with an error message attached. The
	// user must resubmit manually — there is no automatic retry.
	Failed
)

// String returns the lowercase state name, mainly for logs and tests.
func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Gate serializes submissions for a single form instance.
// The zero value is not usable; construct with NewGate.
type Gate struct {
	mu      sync.Mutex
	state   State
	message string
	closed  bool
}

// NewGate returns a gate in the Editing state.
func NewGate() *Gate {
	return &Gate{}
}

// State returns the current lifecycle state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Message returns the user-visible message attached by the last
// Fail or Succeed transition, or "" when there is none.
func (g *Gate) Message() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.message
}

// Editable reports whether the form may accept input changes:
// true in Editing and Failed, false while Submitting and after success.
func (g *Gate) Editable() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.closed && (g.state == Editing || g.state == Failed)
}

// Begin attempts the Editing/Failed → Submitting transition.
// It returns false when a submission is already in flight, the form has
// already succeeded, or the form was closed — callers must not start a
// request in that case.
func (g *Gate) Begin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || (g.state != Editing && g.state != Failed) {
		return false
	}
	g.state = Submitting
	g.message = ""
	return true
}

// Fail records a failed submission attempt and returns the gate to an
// editable state with the given message. Failure is terminal for the
// attempt; the user decides whether to resubmit.
func (g *Gate) Fail(message string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || g.state != Submitting {
		return
	}
	g.state = Failed
	g.message = message
}

// Succeed records an accepted submission with a confirmation message.
func (g *Gate) Succeed(message string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || g.state != Submitting {
		return
	}
	g.state = Succeeded
	g.message = message
}

// Close marks the form instance as discarded. Later transitions become
// no-ops, so a response arriving after the user has navigated away is
// dropped instead of mutating a dead form.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
}

// Closed reports whether Close has been called.
func (g *Gate) Closed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}
