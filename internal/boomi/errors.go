package boomi

import (
	"fmt"
	"time"
)

// TransportError reports an inability to get an answer from the API at all:
// connection failure, an unexpected HTTP status, or an undecodable payload.
// It is distinct from NotFoundError, which is a legitimate empty answer.
type TransportError struct {
	Op         string // "POST /Atom/query"
	StatusCode int    // zero when the request never completed
	Detail     string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Detail)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Detail)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// NotFoundError reports a name lookup that matched nothing.
type NotFoundError struct {
	Entity string // "atom", "environment", "process"
	Name   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found with name %q", e.Entity, e.Name)
}

// AmbiguityError reports a name lookup that matched more than one object.
// Names are expected to be unique; the chain never silently picks one.
type AmbiguityError struct {
	Entity  string
	Name    string
	Matches int
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("%d %ss found with name %q, expected exactly one", e.Matches, e.Entity, e.Name)
}

// MismatchError reports a relationship that does not hold: the atom is
// attached to a different environment, or the process has no active
// deployment in the environment.
type MismatchError struct {
	Relation string // "atom-environment" or "process-deployment"
	Detail   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: %s", e.Relation, e.Detail)
}

// LaunchNotConfirmedError reports an execution request whose response carried
// neither a request ID nor a recognizable status. The run may or may not have
// started on the remote system; the launcher never retries.
type LaunchNotConfirmedError struct {
	Detail string
}

func (e *LaunchNotConfirmedError) Error() string {
	return fmt.Sprintf("launch not confirmed: %s", e.Detail)
}

// PollTimeoutError reports that the poller gave up waiting. The run may
// still be in progress on the remote system.
type PollTimeoutError struct {
	Attempts int
	Elapsed  time.Duration
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("gave up waiting for execution after %d status checks (%s); the run may still be in progress", e.Attempts, e.Elapsed.Round(time.Second))
}

// PollTransportError reports repeated transport failures while polling.
// It never stands in for a terminal ERROR status from the run itself.
type PollTransportError struct {
	Errors int
	Last   error
}

func (e *PollTransportError) Error() string {
	return fmt.Sprintf("status polling failed after %d transport errors: %v", e.Errors, e.Last)
}

func (e *PollTransportError) Unwrap() error { return e.Last }
