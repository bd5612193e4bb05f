package boomi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"boomictl/pkg/api"
)

// Status is the lifecycle state of an execution as reported by the platform.
type Status string

const (
	// StatusQueued is the initial state of a freshly accepted execution
	// request whose response carried no explicit status.
	StatusQueued Status = "QUEUED"
	// StatusPending means the execution record is not yet available
	// (the async status endpoint answered 202).
	StatusPending Status = "PENDING"

	StatusStarted      Status = "STARTED"
	StatusInProcess    Status = "INPROCESS"
	StatusComplete     Status = "COMPLETE"
	StatusCompleteWarn Status = "COMPLETE_WARN"
	StatusError        Status = "ERROR"
	StatusAborted      Status = "ABORTED"
	StatusDiscarded    Status = "DISCARDED"
)

// Terminal reports whether the execution has finished. Unknown status
// strings are treated as non-terminal and polled again.
func (s Status) Terminal() bool {
	switch s {
	case StatusComplete, StatusCompleteWarn, StatusError, StatusAborted, StatusDiscarded:
		return true
	}
	return false
}

// Succeeded reports whether a terminal execution finished successfully.
func (s Status) Succeeded() bool {
	return s == StatusComplete || s == StatusCompleteWarn
}

// StatusRecord is one snapshot of an execution's state. It is never mutated
// locally; progress is observed only by querying again.
type StatusRecord struct {
	Status       Status
	Message      string
	RecordedDate time.Time
}

// recordedDateLayout is the timestamp format of ExecutionRecord.recordedDate.
const recordedDateLayout = "2006-01-02T15:04:05Z"

// ExecutionStatus fetches the current state of an execution request.
// A 202 answer means the record is not written yet and is reported as a
// non-terminal PENDING snapshot.
func (c *Client) ExecutionStatus(ctx context.Context, requestID string) (*StatusRecord, error) {
	resource := fmt.Sprintf("/ExecutionRecord/async/%s", requestID)

	var resp api.QueryResponse
	code, err := c.do(ctx, http.MethodGet, resource, nil, &resp, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	if code == http.StatusAccepted {
		return &StatusRecord{Status: StatusPending}, nil
	}

	if len(resp.Result) == 0 {
		return nil, &TransportError{
			Op:     fmt.Sprintf("%s %s", http.MethodGet, resource),
			Detail: "execution record response contained no result",
		}
	}

	record := &StatusRecord{
		Status:  Status(resp.Result[0].Status),
		Message: resp.Result[0].Message,
	}
	if resp.Result[0].RecordedDate != "" {
		if ts, err := time.Parse(recordedDateLayout, resp.Result[0].RecordedDate); err == nil {
			record.RecordedDate = ts.Local()
		}
	}
	return record, nil
}
