package boomi

import (
	"context"
	"net/http"

	"boomictl/pkg/api"
)

// Execution is the handle returned by a confirmed execution request.
type Execution struct {
	RequestID string
	Status    Status
	RecordURL string
}

// Launch submits an execution request for a validated atom/process pair.
// Both IDs must come from a successful validation chain; Launch performs no
// validation of its own. The call triggers a real remote run and is never
// retried here: after an ambiguous transport failure the operator has to
// check the platform rather than risk a double launch.
func (c *Client) Launch(ctx context.Context, atomID, processID string, props []api.DynamicProcessProperty) (*Execution, error) {
	req := api.ExecutionRequest{
		Type:      "ExecutionRequest",
		AtomID:    atomID,
		ProcessID: processID,
	}
	if len(props) > 0 {
		req.DynamicProcessProperties = &api.DynamicProcessProperties{DynamicProcessProperty: props}
	}

	var resp api.ExecutionRequestResponse
	if _, err := c.do(ctx, http.MethodPost, "/ExecutionRequest", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}

	// Accepted means we got a request ID to track, a recognizable status,
	// or both. A response with neither cannot be confirmed or monitored.
	if resp.RequestID == "" && resp.Status == "" {
		return nil, &LaunchNotConfirmedError{
			Detail: "execution request response carried no request ID and no status",
		}
	}

	status := Status(resp.Status)
	if status == "" {
		status = StatusQueued
	}

	c.logger.InfoContext(ctx, "execution requested", "request_id", resp.RequestID, "status", string(status))

	return &Execution{
		RequestID: resp.RequestID,
		Status:    status,
		RecordURL: resp.RecordURL,
	}, nil
}
