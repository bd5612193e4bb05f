package boomi

import (
	"context"

	"boomictl/pkg/api"
)

// LaunchSpec describes one validated launch: the three names to resolve,
// optional per-run properties, and whether to wait for completion.
type LaunchSpec struct {
	AtomName        string
	EnvironmentName string
	ProcessName     string
	Properties      []api.DynamicProcessProperty
	Wait            bool
	Poll            PollConfig
}

// LaunchResult reports the resolved identifiers and the last observed state
// of the run. Record is set only when the launch was waited on.
type LaunchResult struct {
	AtomID        string
	EnvironmentID string
	ProcessID     string
	RequestID     string
	Status        Status
	Record        *StatusRecord
}

// Execute runs the full flow: resolve atom, resolve environment, check the
// attachment, resolve process, check the deployment, launch, and optionally
// wait. Steps run strictly in sequence and the first failure aborts the
// chain, so the launch can never fire on partially validated input.
func (c *Client) Execute(ctx context.Context, spec LaunchSpec) (*LaunchResult, error) {
	result, err := c.Verify(ctx, spec.AtomName, spec.EnvironmentName, spec.ProcessName)
	if err != nil {
		return nil, err
	}

	execution, err := c.Launch(ctx, result.AtomID, result.ProcessID, spec.Properties)
	if err != nil {
		return nil, err
	}
	result.RequestID = execution.RequestID
	result.Status = execution.Status

	if spec.Wait {
		record, err := c.AwaitCompletion(ctx, execution.RequestID, spec.Poll)
		if err != nil {
			return result, err
		}
		result.Status = record.Status
		result.Record = record
	}

	return result, nil
}

// Verify runs the validation chain only, without launching. It returns the
// resolved identifiers for a dry-run report.
func (c *Client) Verify(ctx context.Context, atomName, environmentName, processName string) (*LaunchResult, error) {
	atomID, err := c.ResolveAtom(ctx, atomName)
	if err != nil {
		return nil, err
	}
	environmentID, err := c.ResolveEnvironment(ctx, environmentName)
	if err != nil {
		return nil, err
	}
	if err := c.VerifyAtomInEnvironment(ctx, atomID, environmentID); err != nil {
		return nil, err
	}
	processID, err := c.ResolveProcess(ctx, processName)
	if err != nil {
		return nil, err
	}
	if err := c.VerifyProcessDeployed(ctx, processID, environmentID); err != nil {
		return nil, err
	}

	return &LaunchResult{
		AtomID:        atomID,
		EnvironmentID: environmentID,
		ProcessID:     processID,
	}, nil
}
