package boomi

import (
	"context"
	"fmt"
	"net/http"

	"boomictl/pkg/api"
)

func equalsFilter(property string, value any) api.QueryRequest {
	return api.QueryRequest{
		QueryFilter: api.QueryFilter{
			Expression: api.Expression{
				Argument: []any{value},
				Operator: api.OperatorEquals,
				Property: property,
			},
		},
	}
}

// ResolveAtom returns the ID of the atom with the given name.
// Zero matches is a *NotFoundError, more than one a *AmbiguityError.
func (c *Client) ResolveAtom(ctx context.Context, name string) (string, error) {
	result, err := c.queryOne(ctx, "/Atom/query", "atom", name, equalsFilter("name", name))
	if err != nil {
		return "", err
	}
	return result.ID, nil
}

// ResolveEnvironment returns the ID of the environment with the given name.
func (c *Client) ResolveEnvironment(ctx context.Context, name string) (string, error) {
	result, err := c.queryOne(ctx, "/Environment/query", "environment", name, equalsFilter("name", name))
	if err != nil {
		return "", err
	}
	return result.ID, nil
}

// AtomEnvironment returns the ID of the environment the atom is attached to.
func (c *Client) AtomEnvironment(ctx context.Context, atomID string) (string, error) {
	result, err := c.queryOne(ctx, "/EnvironmentAtomAttachment/query", "environment attachment", atomID, equalsFilter("atomId", atomID))
	if err != nil {
		return "", err
	}
	return result.EnvironmentID, nil
}

// VerifyAtomInEnvironment confirms the atom is attached to the given
// environment, failing with a *MismatchError when it is attached elsewhere.
func (c *Client) VerifyAtomInEnvironment(ctx context.Context, atomID, environmentID string) error {
	attached, err := c.AtomEnvironment(ctx, atomID)
	if err != nil {
		return err
	}
	if attached != environmentID {
		return &MismatchError{
			Relation: "atom-environment",
			Detail:   fmt.Sprintf("atom %s is attached to environment %s, not %s", atomID, attached, environmentID),
		}
	}
	return nil
}

// ResolveProcess returns the ID of the process with the given name.
func (c *Client) ResolveProcess(ctx context.Context, name string) (string, error) {
	result, err := c.queryOne(ctx, "/Process/query", "process", name, equalsFilter("name", name))
	if err != nil {
		return "", err
	}
	return result.ID, nil
}

// VerifyProcessDeployed confirms the process has an active deployed package
// in the environment. This is an existence-only check: any number of matching
// records satisfies it, zero records is a *MismatchError.
func (c *Client) VerifyProcessDeployed(ctx context.Context, processID, environmentID string) error {
	filter := api.QueryRequest{
		QueryFilter: api.QueryFilter{
			Expression: api.Expression{
				Operator: api.OperatorAnd,
				NestedExpression: []api.Expression{
					{Argument: []any{environmentID}, Operator: api.OperatorEquals, Property: "environmentId"},
					{Argument: []any{"process"}, Operator: api.OperatorEquals, Property: "componentType"},
					{Argument: []any{true}, Operator: api.OperatorEquals, Property: "active"},
					{Argument: []any{processID}, Operator: api.OperatorEquals, Property: "componentId"},
				},
			},
		},
	}

	var resp api.QueryResponse
	if _, err := c.do(ctx, http.MethodPost, "/DeployedPackage/query", filter, &resp, http.StatusOK); err != nil {
		return err
	}
	if resp.NumberOfResults == 0 || len(resp.Result) == 0 {
		return &MismatchError{
			Relation: "process-deployment",
			Detail:   fmt.Sprintf("process %s has no active deployment in environment %s", processID, environmentID),
		}
	}
	return nil
}
