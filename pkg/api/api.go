// Package api contains the JSON request/response structs of the Boomi
// AtomSphere REST API. Field names follow the remote contract; everything
// above this package works with the semantic entities in internal/boomi.
package api

// Query filter operators defined by the platform.
const (
	OperatorEquals = "EQUALS"
	OperatorAnd    = "and"
)

// QueryRequest is the envelope for object query endpoints
// (Atom/query, Environment/query, Process/query, ...).
type QueryRequest struct {
	QueryFilter QueryFilter `json:"QueryFilter"`
}

// QueryFilter wraps the filter expression.
type QueryFilter struct {
	Expression Expression `json:"expression"`
}

// Expression is a single comparison or a boolean combination of nested
// expressions, depending on Operator.
type Expression struct {
	Argument         []any        `json:"argument,omitempty"`
	Operator         string       `json:"operator"`
	Property         string       `json:"property,omitempty"`
	NestedExpression []Expression `json:"nestedExpression,omitempty"`
}

// QueryResponse is the envelope returned by all query endpoints.
type QueryResponse struct {
	NumberOfResults int           `json:"numberOfResults"`
	Result          []QueryResult `json:"result"`
}

// QueryResult is a merged projection of the result objects the platform
// returns. Each endpoint fills only the fields relevant to its object type
// (an Atom result has id/name, an EnvironmentAtomAttachment result has
// atomId/environmentId, an ExecutionRecord result has status/recordedDate).
type QueryResult struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	AtomID        string `json:"atomId,omitempty"`
	EnvironmentID string `json:"environmentId,omitempty"`
	DeploymentID  string `json:"deploymentId,omitempty"`
	ComponentID   string `json:"componentId,omitempty"`
	Status        string `json:"status,omitempty"`
	Message       string `json:"message,omitempty"`
	RecordedDate  string `json:"recordedDate,omitempty"`
}

// ExecutionRequest is the request body for POST /ExecutionRequest.
type ExecutionRequest struct {
	Type                     string                    `json:"@type"`
	AtomID                   string                    `json:"atomId"`
	ProcessID                string                    `json:"processId"`
	DynamicProcessProperties *DynamicProcessProperties `json:"DynamicProcessProperties,omitempty"`
}

// ExecutionRequestResponse is the response body after submitting an
// execution request.
type ExecutionRequestResponse struct {
	RequestID string `json:"requestId"`
	RecordURL string `json:"recordUrl,omitempty"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
}

// DynamicProcessProperties carries the optional per-run process properties.
type DynamicProcessProperties struct {
	DynamicProcessProperty []DynamicProcessProperty `json:"DynamicProcessProperty"`
}

// DynamicProcessProperty is a single name/value pair passed to the process.
type DynamicProcessProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
