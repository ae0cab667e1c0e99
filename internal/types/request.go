package types

// ExecuteRequest is the payload for tool execution
type ExecuteRequest struct {
	ToolID    string                 `json:"tool_id" binding:"required"`
	Params    map[string]interface{} `json:"params"`
	SandboxID *string                `json:"sandbox_id,omitempty"`
}

// DiscoverRequest is the payload for service discovery
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}
