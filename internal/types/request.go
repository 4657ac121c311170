package types

// DiscoverRequest represents a service discovery request
type DiscoverRequest struct {
	Message string `json:"message" binding:"required"`
}

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}
