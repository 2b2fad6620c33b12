package errors

// APIResponse is the envelope every HTTP endpoint returns.
type APIResponse struct {
	Success bool   `json:"success"`           // true on 2xx, false otherwise
	Message string `json:"message"`           // User-facing message (Indonesian)
	Data    any    `json:"data,omitempty"`    // Payload, omitted when empty
	Details any    `json:"details,omitempty"` // Validation details (optional)
}
