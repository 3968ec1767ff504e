package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents a structured error response. Stdout/Stderr carry
// captured renderer output on render failures so callers can debug without
// shell access to the server.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Stdout    string    `json:"stdout,omitempty"`
	Stderr    string    `json:"stderr,omitempty"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// UploadResponse is returned by the upload entry point, which saves the
// rendered PDF instead of streaming it back.
type UploadResponse struct {
	Success        bool          `json:"success"`
	Artifact       string        `json:"artifact"`
	Enhanced       bool          `json:"enhanced"`
	RequestID      string        `json:"request_id"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
func NewErrorResponse(category, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Error:     category,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	}
}
