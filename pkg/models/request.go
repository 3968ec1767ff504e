package models

// GenerateOptions controls a single render request. Enhancement defaults to
// whatever the server configuration allows; callers can opt out per request.
type GenerateOptions struct {
	Enhance bool `json:"enhance"`
}
