// Package api holds the JSON handlers of the course listing.
package api

import (
	"github.com/rohanthewiz/rweb"
)

// APIResponse provides a consistent JSON response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess sends a successful JSON response with data.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}
