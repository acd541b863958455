// Package api defines the JSON response envelope shared by every HTTP handler.
package api

import "github.com/gin-gonic/gin"

// successResponse is the envelope for successful outcomes.
// Data is always present, even when empty.
type successResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// errorResponse is the envelope for failed outcomes.
// Data carries field-level details only when there are any.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success writes a {success:true, data, message} envelope with the given status.
func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, successResponse{Success: true, Data: data, Message: message})
}

// Error writes a {success:false, message} envelope with the given status.
// When details is non-nil it is attached as the data field.
func Error(c *gin.Context, status int, message string, details any) {
	resp := errorResponse{Success: false, Message: message}
	if details != nil {
		resp.Data = details
	}
	c.JSON(status, resp)
}

// AbortError writes an error envelope and aborts the remaining handler chain.
// Used by middleware.
func AbortError(c *gin.Context, status int, message string, details any) {
	resp := errorResponse{Success: false, Message: message}
	if details != nil {
		resp.Data = details
	}
	c.AbortWithStatusJSON(status, resp)
}
