package dto

import "github.com/tanvir/campushub/internal/pkg/query"

// ErrorDoc is one field-level failure inside an error envelope.
type ErrorDoc struct {
	Path    string `json:"path" example:"startTime"`
	Message string `json:"message" example:"startTime must be in HH:mm format"`
}

// APIResponse is the uniform envelope every endpoint returns.
type APIResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message" example:"Offered course created successfully"`
	Data      interface{} `json:"data,omitempty"`
	Meta      *query.Meta `json:"meta,omitempty"`
	ErrorDocs []ErrorDoc  `json:"errorDocs,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewListResponse wraps a result page and its pagination metadata.
func NewListResponse(data interface{}, meta query.Meta, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    &meta,
	}
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(message string, docs ...ErrorDoc) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   message,
		ErrorDocs: docs,
	}
}
