package dto

import "time"

// ErrorResponse is the payload returned on every failed request.
//
// Fields:
//   - Message: human readable description, serialized as "error".
//   - ErrorDetails: optional underlying error text.
//   - Timestamp: when the error was produced (UTC).
type ErrorResponse struct {
	Message      string    `json:"error" example:"invalid symbol"`
	ErrorDetails string    `json:"details,omitempty" example:"symbol must look like BTCUSDT"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse; err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
