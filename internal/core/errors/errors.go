package errors

const (
	HttpInternalError        = "internal_error"
	HttpInvalidJsonError     = "invalid_json"
	HttpInvalidArgumentError = "invalid_argument"
	HttpNotFoundError        = "not_found"
)

// ErrorResponse is the error response body for every API endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
