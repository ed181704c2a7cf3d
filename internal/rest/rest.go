package rest

// ErrorResponse is the JSON body returned by handlers on client errors.
// Errors carries the aggregated list of validation messages when a request
// fails for more than one reason.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details string   `json:"details,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
