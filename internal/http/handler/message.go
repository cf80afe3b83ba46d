package handler

const (
	internalErrMsg = "Internal server error"
	helloMsg       = "Hello World!"
)

// Response is the envelope of every account endpoint. Message holds a string,
// or a list of strings for validation failures.
type Response struct {
	Data    any  `json:"data,omitempty"`
	Success bool `json:"success"`
	Message any  `json:"message"`
}
