package constants

// Context keys for validated requests
const (
	ContextKeyContact     = "contact"
	ContextKeyStatusCheck = "statusCheck"
)

// Context keys set by global middleware
const (
	ContextKeyRequestID = "RequestID"
)
