package constants

// Location channel close codes
const (
	CloseMissingToken = 4000
	CloseNotActive    = 4001
	CloseBadToken     = 4002
)

// WebSocket error codes
const (
	ErrorInvalidLocation = "invalid_location"
	ErrorRejected        = "rejected"
)

// SessionTokenHeader carries a side token on HTTP transition calls
const SessionTokenHeader = "X-Session-Token"
