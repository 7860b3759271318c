package constants

// Redis key formats
const (
	KeySessionLocations = "session:%s:locations" // Format: session:{session_id}:locations
	KeyRateLimit        = "rate:user:%s:%s"      // Format: rate:user:{route}:{user_id}
)
