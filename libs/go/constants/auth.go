package constants

// Auth types set on the request context by the auth middleware
const (
	AuthTypeAPIKey = "api_key"
	AuthTypeJWT    = "jwt"
)

// API key access levels
const (
	AccessLevelRead  = "read"
	AccessLevelWrite = "write"
	AccessLevelAdmin = "admin"
)
