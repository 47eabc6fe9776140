package constants

import "time"

// Context keys
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
	ContextKeyClaims = "claims"
)

// Authentication
const (
	AccessTokenCookie = "access_token"
	TokenTTL          = 24 * time.Hour
	MinPasswordLength = 6
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Leaderboard
const DefaultTopPerformers = 3
