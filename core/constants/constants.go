package constants

import "time"

const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
	HeaderRequestID  = "X-Request-ID"

	DefaultRequestTimeout = 10 * time.Second
	ShutdownTimeout       = 15 * time.Second
)

const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

const (
	RedisKeyVenueRecommendation = "venue:recommend:%s"
	RedisKeyOAuthState          = "oauth:state:%s"
	OAuthStateTTL               = 10 * time.Minute
)

const (
	TaskInviteMarkSent = "invite:mark_sent"
	QueueDefault       = "default"
)

// DayOrder is the weekday vocabulary used by stored weekly availability.
var DayOrder = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
