package middleware

import "time"

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"

	limiterCapacity = 1000
	limiterTTL      = 5 * time.Minute
)
