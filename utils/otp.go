// utils/otp.go
package utils

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ValidateOTPAttempts limits delivery-code submissions per session. Limiting
// is skipped when Redis is unavailable.
func ValidateOTPAttempts(ctx context.Context, sessionID string, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}

	key := "otp_attempts:" + sessionID
	attempts, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return err
	}

	// Set expiry if first attempt
	if attempts == 1 {
		rdb.Expire(ctx, key, 1*time.Hour)
	}

	// Limit to 5 attempts per hour
	if attempts > 5 {
		return errors.New("too many delivery code attempts, try again later")
	}

	return nil
}
