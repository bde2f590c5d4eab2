package services

import (
	"fmt"
	"log"
	"time"

	DB "Backend-GovSeva/src/database"
)

// Login attempt limiting: after maxLoginAttempts failures within the window
// the email is locked out until the window expires.
const (
	maxLoginAttempts = 5
	loginWindow      = 5 * time.Minute
)

func loginAttemptKey(email string) string {
	return "login_attempts:" + email
}

// IsRateLimited reports whether this email has exhausted its login attempts.
func IsRateLimited(email string) bool {
	if DB.RedisClient == nil {
		return false
	}
	n, err := DB.RedisClient.Get(DB.RedisCtx, loginAttemptKey(email)).Int()
	if err != nil {
		return false
	}
	return n >= maxLoginAttempts
}

// GetRemainingCooldownTime returns how long until the lockout expires.
func GetRemainingCooldownTime(email string) time.Duration {
	if DB.RedisClient == nil {
		return 0
	}
	ttl, err := DB.RedisClient.TTL(DB.RedisCtx, loginAttemptKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// LogLoginAttempt counts a failed attempt and clears the counter on success.
func LogLoginAttempt(email, ip string, success bool) {
	log.Printf("[auth] login attempt email=%s ip=%s success=%v", email, ip, success)

	if DB.RedisClient == nil {
		return
	}

	key := loginAttemptKey(email)
	if success {
		DB.RedisClient.Del(DB.RedisCtx, key)
		return
	}

	n, err := DB.RedisClient.Incr(DB.RedisCtx, key).Result()
	if err != nil {
		fmt.Println("⚠️ Failed to record login attempt:", err)
		return
	}
	if n == 1 {
		DB.RedisClient.Expire(DB.RedisCtx, key, loginWindow)
	}
}
