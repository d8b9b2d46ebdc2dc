package config

import (
	"strconv"
	"time"
)

// SecurityConfig supplies the shared admin secret and the session/lockout
// policy values. The secret is read at startup; if neither ADMIN_KEY nor
// ADMIN_KEY_HASH is set, key-based authentication fails closed.
type SecurityConfig interface {
	GetAdminKey() string
	GetAdminKeyHash() string
	GetSessionTTL() time.Duration
	GetSweepInterval() time.Duration
	GetMaxFailedAttempts() int
	GetLockoutWindow() time.Duration
}

type Security struct{}

var _ SecurityConfig = Security{}

func (Security) GetAdminKey() string {
	return GetEnv("ADMIN_KEY", "")
}

// GetAdminKeyHash returns a bcrypt hash of the admin key, preferred over the
// plaintext key when both are configured.
func (Security) GetAdminKeyHash() string {
	return GetEnv("ADMIN_KEY_HASH", "")
}

func (Security) GetSessionTTL() time.Duration {
	return durationEnv("SESSION_TTL", 24*time.Hour)
}

func (Security) GetSweepInterval() time.Duration {
	return durationEnv("SESSION_SWEEP_INTERVAL", time.Hour)
}

func (Security) GetMaxFailedAttempts() int {
	return intEnv("MAX_FAILED_ATTEMPTS", 5)
}

func (Security) GetLockoutWindow() time.Duration {
	return durationEnv("LOCKOUT_WINDOW", 15*time.Minute)
}

func durationEnv(envVar string, defaultValue time.Duration) time.Duration {
	value := GetEnv(envVar, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func intEnv(envVar string, defaultValue int) int {
	value := GetEnv(envVar, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
