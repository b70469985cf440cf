package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if strings.TrimSpace(c.Auth.SessionCookie) == "" {
		return fmt.Errorf("auth.session_cookie must not be empty")
	}

	if !strings.HasPrefix(c.Auth.LoginURL, "/") {
		return fmt.Errorf("auth.login_url must be an absolute path (got %q)", c.Auth.LoginURL)
	}

	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be > 0")
	}

	if err := c.Redis.validate(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate_limit.requests_per_second must be > 0 (got %v)", c.RateLimit.RequestsPerSecond)
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
	}
	if c.RateLimit.IdleTTL <= 0 {
		return fmt.Errorf("rate_limit.idle_ttl must be > 0 (got %v)", c.RateLimit.IdleTTL)
	}

	return nil
}

func (r *RedisConfig) validate() error {
	u, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return fmt.Errorf("url scheme must be redis or rediss (got %q)", u.Scheme)
	}
	if r.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %s)", r.SessionTTL)
	}
	return nil
}
