package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Glossary.validate(); err != nil {
		return fmt.Errorf("glossary: %w", err)
	}

	return nil
}

func (g *GlossaryConfig) validate() error {
	if g.MinApprovals < 1 {
		return fmt.Errorf("min_approvals must be >= 1 (got %d)", g.MinApprovals)
	}
	if g.MaxContentLength <= 0 {
		return fmt.Errorf("max_content_length must be > 0 (got %d)", g.MaxContentLength)
	}
	if g.MaxTermLength <= 0 {
		return fmt.Errorf("max_term_length must be > 0 (got %d)", g.MaxTermLength)
	}
	if g.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", g.DefaultPageSize)
	}
	if g.MaxPageSize < g.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", g.MaxPageSize, g.DefaultPageSize)
	}
	if g.DiscardedRetentionDays < 0 {
		return fmt.Errorf("discarded_retention_days must be >= 0 (got %d)", g.DiscardedRetentionDays)
	}
	return nil
}
