package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.AI.Enabled() && c.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be > 0 (got %v)", c.AI.Timeout)
	}

	if c.Catalog.MaxSearchResults <= 0 {
		return fmt.Errorf("catalog.max_search_results must be > 0 (got %d)", c.Catalog.MaxSearchResults)
	}

	return nil
}
