package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Journal.CategorySource {
	case CategorySourceUser, CategorySourceAI:
	default:
		return fmt.Errorf("journal.category_source must be %q or %q (got %q)",
			CategorySourceUser, CategorySourceAI, c.Journal.CategorySource)
	}

	switch c.Journal.DefaultLanguage {
	case "tr", "en":
	default:
		return fmt.Errorf("journal.default_language must be \"tr\" or \"en\" (got %q)", c.Journal.DefaultLanguage)
	}

	if c.Journal.MaxDreamsPerUser <= 0 {
		return fmt.Errorf("journal.max_dreams_per_user must be > 0 (got %d)", c.Journal.MaxDreamsPerUser)
	}

	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be > 0 (got %v)", c.Gemini.Timeout)
	}

	return nil
}
