package config

import "golang.org/x/crypto/bcrypt"

// applyDefaults fills in fallback values for settings that no configuration
// source provided. Called by the builder after all sources are merged and
// before validation.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}

	if cfg.App.TokenLength == 0 {
		cfg.App.TokenLength = DefaultTokenLength
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenLength < 16 {
		return ErrInvalidAppConfigs
	}

	return nil
}
