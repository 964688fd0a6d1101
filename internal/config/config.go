package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Ramp     RampConfig     `mapstructure:"ramp"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`

	// TaskKeySupported declares whether the deployed tasks table has the
	// optional task_key column. Deployments on an older schema disable it;
	// the task store then emits the reduced field set instead of failing
	// inserts. A capability flag here keeps schema drift out of the engine.
	TaskKeySupported bool `mapstructure:"task_key_supported"`
}

// CatalogConfig tells the server where to find a CSV catalog to fall back
// to when the stored template table is empty.
type CatalogConfig struct {
	CSVPath string `mapstructure:"csv_path" validate:"omitempty,filepath"`
}

// RampConfig overrides the onboarding ramp defaults. Zero values keep the
// built-in defaults.
type RampConfig struct {
	NearTermDays         int `mapstructure:"near_term_days"         validate:"omitempty,gt=0"`
	InitialCap           int `mapstructure:"initial_cap"            validate:"omitempty,gt=0"`
	StaggerWeeks         int `mapstructure:"stagger_weeks"          validate:"omitempty,gt=0"`
	PerDayCap            int `mapstructure:"per_day_cap"            validate:"omitempty,gt=0"`
	OnboardingWindowDays int `mapstructure:"onboarding_window_days" validate:"omitempty,gt=0"`
}
