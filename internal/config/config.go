package config

// Config holds all application configuration. It is constructed once at
// startup by Load and passed explicitly into the components that need it;
// there is no process-wide settings singleton.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the database settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains authentication settings. SecretKey has no default;
// startup fails if it is absent.
type AuthConfig struct {
	SecretKey                string `mapstructure:"secret_key"                  validate:"required,min=32"`
	AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes" validate:"required,gt=0"`
	BcryptCost               int    `mapstructure:"bcrypt_cost"                 validate:"gte=0"`
}
