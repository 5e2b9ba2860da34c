package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"clinical-records-api/internal/adapters/storage/sqldb"
)

const (
	StorageSQL    = "sql"
	StorageMemory = "memory"
)

type Config struct {
	Port      string `mapstructure:"PORT" validate:"required,numeric"`
	Env       string `mapstructure:"ENV" validate:"oneof=development test staging production"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"oneof=text json"`
	AppName   string `mapstructure:"APP_NAME" validate:"required"`

	Storage           string `mapstructure:"STORAGE" validate:"oneof=sql memory"`
	MemorySeedRecords int    `mapstructure:"MEMORY_SEED_RECORDS" validate:"gte=1"`

	SQLDriver            string `mapstructure:"AZURE_SQL_DRIVER"`
	SQLServer            string `mapstructure:"AZURE_SQL_SERVER" validate:"required_if=Storage sql"`
	SQLPort              int    `mapstructure:"AZURE_SQL_PORT" validate:"gte=0,lte=65535"`
	SQLDatabase          string `mapstructure:"AZURE_SQL_DATABASE" validate:"required_if=Storage sql"`
	SQLUser              string `mapstructure:"AZURE_SQL_USER"`
	SQLSchema            string `mapstructure:"AZURE_SQL_SCHEMA"`
	SQLEncrypt           string `mapstructure:"AZURE_SQL_ENCRYPT" validate:"boolish"`
	SQLTrustCertificate  string `mapstructure:"AZURE_SQL_TRUST_CERTIFICATE" validate:"boolish"`
	SQLConnectionTimeout int    `mapstructure:"AZURE_SQL_CONNECTION_TIMEOUT" validate:"gte=1"`
	SQLTokenScope        string `mapstructure:"AZURE_SQL_TOKEN_SCOPE"`

	TokenCache       string        `mapstructure:"AZURE_TOKEN_CACHE" validate:"boolish"`
	TokenRefreshSkew time.Duration `mapstructure:"AZURE_TOKEN_REFRESH_SKEW" validate:"gte=0"`
	InteractiveLogin string        `mapstructure:"AZURE_INTERACTIVE_LOGIN" validate:"boolish"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"STORAGE", "MEMORY_SEED_RECORDS",
	"AZURE_SQL_DRIVER", "AZURE_SQL_SERVER", "AZURE_SQL_PORT", "AZURE_SQL_DATABASE",
	"AZURE_SQL_USER", "AZURE_SQL_SCHEMA", "AZURE_SQL_ENCRYPT", "AZURE_SQL_TRUST_CERTIFICATE",
	"AZURE_SQL_CONNECTION_TIMEOUT", "AZURE_SQL_TOKEN_SCOPE",
	"AZURE_TOKEN_CACHE", "AZURE_TOKEN_REFRESH_SKEW", "AZURE_INTERACTIVE_LOGIN",
}

// Load lee .env (si existe) y el entorno. El entorno gana.
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "clinical-records-api")
	v.SetDefault("STORAGE", StorageSQL)
	v.SetDefault("MEMORY_SEED_RECORDS", 60)
	v.SetDefault("AZURE_SQL_DRIVER", sqldb.DriverSQLServer)
	v.SetDefault("AZURE_SQL_PORT", 0)
	v.SetDefault("AZURE_SQL_ENCRYPT", "yes")
	v.SetDefault("AZURE_SQL_TRUST_CERTIFICATE", "no")
	v.SetDefault("AZURE_SQL_CONNECTION_TIMEOUT", 30)
	v.SetDefault("AZURE_TOKEN_CACHE", "false")
	v.SetDefault("AZURE_TOKEN_REFRESH_SKEW", "5m")
	v.SetDefault("AZURE_INTERACTIVE_LOGIN", "false")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional, pero si existe tiene que parsear
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	c.SQLEncrypt = strings.ToLower(strings.TrimSpace(c.SQLEncrypt))
	c.SQLTrustCertificate = strings.ToLower(strings.TrimSpace(c.SQLTrustCertificate))
	c.TokenCache = strings.ToLower(strings.TrimSpace(c.TokenCache))
	c.InteractiveLogin = strings.ToLower(strings.TrimSpace(c.InteractiveLogin))
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("boolish", func(fl validator.FieldLevel) bool {
		_, ok := parseBoolish(fl.Field().String())
		return ok
	})
	return v
}

// Validate corre los tags y después los chequeos que dependen del driver.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Storage == StorageSQL {
		if _, err := c.Database().WithDefaults(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) UseMemory() bool {
	return c.Storage == StorageMemory
}

func (c *Config) TokenCacheEnabled() bool {
	b, _ := parseBoolish(c.TokenCache)
	return b
}

func (c *Config) Interactive() bool {
	b, _ := parseBoolish(c.InteractiveLogin)
	return b
}

// Database proyecta la configuración del driver. Sin defaults aplicados:
// eso lo hace sqldb.NewFactory.
func (c *Config) Database() sqldb.Config {
	encrypt, _ := parseBoolish(c.SQLEncrypt)
	trust, _ := parseBoolish(c.SQLTrustCertificate)

	return sqldb.Config{
		Driver:                 c.SQLDriver,
		Server:                 c.SQLServer,
		Port:                   c.SQLPort,
		Database:               c.SQLDatabase,
		User:                   c.SQLUser,
		Schema:                 c.SQLSchema,
		Encrypt:                encrypt,
		TrustServerCertificate: trust,
		ConnectionTimeout:      time.Duration(c.SQLConnectionTimeout) * time.Second,
		TokenScope:             c.SQLTokenScope,
		AppName:                c.AppName,
	}
}

// parseBoolish acepta yes/no además de los valores de strconv.ParseBool.
func parseBoolish(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "t", "1", "on":
		return true, true
	case "no", "n", "false", "f", "0", "off":
		return false, true
	default:
		return false, false
	}
}
