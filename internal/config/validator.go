package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks value ranges and the settings each selected backend needs
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var missing []string
	switch c.PriceListStore {
	case StoreRedis:
		if c.RedisAddr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	case StoreDynamoDB:
		if c.DynamoDBTable == "" {
			missing = append(missing, "DYNAMODB_TABLE")
		}
	case StoreFile:
		if c.PriceListDir == "" {
			missing = append(missing, "PRICELIST_DIR")
		}
	}
	if c.DBDriver == DriverSQLite && c.SQLitePath == "" {
		missing = append(missing, "SQLITE_PATH")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Warnings returns non-fatal notes about insecure or suspicious settings
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBDriver == DriverPostgres && c.DBPassword == "postgres" && c.Environment == "prod" {
		warnings = append(warnings, "DB_PASSWORD is using the default value in production")
	}
	if c.JWTSecret == "change_this_secret_value" {
		warnings = append(warnings, "JWT_SECRET appears to be using the example value - generate one with: openssl rand -hex 32")
	}
	return warnings
}
