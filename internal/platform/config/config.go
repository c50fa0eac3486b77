// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	App AppConfig `mapstructure:"app"`
	DB  DBConfig  `mapstructure:"db"`
}

type AppConfig struct {
	Port           string `mapstructure:"port"`             // listening port
	StaticDataPath string `mapstructure:"static_data_path"` // JSON document for the static store / seed input
}

type DBConfig struct {
	Driver        string `mapstructure:"driver"` // mysql | postgres | sqlite | static
	Host          string `mapstructure:"host"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Name          string `mapstructure:"name"`
	Port          string `mapstructure:"port"`
	RunMigrations bool   `mapstructure:"run_migrations"`
}

// LoadConfig reads configuration from a .env file, environment variables, and defaults.
//
// Each database setting answers to two names: the DB_* form and the MYSQL* form
// used by managed MySQL hosting. The DB_* name wins when both are set.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Load .env into the process environment if present
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, relying on System Env Vars")
	}

	// Hardcoded development defaults
	v.SetDefault("app.port", "5000")
	v.SetDefault("app.static_data_path", "data/stocks.json")

	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "root")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "stock_market")
	v.SetDefault("db.port", "3306")
	v.SetDefault("db.run_migrations", true)

	// Explicit binds: flat env var names do not follow the key structure here
	bindEnv(v, "app.port", "PORT")
	bindEnv(v, "app.static_data_path", "STATIC_DATA_PATH")
	bindEnv(v, "db.driver", "DB_DRIVER")
	bindEnv(v, "db.host", "DB_HOST", "MYSQLHOST")
	bindEnv(v, "db.user", "DB_USER", "MYSQLUSER")
	bindEnv(v, "db.password", "DB_PASSWORD", "MYSQLPASSWORD")
	bindEnv(v, "db.name", "DB_NAME", "MYSQLDATABASE")
	bindEnv(v, "db.port", "DB_PORT", "MYSQLPORT")
	bindEnv(v, "db.run_migrations", "RUN_MIGRATIONS")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %v", err)
	}

	return &cfg, nil
}

// bindEnv is a helper to bind one key to its environment variable names.
func bindEnv(v *viper.Viper, key string, names ...string) {
	args := append([]string{key}, names...)
	if err := v.BindEnv(args...); err != nil {
		log.Printf("Could not bind env var for key %s: %v", key, err)
	}
}
