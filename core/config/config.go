package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Redis       RedisConfig     `mapstructure:"redis"`
	JWT         JWTConfig       `mapstructure:"jwt"`
	Scheduler   SchedulerConfig `mapstructure:"scheduler"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type SchedulerConfig struct {
	// ReminderCron fires the daily appointment reminder job
	ReminderCron string `mapstructure:"reminder_cron"`
}

var (
	instance *Config
	once     sync.Once
)

// Load reads configuration from config.yaml and the environment.
// Environment variables win over file values (MENTORHUB_SERVER_PORT etc).
func Load() (*Config, error) {
	var loadErr error

	once.Do(func() {
		_ = godotenv.Load()

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		v.SetEnvPrefix("MENTORHUB")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		v.SetDefault("environment", "development")
		v.SetDefault("server.host", "0.0.0.0")
		v.SetDefault("server.port", 7070)
		v.SetDefault("database.host", "localhost")
		v.SetDefault("database.port", 5432)
		v.SetDefault("database.sslmode", "disable")
		v.SetDefault("redis.addr", "localhost:6379")
		v.SetDefault("redis.db", 0)
		v.SetDefault("scheduler.reminder_cron", "0 7 * * *")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				loadErr = fmt.Errorf("read config: %w", err)
				return
			}
		}

		cfg := &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			loadErr = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		instance = cfg
	})

	if loadErr != nil {
		return nil, loadErr
	}
	return instance, nil
}

// Get returns the loaded configuration, panicking if Load was never called
func Get() *Config {
	if instance == nil {
		panic("config not initialized")
	}
	return instance
}

// GetSafe returns the configuration and whether it has been initialized
func GetSafe() (*Config, bool) {
	return instance, instance != nil
}
