package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DB       *DBconfig       `yaml:"db"`
	Redis    *Redisconfig    `yaml:"redis"`
	RabbitMq *RabbitMqconfig `yaml:"rabbitmq"`
	Srv      *Serviceconfig  `yaml:"services"`
	Log      *Loggerconfig   `yaml:"logger"`
	App      *Appconfig      `yaml:"app"`
}

type DBconfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type Redisconfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type RabbitMqconfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
}

type Serviceconfig struct {
	AuthServicePort string `yaml:"auth_service"`
	TripServicePort string `yaml:"trip_service"`
}

type Loggerconfig struct {
	Level string `yaml:"level"`
}

type Appconfig struct {
	JwtSecret          string `yaml:"jwt_secret"`
	ClientURL          string `yaml:"client_url"`
	GoogleClientID     string `yaml:"google_client_id"`
	GoogleClientSecret string `yaml:"google_client_secret"`
	GoogleRedirectURL  string `yaml:"google_redirect_url"`
}

// Load builds the configuration from an optional YAML file with environment
// variables taking precedence over file values.
func Load(path string) (*Config, error) {
	cnf := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cnf); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cnf.applyEnv()
	return cnf, nil
}

// New builds the configuration from environment variables only.
func New() (*Config, error) {
	return Load("")
}

func defaults() *Config {
	return &Config{
		DB: &DBconfig{
			Host:     "localhost",
			Port:     5432,
			User:     "nepxplore_user",
			Password: "nepxplore_pass",
			Database: "nepxplore_db",
		},
		Redis: &Redisconfig{
			Addr: "localhost:6379",
		},
		RabbitMq: &RabbitMqconfig{
			Host:     "localhost",
			Port:     5672,
			User:     "guest",
			Password: "guest",
			VHost:    "",
		},
		Srv: &Serviceconfig{
			AuthServicePort: "4001",
			TripServicePort: "4000",
		},
		Log: &Loggerconfig{
			Level: "INFO",
		},
		App: &Appconfig{
			JwtSecret:         "dev-secret",
			ClientURL:         "http://localhost:5173",
			GoogleRedirectURL: "http://localhost:4001/auth/google/callback",
		},
	}
}

func (c *Config) applyEnv() {
	getEnv := func(key, def string) string {
		val := os.Getenv(key)
		if val == "" {
			return def
		}
		return val
	}

	getEnvInt := func(key string, def int) int {
		valStr := os.Getenv(key)
		if valStr == "" {
			return def
		}
		val, err := strconv.Atoi(valStr)
		if err != nil {
			fmt.Printf("invalid value for %v, using default %v\n", key, def)
			return def
		}
		return val
	}

	c.DB.Host = getEnv("DB_HOST", c.DB.Host)
	c.DB.Port = getEnvInt("DB_PORT", c.DB.Port)
	c.DB.User = getEnv("DB_USER", c.DB.User)
	c.DB.Password = getEnv("DB_PASSWORD", c.DB.Password)
	c.DB.Database = getEnv("DB_NAME", c.DB.Database)

	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)

	c.RabbitMq.Host = getEnv("RABBITMQ_HOST", c.RabbitMq.Host)
	c.RabbitMq.Port = getEnvInt("RABBITMQ_PORT", c.RabbitMq.Port)
	c.RabbitMq.User = getEnv("RABBITMQ_USER", c.RabbitMq.User)
	c.RabbitMq.Password = getEnv("RABBITMQ_PASSWORD", c.RabbitMq.Password)
	c.RabbitMq.VHost = getEnv("RABBITMQ_VHOST", c.RabbitMq.VHost)

	c.Srv.AuthServicePort = getEnv("AUTH_SERVICE_PORT", c.Srv.AuthServicePort)
	c.Srv.TripServicePort = getEnv("TRIP_SERVICE_PORT", c.Srv.TripServicePort)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)

	c.App.JwtSecret = getEnv("JWT_SECRET", c.App.JwtSecret)
	c.App.ClientURL = getEnv("CLIENT_URL", c.App.ClientURL)
	c.App.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", c.App.GoogleClientID)
	c.App.GoogleClientSecret = getEnv("GOOGLE_CLIENT_SECRET", c.App.GoogleClientSecret)
	c.App.GoogleRedirectURL = getEnv("GOOGLE_REDIRECT_URL", c.App.GoogleRedirectURL)
}
