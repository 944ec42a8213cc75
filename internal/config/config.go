package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config agrupa la configuración del servicio.
// Orden de carga: defaults -> archivo YAML opcional (VAX_CONFIG_PATH) -> variables de entorno.
type Config struct {
	App    string       `yaml:"app"`
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Auth   AuthConfig   `yaml:"auth"`
	Demo   DemoConfig   `yaml:"demo"`
}

type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DBConfig: si DSN está vacío se usa el store in-memory con los datos mock.
type DBConfig struct {
	DSN     string `yaml:"dsn"`
	Migrate bool   `yaml:"migrate"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AuthConfig struct {
	// LoginDelay es la espera antes de responder un login (default 1s, 0 = sin espera).
	LoginDelay time.Duration `yaml:"login_delay"`
}

// DemoConfig permite fijar la fecha "hoy" para que los datos mock sean coherentes.
type DemoConfig struct {
	Today string `yaml:"today"` // YYYY-MM-DD, vacío = reloj real
}

// Addr devuelve host:port para http.Server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Clock devuelve la función "now" que usan los servicios.
func (c Config) Clock() (func() time.Time, error) {
	raw := strings.TrimSpace(c.Demo.Today)
	if raw == "" {
		return time.Now, nil
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid demo.today %q: %w", raw, err)
	}
	// Se conserva la hora real sobre el día fijo para que los timestamps sigan avanzando.
	return func() time.Time {
		now := time.Now().UTC()
		return time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
	}, nil
}

func Default() Config {
	return Config{
		App: "vax-tracker",
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		DB: DBConfig{
			Migrate: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Auth: AuthConfig{
			LoginDelay: time.Second,
		},
	}
}

// Load lee la configuración desde un YAML opcional y variables de entorno.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("VAX_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("APP_NAME"); v != "" {
		cfg.App = v
	}
	if v := os.Getenv("VAX_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	// PORT se mantiene por compatibilidad con el deploy anterior.
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.DB.DSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("VAX_LOGIN_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid VAX_LOGIN_DELAY: %w", err)
		}
		cfg.Auth.LoginDelay = d
	}
	if v := os.Getenv("VAX_TODAY"); v != "" {
		cfg.Demo.Today = v
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
