package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/cortefacil/booking-service/internal/domain"
)

// Config конфигурация сервиса, загружается один раз при старте
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	Business BusinessConfig `toml:"business"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AdminConfig доступ к административным эндпоинтам:
// единый статический токен, сравнивается в middleware
type AdminConfig struct {
	Token string `toml:"token"`
}

type BusinessConfig struct {
	OpeningHour         int `toml:"opening_hour"`
	ClosingHour         int `toml:"closing_hour"`
	SlotIntervalMinutes int `toml:"slot_interval_minutes"`
}

// Hours конвертирует конфигурацию в domain.BusinessHours,
// подставляя дефолты для незаполненных значений
func (b BusinessConfig) Hours() domain.BusinessHours {
	hours := domain.DefaultBusinessHours()
	if b.OpeningHour != 0 || b.ClosingHour != 0 {
		hours.OpeningHour = b.OpeningHour
		hours.ClosingHour = b.ClosingHour
	}
	if b.SlotIntervalMinutes != 0 {
		hours.SlotIntervalMinutes = b.SlotIntervalMinutes
	}
	return hours
}

// Load читает конфигурацию из TOML файла
// Секреты можно переопределить через окружение (.env подхватывается, если есть):
// CORTEFACIL_DB_PASSWORD, CORTEFACIL_ADMIN_TOKEN
func Load(path string) (*Config, error) {
	// .env опционален, отсутствие файла не ошибка
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if v := os.Getenv("CORTEFACIL_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("CORTEFACIL_ADMIN_TOKEN"); v != "" {
		cfg.Admin.Token = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Admin.Token == "" {
		return fmt.Errorf("config: admin.token is required (or CORTEFACIL_ADMIN_TOKEN)")
	}
	if !c.Business.Hours().IsValid() {
		return fmt.Errorf("config: invalid business hours: opening=%d closing=%d interval=%d",
			c.Business.OpeningHour, c.Business.ClosingHour, c.Business.SlotIntervalMinutes)
	}
	return nil
}
