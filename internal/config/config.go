package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jvz16/SalonBookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Business Business `toml:"business"`
	WhatsApp WhatsApp `toml:"whatsapp"`
}

// Server настройки HTTP-сервера
type Server struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // секунды
	WriteTimeout    int    `toml:"write_timeout"`    // секунды
	IdleTimeout     int    `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout"` // секунды
	AdminToken      string `toml:"admin_token"`      // переопределяется env ADMIN_TOKEN
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"` // переопределяется env DB_PASSWORD
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Business политика рабочих часов салона.
// Статическая конфигурация, а не глобальное состояние: передается явно
// в движок доступности и валидатор.
type Business struct {
	OpenHour        int `toml:"open_hour"`
	CloseHour       int `toml:"close_hour"`
	SlotStepMinutes int `toml:"slot_step_minutes"`
}

// Hours конвертирует секцию в доменную политику рабочих часов
func (b Business) Hours() domain.BusinessHours {
	hours := domain.BusinessHours{
		OpenHour:        b.OpenHour,
		CloseHour:       b.CloseHour,
		SlotStepMinutes: b.SlotStepMinutes,
	}
	if hours.SlotStepMinutes == 0 {
		hours.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	return hours
}

// WhatsApp настройки уведомлений через Twilio WhatsApp API.
// Секреты (SID и токен) читаются только из окружения.
type WhatsApp struct {
	Enabled        bool   `toml:"enabled"`
	BaseURL        string `toml:"base_url"` // по умолчанию https://api.twilio.com
	From           string `toml:"from"`     // например "whatsapp:+14155238886"
	OwnerNumber    string `toml:"owner_number"`
	SalonName      string `toml:"salon_name"`
	DefaultCountry string `toml:"default_country"` // код страны для локальных номеров, например "+506"
	Timeout        int    `toml:"timeout"`         // секунды
}

// Load загружает конфигурацию из TOML-файла и применяет переменные окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// Секреты из окружения имеют приоритет над файлом
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}

	if err := cfg.Business.Hours().Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}
