// Package config предоставляет управление конфигурацией приложения
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"funpay-normalizer/internal/clock"
)

// Logging содержит конфигурацию логирования
type Logging struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // text, json
}

// Normalization содержит конфигурацию нормализации
type Normalization struct {
	// ReferenceTime фиксирует «текущий момент» для относительных дат.
	// Пустое значение означает системные часы.
	ReferenceTime string `json:"reference_time" yaml:"reference_time"`
	Workers       int    `json:"workers" yaml:"workers"`
	StrictInput   bool   `json:"strict_input" yaml:"strict_input"`

	// CacheTTL задает срок жизни кэша выгрузок, 0 отключает кэш.
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// Columns содержит ширину колонок консольной таблицы
type Columns struct {
	Sender int `json:"sender" yaml:"sender"`
	Badge  int `json:"badge" yaml:"badge"`
	SentAt int `json:"sent_at" yaml:"sent_at"`
	Text   int `json:"text" yaml:"text"`
}

// Output содержит конфигурацию вывода
type Output struct {
	Format  string  `json:"format" yaml:"format"` // console, json, xlsx
	Path    string  `json:"path" yaml:"path"`     // "-" для stdout
	Indent  bool    `json:"indent" yaml:"indent"`
	Columns Columns `json:"columns" yaml:"columns"`
}

// Config содержит конфигурацию приложения
type Config struct {
	Logging       Logging       `json:"logging" yaml:"logging"`
	Normalization Normalization `json:"normalization" yaml:"normalization"`
	Output        Output        `json:"output" yaml:"output"`
}

// LoadConfig собирает конфигурацию: значения по умолчанию, затем YAML-файл
// (если он есть), затем переменные окружения, в том числе из .env.
func LoadConfig(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := defaultConfig()
	if err := loadFromYAML(path, cfg); err != nil {
		return nil, err
	}
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию из env: %w", err)
	}
	return cfg, nil
}

// loadFromYAML накладывает значения из YAML-файла поверх cfg.
// Отсутствие файла ошибкой не считается.
func loadFromYAML(filename string, cfg *Config) error {
	if filename == "" {
		return nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("не удалось разобрать YAML конфигурацию: %w", err)
	}
	return nil
}

// loadFromEnv переопределяет значения переменными окружения NORMALIZER_*.
func loadFromEnv(cfg *Config) error {
	cfg.Logging.Level = getEnv("NORMALIZER_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("NORMALIZER_LOG_FORMAT", cfg.Logging.Format)
	cfg.Normalization.ReferenceTime = getEnv("NORMALIZER_REFERENCE_TIME", cfg.Normalization.ReferenceTime)
	cfg.Output.Format = getEnv("NORMALIZER_OUTPUT_FORMAT", cfg.Output.Format)
	cfg.Output.Path = getEnv("NORMALIZER_OUTPUT_PATH", cfg.Output.Path)

	if v := os.Getenv("NORMALIZER_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("недопустимый NORMALIZER_WORKERS: %w", err)
		}
		cfg.Normalization.Workers = workers
	}
	return nil
}

// ReferenceTime разбирает normalization.reference_time. Время без зоны
// считается UTC. Для пустого значения возвращает нулевое время и false.
func (c *Config) ReferenceTime() (time.Time, bool, error) {
	if c.Normalization.ReferenceTime == "" {
		return time.Time{}, false, nil
	}
	t, err := dateparse.ParseIn(c.Normalization.ReferenceTime, time.UTC)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("недопустимый normalization.reference_time %q: %w", c.Normalization.ReferenceTime, err)
	}
	return t.UTC(), true, nil
}

// Clock возвращает часы для нормализатора дат: фиксированные, если задан
// reference_time, иначе системные.
func (c *Config) Clock() (clock.Clock, error) {
	t, ok, err := c.ReferenceTime()
	if err != nil {
		return nil, err
	}
	if !ok {
		return clock.NewSystemClock(), nil
	}
	return clock.NewFixedClock(t), nil
}

// Validate проверяет, являются ли значения конфигурации допустимыми
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level должен быть одним из: debug, info, warn, error")
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format должен быть одним из: text, json")
	}

	if c.Normalization.Workers <= 0 {
		return fmt.Errorf("normalization.workers должно быть положительным")
	}

	if c.Normalization.CacheTTL < 0 {
		return fmt.Errorf("normalization.cache_ttl должно быть неотрицательным (0 отключает кэш)")
	}

	if _, _, err := c.ReferenceTime(); err != nil {
		return err
	}

	switch c.Output.Format {
	case "console", "json", "xlsx":
	default:
		return fmt.Errorf("output.format должен быть одним из: console, json, xlsx")
	}

	if c.Output.Path == "" {
		return fmt.Errorf("output.path не может быть пустым (используйте \"-\" для stdout)")
	}

	cols := c.Output.Columns
	if cols.Sender <= 0 || cols.Badge <= 0 || cols.SentAt <= 0 || cols.Text <= 0 {
		return fmt.Errorf("output.columns: ширина колонок должна быть положительной")
	}

	return nil
}

// getEnv извлекает значение переменной окружения или возвращает значение по умолчанию, если она не установлена
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
