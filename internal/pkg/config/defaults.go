package config

import "time"

// Значения конфигурации по умолчанию.
const (
	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// Normalization defaults
	DefaultWorkers  = 4
	DefaultCacheTTL = 10 * time.Minute

	// Output defaults
	DefaultOutputFormat = "console"
	DefaultOutputPath   = "-"

	// Console column widths
	DefaultSenderWidth = 20
	DefaultBadgeWidth  = 20
	DefaultSentAtWidth = 19
	DefaultTextWidth   = 40
)

func defaultConfig() *Config {
	return &Config{
		Logging: Logging{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Normalization: Normalization{
			Workers:  DefaultWorkers,
			CacheTTL: DefaultCacheTTL,
		},
		Output: Output{
			Format: DefaultOutputFormat,
			Path:   DefaultOutputPath,
			Indent: true,
			Columns: Columns{
				Sender: DefaultSenderWidth,
				Badge:  DefaultBadgeWidth,
				SentAt: DefaultSentAtWidth,
				Text:   DefaultTextWidth,
			},
		},
	}
}
