package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"funpay-normalizer/internal/adapters/exporter"
	"funpay-normalizer/internal/adapters/parser"
	"funpay-normalizer/internal/adapters/source"
	"funpay-normalizer/internal/cache"
	"funpay-normalizer/internal/core/services"
	"funpay-normalizer/internal/domain"
	"funpay-normalizer/internal/log"
	"funpay-normalizer/internal/pkg/config"
	"funpay-normalizer/internal/ports"
	"funpay-normalizer/internal/usecase"
)

const stdoutPath = "-"

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("application run failed", "error", err)
		os.Exit(1)
	}
}

// run инкапсулирует всю логику инициализации и запуска утилиты.
func run(args []string) error {
	fs := flag.NewFlagSet("normalizer", flag.ContinueOnError)
	configPath := fs.String("config", "config.yml", "путь к YAML-конфигурации")
	now := fs.String("now", "", "фиксированный текущий момент для относительных дат")
	format := fs.String("format", "", "формат вывода: console, json, xlsx")
	out := fs.String("out", "", "файл для результата, \"-\" для stdout")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: normalizer [flags] <file1.json> [file2.json ...]  (\"-\" читает stdin)")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1. Загрузка конфигурации, флаги важнее файла и окружения
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *now != "" {
		cfg.Normalization.ReferenceTime = *now
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *out != "" {
		cfg.Output.Path = *out
	}

	// 2. Инициализация логгера. Логи идут в stderr, stdout занят результатом.
	logger := log.NewLogger(cfg.Logging.Level, cfg.Logging.Format, os.Stderr).
		With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return fmt.Errorf("не указан ни один файл выгрузки")
	}

	// 3. Инициализация зависимостей
	clk, err := cfg.Clock()
	if err != nil {
		return err
	}
	var opts []usecase.Option
	if cfg.Normalization.CacheTTL > 0 {
		opts = append(opts, usecase.WithCache(cache.NewPageCache(clk, cfg.Normalization.CacheTTL), clk))
	}
	badges := services.NewBadgeClassifier()
	processor := usecase.NewNormalizePageUseCase(
		parser.NewJsonParser(cfg.Normalization.StrictInput),
		services.NewDateNormalizer(clk),
		badges,
		services.NewSenderResolver(badges),
		cfg.Normalization.Workers,
		logger.With(slog.String("component", "usecase")),
		opts...,
	)

	sources := make([]ports.DataSource, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, source.NewCliSource(p))
	}

	// 4. Нормализация с отменой по сигналу
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting normalization", "files", len(sources), "now", clk.Now())
	pages, err := processor.Run(ctx, sources)
	if err != nil {
		return err
	}

	// 5. Экспорт
	for i, page := range pages {
		if err := export(cfg, page, outputPath(cfg.Output.Path, i, len(pages)), logger); err != nil {
			return fmt.Errorf("failed to export %s: %w", page.Source, err)
		}
	}
	logger.Info("Normalization finished", "pages", len(pages))
	return nil
}

func export(cfg *config.Config, page *domain.NormalizedPage, path string, logger *slog.Logger) (err error) {
	var w io.Writer = os.Stdout
	if path != stdoutPath {
		var f *os.File
		f, err = os.Create(path)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}

	var exp ports.Exporter
	switch cfg.Output.Format {
	case "json":
		exp = exporter.NewJSONExporter(w, cfg.Output.Indent)
	case "xlsx":
		exp = exporter.NewXLSXExporter(w, logger)
	default:
		cols := cfg.Output.Columns
		exp = exporter.NewConsoleExporter(w, exporter.ColumnWidths{
			Sender: cols.Sender,
			Badge:  cols.Badge,
			SentAt: cols.SentAt,
			Text:   cols.Text,
		})
	}
	return exp.Export(page)
}

// outputPath дает каждому документу свой файл, когда их несколько:
// out.xlsx превращается в out-1.xlsx, out-2.xlsx и так далее.
func outputPath(base string, i, total int) string {
	if total <= 1 || base == stdoutPath {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), i+1, ext)
}
