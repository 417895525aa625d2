// Command immutalint checks the Go files under the given paths against the
// immutability rules and prints a report.
//
// Runtime behavior is configured from the environment with the IMMUTALINT_
// prefix (a .env file is honored): log level, output format, worker count,
// whether _test.go files are inspected, an optional baseline file, and a
// per-file violation cap. Paths come from the command line.
//
// Exit codes: 0 clean, 1 violations found, 2 hard error.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/comalice/immutalint"
	"github.com/comalice/immutalint/internal/production"
	"github.com/comalice/immutalint/runner"
)

// Config is the process runtime configuration. This deliberately carries no
// rule options: which forms the rules forbid is fixed in code.
type Config struct {
	LogLevel      string `koanf:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	Format        string `koanf:"format" validate:"omitempty,oneof=text json yaml"`
	Workers       int    `koanf:"workers" validate:"gte=0"`
	IncludeTests  bool   `koanf:"include_tests"`
	Baseline      string `koanf:"baseline"`
	WriteBaseline bool   `koanf:"write_baseline"`
	MaxViolations int    `koanf:"max_violations" validate:"gte=0"`
	Snippets      bool   `koanf:"snippets"`
}

func loadConfig(logger zerolog.Logger) Config {
	k := koanf.New(".")
	err := k.Load(env.Provider("IMMUTALINT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "IMMUTALINT_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load env variables")
	}

	cfg := Config{LogLevel: "info", Format: "text"}
	if err := k.Unmarshal("", &cfg); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}
	if err := validator.New().Struct(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}
	return cfg
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := loadConfig(logger)
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{"."}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, logger, cfg, paths))
}

func run(ctx context.Context, logger zerolog.Logger, cfg Config, paths []string) int {
	opts := []runner.Option{runner.WithLogger(&logger)}

	var store *production.BaselineStore
	if cfg.Baseline != "" {
		var err error
		store, err = production.NewBaselineStore(cfg.Baseline)
		if err != nil {
			logger.Error().Err(err).Msg("baseline store")
			return 2
		}
		if !cfg.WriteBaseline {
			baseline, err := store.Load(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("baseline load")
				return 2
			}
			logger.Debug().Int("known", baseline.Len()).Msg("baseline loaded")
			opts = append(opts, runner.WithBaseline(baseline))
		}
	}

	r := runner.New(runner.Config{
		Workers:       cfg.Workers,
		IncludeTests:  cfg.IncludeTests,
		MaxViolations: cfg.MaxViolations,
	}, opts...)

	report, err := r.Run(ctx, paths...)
	if err != nil && !errors.Is(err, immutalint.ErrTooManyViolations) {
		logger.Error().Err(err).Msg("run failed")
		return 2
	}
	if errors.Is(err, immutalint.ErrTooManyViolations) {
		logger.Warn().Int("cap", cfg.MaxViolations).Msg("violation cap reached; report truncated")
	}

	if cfg.WriteBaseline && store != nil {
		if err := store.Write(ctx, report); err != nil {
			logger.Error().Err(err).Msg("baseline write")
			return 2
		}
		logger.Info().Int("recorded", len(report.Violations)).Str("path", cfg.Baseline).Msg("baseline written")
		return 0
	}

	switch cfg.Format {
	case "json":
		if err := production.WriteJSON(os.Stdout, report); err != nil {
			logger.Error().Err(err).Msg("write report")
			return 2
		}
	case "yaml":
		if err := production.WriteYAML(os.Stdout, report); err != nil {
			logger.Error().Err(err).Msg("write report")
			return 2
		}
	default:
		renderer := &production.TextRenderer{Snippets: cfg.Snippets}
		if _, err := os.Stdout.WriteString(renderer.Render(report)); err != nil {
			logger.Error().Err(err).Msg("write report")
			return 2
		}
	}

	if !report.Clean() {
		return 1
	}
	return 0
}
