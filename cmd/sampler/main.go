package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/Vikt-B/sampling/pkg/config"
	"github.com/Vikt-B/sampling/pkg/logging"
	"github.com/Vikt-B/sampling/pkg/render"
	"github.com/Vikt-B/sampling/pkg/sampling"
	"github.com/Vikt-B/sampling/pkg/source"
	"github.com/Vikt-B/sampling/pkg/storage"
)

func main() {
	configPath := flag.String("config", "", "path to the config file (yaml or toml)")
	start := flag.String("start", "", "start of sampling, ISO 8601")
	input := flag.String("input", "", "dataset file or http url; the reference dataset is used when empty")
	format := flag.String("format", "", "output format: text, json or yaml")
	category := flag.String("category", "", "only print this category")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	applyFlags(cfg, *start, *input, *format, *category)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	settings := cfg.Process()

	log := logging.New(os.Stderr, settings.Log).With("run", uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, settings); err != nil {
		log.Error("sampling failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig 没有指定路径且默认配置文件不存在时使用空配置
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigPath); errors.Is(err, os.ErrNotExist) {
			return config.NewConfig(), nil
		}
	}
	return config.NewLoader(path).Load()
}

func applyFlags(cfg *config.Config, start, input, format, category string) {
	if start != "" {
		cfg.Sampling.Start = start
	}
	if input != "" {
		if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
			cfg.Source.Kind = config.SourceHTTP
			cfg.Source.URL = input
		} else {
			cfg.Source.Kind = config.SourceFile
			cfg.Source.Path = input
		}
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if category != "" {
		cfg.Output.Category = category
	}
}

func run(ctx context.Context, log *slog.Logger, s config.Settings) error {
	src, err := source.New(s.Source)
	if err != nil {
		return err
	}
	readings, err := src.Load(ctx)
	if err != nil {
		return err
	}
	start := s.Start
	if start.IsZero() && s.Source.Kind == config.SourceReference {
		start = source.ReferenceStart
	}
	log.Info("loaded readings", "source", s.Source.Kind, "readings", len(readings), "start", start)

	sampler, err := sampling.New(
		sampling.WithLogger(log),
		sampling.WithCategories(s.Categories),
	)
	if err != nil {
		return err
	}
	samples, err := sampler.Run(start, readings)
	if err != nil {
		return err
	}

	selected, err := storage.Select(samples, s.Output.Category, s.Output.From, s.Output.To)
	if err != nil {
		return err
	}
	log.Info("sampled readings", "samples", len(samples), "printed", len(selected))
	return render.Write(os.Stdout, s.Output.Format, selected)
}
