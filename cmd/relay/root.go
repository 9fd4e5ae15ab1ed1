package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spetersoncode/relay/config"
	"github.com/spetersoncode/relay/model"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "relay",
	Short: "relay: LLM dispatch and tool orchestration",
	Long:  `relay routes prompts to LLM providers, services tool calls, and stores results.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setup loads configuration and builds the logger and model registry
// shared by all subcommands.
func setup() (*config.Config, zerolog.Logger, *model.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	descriptors := model.Catalog()
	if cfg.CatalogPath != "" {
		descriptors, err = model.LoadCatalogFile(cfg.CatalogPath)
		if err != nil {
			return nil, log, nil, fmt.Errorf("load model catalog: %w", err)
		}
	}
	registry := model.New(descriptors, model.WithFXMultiplier(cfg.FXMultiplier))

	return cfg, log, registry, nil
}
