package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	ai "github.com/spetersoncode/relay"
	"github.com/spetersoncode/relay/ask"
	"github.com/spetersoncode/relay/config"
	"github.com/spetersoncode/relay/dispatch"
	"github.com/spetersoncode/relay/internal/provider/anthropic"
	"github.com/spetersoncode/relay/internal/provider/deepseek"
	"github.com/spetersoncode/relay/internal/provider/google"
	"github.com/spetersoncode/relay/internal/provider/openai"
	"github.com/spetersoncode/relay/model"
	"github.com/spetersoncode/relay/store"
)

var (
	askModel        string
	askInstructions []string
	askTemperature  float64
	askJSON         bool
)

var askCmd = &cobra.Command{
	Use:   "ask [prompt...]",
	Short: "Send a prompt and print the stored result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, registry, err := setup()
		if err != nil {
			return err
		}
		if askModel == "" {
			askModel = cfg.DefaultModel
		}

		dispatcher, err := buildDispatcher(cmd, cfg, registry, log)
		if err != nil {
			return err
		}

		results := store.NewResultStore()
		orchestrator := ask.New(dispatcher, results, registry,
			ask.WithMaxToolSteps(cfg.MaxToolSteps),
			ask.WithLogger(log),
		)

		opts := []ask.Option{ask.WithTemperature(askTemperature)}
		for _, inst := range askInstructions {
			opts = append(opts, ask.WithInstructions(inst))
		}
		if askJSON {
			opts = append(opts, ask.WithResponseFormat(ai.ResponseFormatJSON))
		}

		id, err := orchestrator.Execute(cmd.Context(), []string{strings.Join(args, " ")}, "cli", askModel, opts...)
		if err != nil {
			return err
		}

		result, err := results.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// buildDispatcher wires a gateway for every provider with a configured
// API key.
func buildDispatcher(cmd *cobra.Command, cfg *config.Config, registry *model.Registry, log zerolog.Logger) (*dispatch.Service, error) {
	opts := []dispatch.Option{dispatch.WithLogger(log)}

	if cfg.AnthropicAPIKey != "" {
		opts = append(opts, dispatch.WithGateway(ai.ProviderAnthropic, anthropic.New(cfg.AnthropicAPIKey)))
	}
	if cfg.OpenAIAPIKey != "" {
		opts = append(opts, dispatch.WithGateway(ai.ProviderOpenAI, openai.New(cfg.OpenAIAPIKey)))
	}
	if cfg.DeepSeekAPIKey != "" {
		opts = append(opts, dispatch.WithGateway(ai.ProviderDeepSeek, deepseek.New(cfg.DeepSeekAPIKey)))
	}
	if cfg.GoogleAPIKey != "" {
		gw, err := google.New(cmd.Context(), cfg.GoogleAPIKey)
		if err != nil {
			return nil, fmt.Errorf("create google gateway: %w", err)
		}
		opts = append(opts, dispatch.WithGateway(ai.ProviderGoogle, gw))
	}

	svc := dispatch.New(registry, opts...)
	if len(svc.Providers()) == 0 {
		return nil, fmt.Errorf("no provider API keys configured")
	}
	return svc, nil
}

func init() {
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "model identifier (default from RELAY_DEFAULT_MODEL)")
	askCmd.Flags().StringArrayVarP(&askInstructions, "instruction", "i", nil, "system instruction (repeatable)")
	askCmd.Flags().Float64VarP(&askTemperature, "temperature", "t", ask.DefaultTemperature, "sampling temperature")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "request a JSON response")
	rootCmd.AddCommand(askCmd)
}
