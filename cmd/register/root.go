package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/divine-encounter/event-registration/checkout"
	"github.com/divine-encounter/event-registration/client"
	"github.com/divine-encounter/event-registration/events"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type Config struct {
	APIBaseURL        string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	PaystackPublicKey string `env:"PAYSTACK_PUBLIC_KEY"`
	PublicOrigin      string `env:"PUBLIC_ORIGIN" envDefault:"https://divineencounter.org"`
	// Must match the backend's EVENT_ID so calendar entries share a UID.
	EventID uuid.UUID `env:"EVENT_ID" envDefault:"3f0d5b8e-1c2a-4e6f-9b7d-2026de0e0001"`
}

func loadConfig() (Config, error) {
	// A missing .env is fine, everything can come from the environment.
	_ = godotenv.Load()

	var cfg Config
	err := env.Parse(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	cfg, cfgErr := loadConfig()
	var debug bool

	cmd := &cobra.Command{
		Use:          "register",
		Short:        "Register and pay for Divine Encounter 2026",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if cfg.PaystackPublicKey == "" {
				return errors.New("a Paystack public key is required, set PAYSTACK_PUBLIC_KEY or --paystack-public-key")
			}

			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return runSignup(cmd, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "base URL of the registration backend")
	cmd.Flags().StringVar(&cfg.PaystackPublicKey, "paystack-public-key", cfg.PaystackPublicKey, "Paystack public key used to open the payment")
	cmd.PersistentFlags().StringVar(&cfg.PublicOrigin, "origin", cfg.PublicOrigin, "public address of the signup site, used in share links")
	cmd.Flags().BoolVar(&debug, "debug", false, "log signup state changes")

	cmd.AddCommand(newShareLinksCmd(&cfg), newCalendarCmd(&cfg))

	return cmd
}

func runSignup(cmd *cobra.Command, cfg Config, logger *slog.Logger) error {
	in := checkout.NewLineReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	event := events.DivineEncounter2026(cfg.EventID)

	orchestrator, err := checkout.NewOrchestrator(checkout.NewPromptWidget(in, out), cfg.PaystackPublicKey, event.Price, event.Name)
	if err != nil {
		return err
	}

	page := newTerminalPage(out, cfg.PublicOrigin)
	backend := client.NewClient(nil, cfg.APIBaseURL)
	flow := checkout.NewFlow(page, backend, orchestrator, backend, logger)

	fmt.Fprintf(out, "%s\n%s\n\n", event.Name, event.Tagline)

	prompter := newFormPrompter(in, out)
	for {
		form, err := prompter.Prompt(cmd.Context())
		if err != nil {
			return err
		}

		err = flow.Submit(cmd.Context(), form)
		if err == nil {
			return nil
		}
		if flow.State() == checkout.COMPLETED {
			return err
		}

		again, promptErr := prompter.Confirm(cmd.Context(), "Try again?")
		if promptErr != nil {
			return promptErr
		}
		if !again {
			return err
		}
	}
}
