package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/divine-encounter/event-registration/events"
	"github.com/divine-encounter/event-registration/success"
	"github.com/spf13/cobra"
)

func newShareLinksCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "share-links",
		Short: "Print the social share links for the event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(success.ShareLinks(cfg.PublicOrigin))
		},
	}
}

func newCalendarCmd(cfg *Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Write the event as an iCalendar file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			event := events.DivineEncounter2026(cfg.EventID)

			if output == "-" {
				return success.WriteCalendar(cmd.OutOrStdout(), event, time.Now())
			}
			if output == "" {
				output = success.CalendarFileName(event)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create calendar file: %w", err)
			}
			defer f.Close()

			err = success.WriteCalendar(f, event, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", output)
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `file to write, "-" for stdout (default divine-encounter-2026.ics)`)

	return cmd
}
