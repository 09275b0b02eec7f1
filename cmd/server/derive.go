package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/special-api/internal/engine"
	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/i18n"
	"github.com/KirkDiggler/special-api/internal/orchestrators/actor"
	"github.com/KirkDiggler/special-api/internal/rules"
)

var (
	deriveFile    string
	deriveLocale  string
	deriveVerbose bool
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive an actor file offline",
	Long: `Run the derivation pipeline over an actor JSON file without a server or
Redis and print the prepared view.`,
	RunE: runDerive,
}

func init() {
	deriveCmd.Flags().StringVar(&deriveFile, "file", "", "Path to the actor JSON (required)")
	deriveCmd.Flags().StringVar(&deriveLocale, "locale", i18n.BaseLocale, "Locale for labels and messages")
	deriveCmd.Flags().BoolVar(&deriveVerbose, "verbose", false, "Log every applied and skipped rule element")
	_ = deriveCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init
}

func runDerive(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(deriveFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", deriveFile, err)
	}

	a := &entities.Actor{}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("failed to decode %s: %w", deriveFile, err)
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("invalid actor: %w", err)
	}

	level := slog.LevelWarn
	if deriveVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	bus := events.NewBus()
	actor.SubscribeAudit(bus, logger)

	eng, err := engine.New(&engine.Config{
		Factory:  rules.DefaultRegistry(),
		EventBus: bus,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("failed to load locale catalogs: %w", err)
	}

	if err := eng.PrepareActor(context.Background(), a); err != nil {
		return fmt.Errorf("failed to prepare actor: %w", err)
	}

	view, err := actor.BuildView(a, bundle.Localizer(deriveLocale))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
