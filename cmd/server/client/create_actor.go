package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/handlers/special/v1alpha1"
)

var actorFile string

var createActorCmd = &cobra.Command{
	Use:   "create-actor",
	Short: "Create an actor from a JSON file",
	Long:  `Create an actor from a JSON document in the persisted actor shape. Missing IDs are generated.`,
	RunE:  runCreateActor,
}

func init() {
	createActorCmd.Flags().StringVar(&actorFile, "file", "", "Path to the actor JSON (required)")
	_ = createActorCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init
}

func runCreateActor(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(actorFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", actorFile, err)
	}

	a := &entities.Actor{}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("failed to decode %s: %w", actorFile, err)
	}

	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateActor(ctx, &v1alpha1.CreateActorRequest{Actor: a, Locale: locale})
	if err != nil {
		return fmt.Errorf("failed to create actor: %w", rpcError(err))
	}

	if rawJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Actor created successfully!\n\n")
	printView(cmd.OutOrStdout(), resp.View)
	return nil
}
