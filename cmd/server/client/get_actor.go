package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/special-api/internal/handlers/special/v1alpha1"
)

var (
	actorID  string
	playerID string
)

var getActorCmd = &cobra.Command{
	Use:   "get-actor",
	Short: "Get a prepared actor",
	RunE:  runGetActor,
}

var listActorsCmd = &cobra.Command{
	Use:   "list-actors",
	Short: "List a player's actors",
	RunE:  runListActors,
}

var deleteActorCmd = &cobra.Command{
	Use:   "delete-actor",
	Short: "Delete an actor",
	RunE:  runDeleteActor,
}

func init() {
	getActorCmd.Flags().StringVar(&actorID, "actor-id", "", "Actor ID (required)")
	_ = getActorCmd.MarkFlagRequired("actor-id") // nolint:errcheck // safe to ignore in init

	listActorsCmd.Flags().StringVar(&playerID, "player-id", "", "Player ID (required)")
	_ = listActorsCmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init

	deleteActorCmd.Flags().StringVar(&actorID, "actor-id", "", "Actor ID (required)")
	_ = deleteActorCmd.MarkFlagRequired("actor-id") // nolint:errcheck // safe to ignore in init
}

func runGetActor(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetActor(ctx, &v1alpha1.GetActorRequest{ID: actorID, Locale: locale})
	if err != nil {
		return fmt.Errorf("failed to get actor: %w", rpcError(err))
	}

	if rawJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printView(cmd.OutOrStdout(), resp.View)
	return nil
}

func runListActors(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListActors(ctx, &v1alpha1.ListActorsRequest{PlayerID: playerID, Locale: locale})
	if err != nil {
		return fmt.Errorf("failed to list actors: %w", rpcError(err))
	}

	if rawJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Found %d actors for player %s\n", len(resp.Views), playerID)
	for _, view := range resp.Views {
		fmt.Fprintf(cmd.OutOrStdout(), "\n")
		printView(cmd.OutOrStdout(), view)
	}
	return nil
}

func runDeleteActor(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteActor(ctx, &v1alpha1.DeleteActorRequest{ID: actorID}); err != nil {
		return fmt.Errorf("failed to delete actor: %w", rpcError(err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Actor %s deleted\n", actorID)
	return nil
}
