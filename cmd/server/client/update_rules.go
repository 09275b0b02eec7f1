package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/special-api/internal/handlers/special/v1alpha1"
)

var (
	itemID   string
	sources  []string
	resource string
	value    float64
)

var updateRulesCmd = &cobra.Command{
	Use:   "update-rules",
	Short: "Replace an item's rule element sources",
	Long: `Replace an item's rule element sources with the given texts. When any text
fails to parse nothing is saved and the syntax errors are listed.`,
	Example: `  special-api client update-rules --actor-id a1 --item-id hat \
    --source '{"type":"flat-modifier","selector":"specials.luck","value":2}'`,
	RunE: runUpdateRules,
}

var updateResourceCmd = &cobra.Command{
	Use:   "update-resource",
	Short: "Set the current value of hitPoints or actionPoints",
	RunE:  runUpdateResource,
}

func init() {
	updateRulesCmd.Flags().StringVar(&actorID, "actor-id", "", "Actor ID (required)")
	updateRulesCmd.Flags().StringVar(&itemID, "item-id", "", "Item ID (required)")
	updateRulesCmd.Flags().StringArrayVar(&sources, "source", nil, "Rule element source text, repeatable")
	_ = updateRulesCmd.MarkFlagRequired("actor-id") // nolint:errcheck // safe to ignore in init
	_ = updateRulesCmd.MarkFlagRequired("item-id")  // nolint:errcheck // safe to ignore in init

	updateResourceCmd.Flags().StringVar(&actorID, "actor-id", "", "Actor ID (required)")
	updateResourceCmd.Flags().StringVar(&resource, "resource", "hitPoints", "hitPoints or actionPoints")
	updateResourceCmd.Flags().Float64Var(&value, "value", 0, "New current value")
	_ = updateResourceCmd.MarkFlagRequired("actor-id") // nolint:errcheck // safe to ignore in init
	_ = updateResourceCmd.MarkFlagRequired("value")    // nolint:errcheck // safe to ignore in init
}

func runUpdateRules(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.UpdateRuleElements(ctx, &v1alpha1.UpdateRuleElementsRequest{
		ActorID: actorID,
		ItemID:  itemID,
		Sources: sources,
		Locale:  locale,
	})
	if err != nil {
		return fmt.Errorf("failed to update rule elements: %w", rpcError(err))
	}

	if rawJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	if !resp.Saved {
		fmt.Fprintf(cmd.OutOrStdout(), "❌ Nothing saved, %d sources failed to parse:\n", len(resp.SyntaxErrors))
		for _, se := range resp.SyntaxErrors {
			fmt.Fprintf(cmd.OutOrStdout(), "  - [%d] %s\n", se.Index, se.Message.Text)
		}
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Rule elements saved\n\n")
	printView(cmd.OutOrStdout(), resp.View)
	return nil
}

func runUpdateResource(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.UpdateResource(ctx, &v1alpha1.UpdateResourceRequest{
		ActorID:  actorID,
		Resource: resource,
		Value:    value,
		Locale:   locale,
	})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", resource, rpcError(err))
	}

	if rawJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printView(cmd.OutOrStdout(), resp.View)
	return nil
}
