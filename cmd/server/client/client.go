// Package client provides test commands for the SPECIAL API gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/special-api/internal/handlers/special/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	locale     string
	rawJSON    bool
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the SPECIAL API",
	Long:  `Client commands allow you to test the SPECIAL API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&locale, "locale", "", "Locale for labels and messages")
	ClientCmd.PersistentFlags().BoolVar(&rawJSON, "json", false, "Print the raw JSON response")

	ClientCmd.AddCommand(createActorCmd)
	ClientCmd.AddCommand(getActorCmd)
	ClientCmd.AddCommand(listActorsCmd)
	ClientCmd.AddCommand(updateRulesCmd)
	ClientCmd.AddCommand(updateResourceCmd)
	ClientCmd.AddCommand(deleteActorCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createActorClient creates an actor service client
func createActorClient() (v1alpha1.ActorServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	client := v1alpha1.NewActorServiceClient(conn)
	return client, cleanup, nil
}
