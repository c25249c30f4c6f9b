// Package client provides commands for calling a running BuildService
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/errors"
	"github.com/muutmoku/ao-build-share/internal/handlers/buildshare/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	rawOutput  bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running build share server",
	Long:  `Client commands make real gRPC requests against the BuildService.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&rawOutput, "json", false, "print the raw JSON response")

	ClientCmd.AddCommand(normalizeCmd)
	ClientCmd.AddCommand(selectItemCmd)
	ClientCmd.AddCommand(selectEnchantCmd)
	ClientCmd.AddCommand(updateDetailsCmd)
	ClientCmd.AddCommand(enchantsCmd)
	ClientCmd.AddCommand(searchCmd)
	ClientCmd.AddCommand(previewCmd)
}

// createClient creates a BuildService client
func createClient() (v1alpha1.BuildServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewBuildServiceClient(conn), cleanup, nil
}

// call sends fields to method and returns the decoded response
func call(method string, fields map[string]interface{}) (*structpb.Struct, error) {
	client, cleanup, err := createClient()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to encode request")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return nil, describe(errors.FromGRPCError(err))
	}

	if rawOutput {
		fmt.Println(protojson.MarshalOptions{Multiline: true, Indent: "  "}.Format(resp))
	}
	return resp, nil
}

// describe appends error meta so rejected enchants show their options
func describe(err error) error {
	meta := errors.GetMeta(err)
	if opts, ok := meta["options"]; ok {
		return fmt.Errorf("%w (options: %v)", err, opts)
	}
	return err
}

// printState prints the share query and every non-empty slot
func printState(resp *structpb.Struct) {
	if rawOutput {
		return
	}

	fields := resp.GetFields()
	state := fields["state"].GetStructValue().GetFields()
	slots := state["slots"].GetStructValue().GetFields()
	enchants := state["enchants"].GetStructValue().GetFields()

	fmt.Printf("Query: %s\n", fields["query"].GetStringValue())
	if title := state["title"].GetStringValue(); title != "" {
		fmt.Printf("Title: %s\n", title)
	}
	if desc := state["description"].GetStringValue(); desc != "" {
		fmt.Printf("Description: %s\n", desc)
	}
	for _, slot := range equipment.AllSlots() {
		name := slot.String()
		item := slots[name].GetStringValue()
		if item == "" {
			continue
		}
		fmt.Printf("  %-9s %s", name, item)
		if ench := enchants[name].GetStringValue(); ench != "" {
			fmt.Printf(" (enchant %s)", ench)
		}
		fmt.Println()
	}
}
