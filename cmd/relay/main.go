// Package main is a command line tool for running the translation relay
// outside Lambda, against the same AWS services.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/pricofy/translation-relay/internal/config"
	"github.com/pricofy/translation-relay/internal/handler"
	"github.com/pricofy/translation-relay/internal/storage"
	"github.com/pricofy/translation-relay/internal/translator"
	"github.com/spf13/cobra"
)

// relayFactory builds the relay once configuration is known.
type relayFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*handler.Relay, error)

func main() {
	if err := newRootCommand(newAWSRelay).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to execute a command: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(factory relayFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "relay",
		Short:         "Translate JSON documents stored in S3",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newInvokeCommand(factory))
	return rootCmd
}

func newAWSRelay(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*handler.Relay, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return handler.New(
		storage.NewS3Store(s3.NewFromConfig(awsCfg)),
		translator.New(translate.NewFromConfig(awsCfg)),
		cfg.OutputBucket,
		logger,
	), nil
}
