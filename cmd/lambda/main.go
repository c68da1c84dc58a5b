// Package main is the entry point for the translation relay Lambda function.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/pricofy/translation-relay/internal/config"
	"github.com/pricofy/translation-relay/internal/handler"
	"github.com/pricofy/translation-relay/internal/logging"
	"github.com/pricofy/translation-relay/internal/storage"
	"github.com/pricofy/translation-relay/internal/translator"
)

// function holds the clients built once per execution environment.
type function struct {
	relay  *handler.Relay
	warmer *Warmer
}

func main() {
	cfg, err := config.Load(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.SlogLevel())
	slog.SetDefault(logger)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Error("failed to load AWS config", slog.Any("error", err))
		os.Exit(1)
	}

	fn := &function{
		relay: handler.New(
			storage.NewS3Store(s3.NewFromConfig(awsCfg)),
			translator.New(translate.NewFromConfig(awsCfg)),
			cfg.OutputBucket,
			logger,
		),
		warmer: NewWarmer(lambdasdk.NewFromConfig(awsCfg), cfg.FunctionName, logger),
	}

	lambda.Start(fn.handleRequest)
}

func (f *function) handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return f.warmer.Handle(ctx, warmup)
	}

	var s3Event events.S3Event
	if err := json.Unmarshal(event, &s3Event); err != nil {
		return nil, fmt.Errorf("failed to decode S3 event: %w", err)
	}

	resp, err := f.relay.Handle(ctx, s3Event)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
