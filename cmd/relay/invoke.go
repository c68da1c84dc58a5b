package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pricofy/translation-relay/internal/config"
	"github.com/pricofy/translation-relay/internal/logging"
	"github.com/spf13/cobra"
)

func newInvokeCommand(factory relayFactory) *cobra.Command {
	var (
		eventFile string
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run the relay once for an S3 event read from a file",
		Long: `Run the relay once for an S3 event notification stored as JSON.

Only the first record of the event is processed, exactly as in Lambda.
The output bucket comes from OUTPUT_BUCKET_NAME unless --output-bucket is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(eventFile)
			if err != nil {
				return fmt.Errorf("failed to read event file: %w", err)
			}
			var event events.S3Event
			if err := json.Unmarshal(raw, &event); err != nil {
				return fmt.Errorf("failed to decode S3 event from %s: %w", eventFile, err)
			}

			logger := logging.New(cmd.ErrOrStderr(), cfg.SlogLevel())
			if quiet {
				logger = logging.Discard()
			}
			relay, err := factory(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			resp, err := relay.Handle(cmd.Context(), event)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVarP(&eventFile, "event", "e", "", "path to an S3 event JSON file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress log output")
	cmd.Flags().String(config.FlagOutputBucket, "", "bucket the translated file is written to")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}
