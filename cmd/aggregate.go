package cmd

import (
	"encoding/json"
	"fmt"

	"number-management-service/core/config"
	"number-management-service/core/logger"
	"number-management-service/core/remote"
	"number-management-service/feature/numbers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newAggregateCmd builds the aggregate command. Flag state lives in the
// returned command so every instance starts clean.
func newAggregateCmd() *cobra.Command {
	var (
		urls   []string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Fetch and merge numbers from the given sources",
		Long: `Runs a single aggregation without starting the server and prints the same
JSON body GET /numbers would return. Pass --url once per source; without any
--url the result is an empty list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logg, err := logger.New(&cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logg.Sync()

			svc := numbers.NewService(remote.NewClient(cfg.Remote), logg)

			logg.Debug("Aggregating sources", zap.Strings("urls", urls))
			merged, err := svc.Aggregate(cmd.Context(), urls)
			if err != nil {
				return fmt.Errorf("aggregation failed: %w", err)
			}

			var out []byte
			if pretty {
				out, err = json.MarshalIndent(numbers.NumbersResponse{Numbers: merged}, "", "  ")
			} else {
				out, err = json.Marshal(numbers.NumbersResponse{Numbers: merged})
			}
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&urls, "url", nil, "Source URL (repeat once per source)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	return cmd
}

func init() {
	RootCmd.AddCommand(newAggregateCmd())
}
