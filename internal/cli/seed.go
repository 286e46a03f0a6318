package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a prompt pool into the server",
		Long: `Load typing prompts from a JSON file into the server's prompt pool.

The file must contain a flat JSON array of prompts, each with a difficulty
field. Prompts with an unknown difficulty are dropped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read pool file: %w", err)
			}

			// Validate the shape locally so a malformed file fails with a
			// file error rather than an API error
			var pool []json.RawMessage
			if err := json.Unmarshal(data, &pool); err != nil {
				return fmt.Errorf("pool file must be a JSON array of prompts: %w", err)
			}

			var result SeedResult
			if err := client.Post("/api/v1/prompts", data, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the JSON prompt pool file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
