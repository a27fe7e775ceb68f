package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	querySeedFile string
	queryID       uint64
)

var queryCmd = &cobra.Command{
	Use:   "query --ops ops.json --id N",
	Short: "Build a tree from an ops file and report a particle's neighbors",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		t, err := newTreeFromConfig(cfg)
		if err != nil {
			return err
		}

		ops, err := loadOperations(querySeedFile)
		if err != nil {
			return err
		}
		for _, op := range ops {
			if err := applyOperation(t, op); err != nil {
				return err
			}
		}

		neighbors, err := t.Query(queryID)
		if err != nil {
			return fmt.Errorf("treectl query: %w", err)
		}
		fmt.Printf("%v\n", neighbors)

		return nil
	},
}

func init() {
	bindTreeFlags(queryCmd)
	queryCmd.Flags().StringVar(&querySeedFile, "ops", "", "path to a JSON file of operations")
	queryCmd.Flags().Uint64Var(&queryID, "id", 0, "particle id to query")
	_ = queryCmd.MarkFlagRequired("ops")
	rootCmd.AddCommand(queryCmd)
}
