package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	removeSeedFile string
	removeID       uint64
)

var removeCmd = &cobra.Command{
	Use:   "remove --ops ops.json --id N",
	Short: "Build a tree from an ops file, remove one particle, and report the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		t, err := newTreeFromConfig(cfg)
		if err != nil {
			return err
		}

		ops, err := loadOperations(removeSeedFile)
		if err != nil {
			return err
		}
		for _, op := range ops {
			if err := applyOperation(t, op); err != nil {
				return err
			}
		}

		if err := t.RemoveParticle(removeID); err != nil {
			return fmt.Errorf("treectl remove: %w", err)
		}
		printReport(t)

		return nil
	},
}

func init() {
	bindTreeFlags(removeCmd)
	removeCmd.Flags().StringVar(&removeSeedFile, "ops", "", "path to a JSON file of operations")
	removeCmd.Flags().Uint64Var(&removeID, "id", 0, "particle id to remove")
	_ = removeCmd.MarkFlagRequired("ops")
	rootCmd.AddCommand(removeCmd)
}
