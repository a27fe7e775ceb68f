package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateOpsFile string

var validateCmd = &cobra.Command{
	Use:   "validate --ops ops.json",
	Short: "Build a tree from an ops file and check every structural invariant",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		t, err := newTreeFromConfig(cfg)
		if err != nil {
			return err
		}

		ops, err := loadOperations(validateOpsFile)
		if err != nil {
			return err
		}
		for _, op := range ops {
			if err := applyOperation(t, op); err != nil {
				return err
			}
		}

		if err := t.Validate(); err != nil {
			return fmt.Errorf("treectl validate: invariant violated: %w", err)
		}
		fmt.Println("ok")
		printReport(t)

		return nil
	},
}

func init() {
	bindTreeFlags(validateCmd)
	validateCmd.Flags().StringVar(&validateOpsFile, "ops", "", "path to a JSON file of operations")
	_ = validateCmd.MarkFlagRequired("ops")
	rootCmd.AddCommand(validateCmd)
}
