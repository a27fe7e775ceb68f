package main

import (
	"github.com/spf13/cobra"
)

var (
	buildOpsFile     string
	buildValidateAll bool
)

var buildCmd = &cobra.Command{
	Use:   "build --ops ops.json",
	Short: "Build a tree from a sequence of insert/remove/update operations",
	Long: `build reads a JSON array of operations (insert/remove/update, in the
shape tree.Tree's methods expect) and applies them in order to a freshly
constructed tree, printing a summary report at the end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		t, err := newTreeFromConfig(cfg)
		if err != nil {
			return err
		}

		ops, err := loadOperations(buildOpsFile)
		if err != nil {
			return err
		}

		for i, op := range ops {
			if err := applyOperation(t, op); err != nil {
				return err
			}
			if buildValidateAll {
				if err := t.Validate(); err != nil {
					log.WithField("op_index", i).Fatalf("invariant violated after op %+v: %v", op, err)
				}
			}
		}

		printReport(t)

		return nil
	},
}

func init() {
	bindTreeFlags(buildCmd)
	buildCmd.Flags().StringVar(&buildOpsFile, "ops", "", "path to a JSON file of operations")
	buildCmd.Flags().BoolVar(&buildValidateAll, "validate-each", false, "call Validate() after every operation")
	_ = buildCmd.MarkFlagRequired("ops")
	rootCmd.AddCommand(buildCmd)
}
