package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	insertSeedFile string
	insertID       uint64
	insertCentre   []float64
	insertRadius   float64
)

var insertCmd = &cobra.Command{
	Use:   "insert --id N --centre x,y,z --radius r",
	Short: "Insert a single particle into a freshly built tree and report the result",
	Long: `insert builds a tree (optionally seeded from an --ops file of prior
operations), inserts one more particle described by --id/--centre/--radius,
and prints the resulting tree's query neighbors for that particle alongside
the summary report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		t, err := newTreeFromConfig(cfg)
		if err != nil {
			return err
		}

		if insertSeedFile != "" {
			ops, err := loadOperations(insertSeedFile)
			if err != nil {
				return err
			}
			for _, op := range ops {
				if err := applyOperation(t, op); err != nil {
					return err
				}
			}
		}

		if err := t.InsertParticle(insertID, insertCentre, insertRadius); err != nil {
			return fmt.Errorf("treectl insert: %w", err)
		}

		neighbors, err := t.Query(insertID)
		if err != nil {
			return err
		}
		fmt.Printf("inserted %d, neighbors=%v\n", insertID, neighbors)
		printReport(t)

		return nil
	},
}

func init() {
	bindTreeFlags(insertCmd)
	insertCmd.Flags().StringVar(&insertSeedFile, "ops", "", "optional JSON ops file to seed the tree before inserting")
	insertCmd.Flags().Uint64Var(&insertID, "id", 0, "particle id to insert")
	insertCmd.Flags().Float64SliceVar(&insertCentre, "centre", nil, "particle centre, comma-separated")
	insertCmd.Flags().Float64Var(&insertRadius, "radius", 0, "particle radius")
	rootCmd.AddCommand(insertCmd)
}
