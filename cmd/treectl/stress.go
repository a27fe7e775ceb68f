package main

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lvlath-labs/aabbtree/tree"
)

var (
	stressN            int
	stressSeed         int64
	stressValidateStep int
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Insert N random non-overlapping particles, then remove them in random order",
	Long: `stress inserts N random non-overlapping particles into a fresh tree,
validating every --validate-every insertions, then removes every particle
in random order, validating the same way, and confirms the tree ends
empty. Each run is tagged with a UUID (logged as run_id) so repeated runs
against the same metrics endpoint are distinguishable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		t, err := newTreeFromConfig(cfg)
		if err != nil {
			return err
		}

		runID := uuid.New()
		runLog := log.WithField("run_id", runID.String())

		rng := rand.New(rand.NewSource(stressSeed))
		ids, err := stressInsert(t, cfg.Dimension, cfg.BoxSize, rng, runLog)
		if err != nil {
			return err
		}

		rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
		for i, id := range ids {
			if err := t.RemoveParticle(id); err != nil {
				return err
			}
			if stressValidateStep > 0 && i%stressValidateStep == 0 {
				if err := t.Validate(); err != nil {
					runLog.Fatalf("invariant violated after removing %d particles: %v", i+1, err)
				}
			}
		}

		runLog.Infof("stress run complete: final particles=%d nodes=%d", t.NParticles(), t.NodeCount())
		if t.NParticles() != 0 || t.NodeCount() != 0 {
			return fmt.Errorf("treectl stress: tree not empty after removing every particle: particles=%d nodes=%d", t.NParticles(), t.NodeCount())
		}
		printReport(t)

		return nil
	},
}

// stressInsert places up to stressN non-overlapping radius-0.2 particles
// into a box derived from dimension/boxSize (defaulting to a 100-wide
// cube per axis when boxSize is unset), validating periodically.
func stressInsert(t *tree.Tree, dimension int, boxSize []float64, rng *rand.Rand, runLog *logrus.Entry) ([]uint64, error) {
	const radius = 0.2
	width := 100.0

	ids := make([]uint64, 0, stressN)
	placed := make([][]float64, 0, stressN)

	attempts := 0
	for len(ids) < stressN && attempts < stressN*20 {
		attempts++
		c := make([]float64, dimension)
		for i := range c {
			axisWidth := width
			if len(boxSize) == dimension && boxSize[i] > 0 {
				axisWidth = boxSize[i]
			}
			c[i] = radius + rng.Float64()*(axisWidth-2*radius)
		}

		overlaps := false
		for _, p := range placed {
			var d2 float64
			for i := range c {
				d := c[i] - p[i]
				d2 += d * d
			}
			if d2 < (2*radius)*(2*radius) {
				overlaps = true

				break
			}
		}
		if overlaps {
			continue
		}

		id := uint64(len(ids))
		if err := t.InsertParticle(id, c, radius); err != nil {
			return nil, err
		}
		if stressValidateStep > 0 && len(ids)%stressValidateStep == 0 {
			if err := t.Validate(); err != nil {
				runLog.Fatalf("invariant violated after inserting %d particles: %v", len(ids)+1, err)
			}
		}
		ids = append(ids, id)
		placed = append(placed, c)
	}

	runLog.Infof("placed %d/%d particles in %d attempts", len(ids), stressN, attempts)

	return ids, nil
}

func init() {
	bindTreeFlags(stressCmd)
	stressCmd.Flags().IntVar(&stressN, "n", 1000, "number of particles to insert and then remove")
	stressCmd.Flags().Int64Var(&stressSeed, "seed", 1, "random seed")
	stressCmd.Flags().IntVar(&stressValidateStep, "validate-every", 100, "call Validate() every N operations (0 disables)")
	rootCmd.AddCommand(stressCmd)
}
