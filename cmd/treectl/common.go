package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lvlath-labs/aabbtree/tree"
	"github.com/lvlath-labs/aabbtree/treeconfig"
)

// particle is the JSON shape loadParticles decodes: one entry per insert,
// matching tree.Tree.InsertParticle's signature. No subcommand calls
// loadParticles; the subcommands read operation files (see operation).
type particle struct {
	ID     uint64    `json:"id"`
	Centre []float64 `json:"centre"`
	Radius float64   `json:"radius"`
}

// operation is one step of an ops file: build/insert/query/remove/validate
// all read a sequence of these and apply them in order. Op is one of
// "insert", "remove", "update".
type operation struct {
	Op            string    `json:"op"`
	ID            uint64    `json:"id"`
	Centre        []float64 `json:"centre,omitempty"`
	Radius        float64   `json:"radius,omitempty"`
	ForceReinsert bool      `json:"force_reinsert,omitempty"`
}

func loadConfig() (*treeconfig.Config, error) {
	cfg, err := treeconfig.Load(cfgFile, v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("treectl: invalid configuration: %w", err)
	}

	return cfg, nil
}

func newTreeFromConfig(cfg *treeconfig.Config) (*tree.Tree, error) {
	opts := []tree.Option{
		tree.WithSkinThickness(cfg.SkinThickness),
		tree.WithInitialCapacity(cfg.InitialCapacity),
		tree.WithTouchIsOverlap(cfg.TouchIsOverlap),
		tree.WithLogger(log),
	}
	if cfg.Periodicity != nil {
		opts = append(opts, tree.WithPeriodicity(cfg.Periodicity))
	}
	if cfg.BoxSize != nil {
		opts = append(opts, tree.WithBoxSize(cfg.BoxSize))
	}

	return tree.New(cfg.Dimension, opts...)
}

func loadParticles(path string) ([]particle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treectl: reading %s: %w", path, err)
	}
	var particles []particle
	if err := json.Unmarshal(data, &particles); err != nil {
		return nil, fmt.Errorf("treectl: parsing %s: %w", path, err)
	}

	return particles, nil
}

func loadOperations(path string) ([]operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treectl: reading %s: %w", path, err)
	}
	var ops []operation
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, fmt.Errorf("treectl: parsing %s: %w", path, err)
	}

	return ops, nil
}

// applyOperation applies a single op to t and returns the tree's error, if
// any.
func applyOperation(t *tree.Tree, op operation) error {
	switch op.Op {
	case "insert":
		return t.InsertParticle(op.ID, op.Centre, op.Radius)
	case "remove":
		return t.RemoveParticle(op.ID)
	case "update":
		_, err := t.UpdateParticle(op.ID, op.Centre, op.Radius, op.ForceReinsert)

		return err
	default:
		return fmt.Errorf("treectl: unknown operation %q", op.Op)
	}
}

func printReport(t *tree.Tree) {
	fmt.Printf("particles=%d nodes=%d height=%d surfaceAreaRatio=%.4f\n",
		t.NParticles(), t.NodeCount(), t.Height(), t.SurfaceAreaRatio())
}
