// Package treeconfig loads and validates the configuration cmd/treectl
// runs a tree.Tree with: dimensionality, box size, periodicity, skin
// thickness, initial node-pool capacity, and the metrics bind address.
//
// Configuration is resolved through github.com/spf13/viper with the usual
// file → environment → flag precedence (flags win, then AABBTREE_-prefixed
// environment variables, then the YAML config file, then the defaults
// declared here). Validate aggregates every violation via
// go.uber.org/multierr rather than stopping at the first, mirroring
// tree.Tree.Validate's "report everything" philosophy.
package treeconfig
