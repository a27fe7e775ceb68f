package main

import (
	"github.com/spf13/cobra"
)

// bindTreeFlags registers the flags that shape a tree.Tree's construction
// and binds them into the shared viper instance, so treeconfig.Load sees
// them at the highest precedence (flags win over env vars win over the
// config file win over the package defaults).
func bindTreeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("dimension", 0, "tree dimensionality (>= 2)")
	cmd.Flags().Float64("skin-thickness", 0, "fat-AABB skin thickness ratio")
	cmd.Flags().Int("initial-capacity", 0, "node pool initial capacity")
	cmd.Flags().Bool("touch-is-overlap", true, "treat boundary contact as overlap")
	cmd.Flags().Float64Slice("box-size", nil, "per-axis primary box size, comma-separated")
	cmd.Flags().BoolSlice("periodicity", nil, "per-axis periodicity flags, comma-separated")

	for _, name := range []string{"dimension", "skin-thickness", "initial-capacity", "touch-is-overlap", "box-size", "periodicity"} {
		_ = v.BindPFlag(flagToConfigKey(name), cmd.Flags().Lookup(name))
	}
}

func flagToConfigKey(name string) string {
	switch name {
	case "dimension":
		return "dimension"
	case "skin-thickness":
		return "skin_thickness"
	case "initial-capacity":
		return "initial_capacity"
	case "touch-is-overlap":
		return "touch_is_overlap"
	case "box-size":
		return "box_size"
	case "periodicity":
		return "periodicity"
	default:
		return name
	}
}
