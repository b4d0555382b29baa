package cmd

import (
	"fmt"

	"github.com/go-drift/observable/pkg/asset"
)

func init() {
	RegisterCommand(&Command{
		Name:  "kinds",
		Short: "List supported asset kinds",
		Long: `List the asset kinds accepted by "modelasset new".

Each element type (bool, int, float, string, vec2, vec3) exists as a
single value, as a list (<type>_list) and as a keyed catalog
(<type>_catalog).`,
		Usage: "modelasset kinds",
		Run:   runKinds,
	})
}

func runKinds(args []string) error {
	if len(args) != 0 {
		return usageError("kinds")
	}
	for _, k := range asset.Kinds() {
		switch {
		case k.IsCatalog():
			fmt.Fprintf(stdout, "  %-16s catalog of %s\n", k, k.Element())
		case k.IsList():
			fmt.Fprintf(stdout, "  %-16s list of %s\n", k, k.Element())
		default:
			fmt.Fprintf(stdout, "  %-16s %s value\n", k, k.Element())
		}
	}
	return nil
}
