package cmd

import (
	"fmt"

	"github.com/go-drift/observable/pkg/asset"
	"github.com/go-drift/observable/pkg/observable"
)

func init() {
	RegisterCommand(&Command{
		Name:  "reset",
		Short: "Restore initial values",
		Long: `Restore the current value of an asset to its initial value and save it.

For catalogs, a key resets one entry; without a key every entry is reset.`,
		Usage: "modelasset reset <path> [key]",
		Run:   runReset,
	})
}

func runReset(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usageError("reset")
	}
	path := args[0]

	a, err := asset.Load(path)
	if err != nil {
		return err
	}

	if c, ok := a.Catalog(); ok && len(args) == 1 {
		c.ResetAll()
	} else {
		target, rest, err := selectModel(a, args[1:])
		if err != nil {
			return err
		}
		if len(rest) != 0 {
			return usageError("reset")
		}
		target.Reset()
	}

	if err := asset.Save(path, a); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Reset %s\n", path)
	return nil
}

// selectModel picks the model addressed by args. Catalog assets consume
// the first argument as the entry key.
func selectModel(a *asset.Asset, args []string) (observable.Model, []string, error) {
	if m, ok := a.Model(); ok {
		return m, args, nil
	}
	c, _ := a.Catalog()
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("%s asset requires an entry key", a.Kind)
	}
	m, err := c.Model(args[0])
	if err != nil {
		return nil, nil, err
	}
	return m, args[1:], nil
}
