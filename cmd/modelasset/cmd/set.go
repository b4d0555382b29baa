package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/observable/pkg/asset"
)

func init() {
	RegisterCommand(&Command{
		Name:  "set",
		Short: "Change the current value of an asset",
		Long: `Parse text as the new current value and save the asset.

The initial value is kept. Lists take a comma-separated list
("1, 2, 3" or "(0, 1), (2, 3)" for vectors); an empty text clears the
list. Catalog assets take the entry key before the text.`,
		Usage: "modelasset set <path> [key] <text>",
		Run:   runSet,
	})
}

func runSet(args []string) error {
	if len(args) < 2 {
		return usageError("set")
	}
	path := args[0]

	a, err := asset.Load(path)
	if err != nil {
		return err
	}

	target, rest, err := selectModel(a, args[1:])
	if err != nil {
		return err
	}
	text := strings.Join(rest, " ")
	if err := target.SetString(text); err != nil {
		return err
	}
	if err := asset.Save(path, a); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Updated %s: %s\n", path, target.String())
	return nil
}
