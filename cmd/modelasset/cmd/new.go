package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/observable/pkg/asset"
)

func init() {
	RegisterCommand(&Command{
		Name:  "new",
		Short: "Create a new asset",
		Long: `Create a new asset file with a fresh GUID.

Values are given in text form. A value kind takes at most one value, a
list kind takes one argument per element and a catalog kind takes
key=value arguments. The initial and current values start out equal.

Without a file extension the path gets the configured output format
(output.format in modelasset.yaml, MODELASSET_FORMAT or --format).
Existing files are never overwritten.

Kinds: ` + kindList(),
		Usage: "modelasset new <kind> <path> [values...]",
		Run:   runNew,
	})
}

func runNew(args []string) error {
	if len(args) < 2 {
		return usageError("new")
	}

	kind := asset.Kind(args[0])
	path := withExtension(args[1], settings.Format)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	a, err := asset.Create(kind, args[2:]...)
	if err != nil {
		return err
	}
	if err := asset.Save(path, a); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Created %s (%s, guid %s)\n", path, a.Kind, a.GUID)
	return nil
}

func withExtension(path string, f asset.Format) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return path + "." + f.String()
}

// kindList renders the supported kinds for help output.
func kindList() string {
	kinds := asset.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
