package cmd

import (
	"fmt"

	"github.com/go-drift/observable/pkg/asset"
	"github.com/go-drift/observable/pkg/observable"
)

func init() {
	RegisterCommand(&Command{
		Name:  "show",
		Short: "Print an asset",
		Long: `Print the kind, GUID and values of an asset.

Values and lists print their current and initial values. Catalogs print
one line per entry in key order.`,
		Usage: "modelasset show <path>",
		Run:   runShow,
	})
}

func runShow(args []string) error {
	if len(args) != 1 {
		return usageError("show")
	}

	a, err := asset.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Kind:    %s\n", a.Kind)
	fmt.Fprintf(stdout, "GUID:    %s\n", a.GUID)
	fmt.Fprintf(stdout, "Format:  %s\n", a.Format)

	if m, ok := a.Model(); ok {
		current, initial := describe(m)
		fmt.Fprintf(stdout, "Current: %s\n", current)
		fmt.Fprintf(stdout, "Initial: %s\n", initial)
		return nil
	}

	c, _ := a.Catalog()
	fmt.Fprintf(stdout, "Entries: %d\n", c.Len())
	for _, key := range c.Keys() {
		m, err := c.Model(key)
		if err != nil {
			return err
		}
		current, initial := describe(m)
		fmt.Fprintf(stdout, "  %-16s %s (initial %s)\n", key, current, initial)
	}
	return nil
}

// describe returns the current and initial text of m.
func describe(m observable.Model) (current, initial string) {
	return m.String(), m.InitialString()
}
