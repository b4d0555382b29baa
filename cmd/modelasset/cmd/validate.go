package cmd

import (
	"fmt"

	"github.com/go-drift/observable/pkg/asset"
	"github.com/go-drift/observable/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check assets against the document schema",
		Long: `Check each asset against the document schema and the format
version, then decode it fully.

Failures are reported per file; the command fails if any file is invalid.`,
		Usage: "modelasset validate <path>...",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) == 0 {
		return usageError("validate")
	}

	failed := 0
	for _, path := range args {
		h, err := asset.ValidateFile(path)
		if err != nil {
			errors.ReportError("modelasset.validate", err)
			fmt.Fprintf(stdout, "  FAIL  %s\n", path)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "  ok    %s (%s %s)\n", path, h.Kind, h.Format)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d assets failed validation", failed, len(args))
	}
	return nil
}
