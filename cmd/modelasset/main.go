// Command modelasset creates, inspects and edits observable model assets.
package main

import (
	"os"

	"github.com/go-drift/observable/cmd/modelasset/cmd"
	"github.com/go-drift/observable/pkg/errors"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer errors.RecoverWithCallback("modelasset.main", func(any) { code = 2 })
	if err := cmd.Execute(); err != nil {
		cmd.Fail(err)
		return 1
	}
	return 0
}
