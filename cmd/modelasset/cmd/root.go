// Package cmd implements the modelasset CLI commands.
//
// The root command dispatches to subcommands (new, show, set, reset,
// validate, kinds) that work on observable model asset files.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/observable/cmd/modelasset/internal/config"
	"github.com/go-drift/observable/pkg/asset"
	"github.com/go-drift/observable/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "modelasset",
	Short: "modelasset - inspect and edit observable model assets",
	Long: `modelasset creates, inspects and edits observable model assets.

An asset is a YAML or JSON document holding one value, one list or one
keyed catalog together with its initial values.

Use "modelasset <command> --help" for more information about a command.`,
	Usage: "modelasset <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// Output destinations, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// settings holds the resolved configuration for the running command.
var settings = &config.Resolved{Format: asset.YAML}

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	// Handle global flags
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "modelasset version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			resolved.Verbose = true
		case "--format":
			if i+1 >= len(args) {
				return fmt.Errorf("--format requires yaml or json")
			}
			if resolved.Format, err = asset.ParseFormat(args[i+1]); err != nil {
				return err
			}
			i++
		default:
			if value, ok := strings.CutPrefix(arg, "--format="); ok {
				if resolved.Format, err = asset.ParseFormat(value); err != nil {
					return err
				}
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	settings = resolved
	errors.SetHandler(&errors.LogHandler{Verbose: resolved.Verbose, Out: stderr})

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		printHelp(rootCmd)
		return fmt.Errorf("unknown command %q", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	w := stdout
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --format FMT         Format for new assets: yaml or json")
	fmt.Fprintln(w, "  --verbose            Report errors with stack traces")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  %-20s Output format override (lower priority than --format)\n", config.FormatEnv)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  modelasset new float speed.yaml 1.5       Create a float asset")
	fmt.Fprintln(w, "  modelasset set speed.yaml 2,25            Change its current value")
	fmt.Fprintln(w, "  modelasset show speed.yaml                Print current and initial values")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}

// Fail reports a command failure through the configured error handler.
// With --verbose the report carries a stack trace.
func Fail(err error) {
	if err == nil {
		return
	}
	me := &errors.ModelError{Op: "modelasset", Kind: errors.KindOf(err), Err: err}
	if settings.Verbose {
		me.StackTrace = errors.CaptureStack()
	}
	errors.Report(me)
}

func usageError(cmd string) error {
	c, ok := commands[cmd]
	if !ok {
		return fmt.Errorf("invalid arguments")
	}
	return fmt.Errorf("invalid arguments\nUsage: %s", c.Usage)
}
