package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tomltag/tomltag/internal/config"
	"github.com/tomltag/tomltag/internal/decode"
	"github.com/tomltag/tomltag/internal/errors"
	"github.com/tomltag/tomltag/internal/model"
	"github.com/tomltag/tomltag/internal/tagjson"
)

// CLI defines the command-line interface
var CLI struct {
	Input   string `help:"Path to input TOML file. If not specified, reads from stdin." short:"i" type:"path"`
	Output  string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config  string `help:"Path to config file." short:"c" type:"path"`
	Version bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("tomltag"),
		kong.Description("Convert a TOML document to tagged JSON"),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("tomltag version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		if errors.IsSyntax(err) {
			// The consuming harness reads parse failures from standard
			// output, not standard error.
			fmt.Fprintf(os.Stdout, "what(): %s\n", errors.SyntaxMessage(err))
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}

	tree, err := parseInput()
	if err != nil {
		// Error is already wrapped by the decode package
		return err
	}

	return writeOutput(tree, cfg.EncoderOptions())
}

// parseInput reads TOML from file or stdin
func parseInput() (*model.Table, error) {
	if CLI.Input != "" {
		return decode.File(CLI.Input)
	}
	return decode.Reader(os.Stdin)
}

// writeOutput serializes the tree to file or stdout, with a trailing
// newline after the JSON document
func writeOutput(tree *model.Table, opt tagjson.Options) error {
	var w io.Writer = os.Stdout
	if CLI.Output != "" {
		f, err := os.Create(CLI.Output)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to create file '%s'", CLI.Output), err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
			}
		}()
		w = f
	}

	enc := tagjson.NewEncoderOptions(w, opt)
	if err := enc.Encode(tree); err != nil {
		return errors.NewOutputError("failed to write output", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.NewOutputError("failed to write output", err)
	}
	return nil
}
