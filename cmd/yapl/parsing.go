package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"yapl/internal/ast"
	"yapl/internal/diagfmt"
	"yapl/internal/driver"
	"yapl/internal/format"
	"yapl/internal/observ"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.yp|->",
		Short: "Parse a yapl source file and print its syntax tree",
		Long:  `Parse analyzes a yapl source file, or standard input with -, and prints the syntax tree`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json|source)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	outFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch outFormat {
	case "tree", "json", "source":
	default:
		return fmt.Errorf("unknown format: %s", outFormat)
	}

	st, result, timer, err := parseArg(cmd, args[0])
	if err != nil {
		return err
	}
	if err := st.printDiagnostics(cmd.ErrOrStderr(), result.Bag); err != nil {
		return err
	}
	if result.Package != nil {
		if err := writePackage(cmd.OutOrStdout(), result.Package, outFormat, st.format); err != nil {
			return err
		}
	}
	if st.timings {
		if err := driver.WriteTimings(cmd.ErrOrStderr(), "parse", args[0], timer.Report(), outFormat == "json"); err != nil {
			return err
		}
	}
	if result.Package == nil || result.Bag.HasErrors() {
		return errReported
	}
	return nil
}

// parseArg parses a file path, or standard input for "-".
func parseArg(cmd *cobra.Command, path string) (*settings, *driver.ParseResult, *observ.Timer, error) {
	st, err := loadSettings(cmd, path)
	if err != nil {
		return nil, nil, nil, err
	}

	timer := observ.NewTimer()
	var result *driver.ParseResult
	err = timer.Measure("parse", func() error {
		if path != "-" {
			var parseErr error
			result, parseErr = driver.Parse(cmd.Context(), path, st.maxDiag)
			return parseErr
		}
		content, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("read stdin: %w", readErr)
		}
		result = driver.ParseSource(cmd.Context(), "<stdin>", content, st.maxDiag)
		return nil
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing failed: %w", err)
	}
	return st, result, timer, nil
}

func writePackage(w io.Writer, pkg *ast.Package, outFormat string, opts format.Options) error {
	switch outFormat {
	case "json":
		return diagfmt.FormatASTJSON(w, pkg)
	case "source":
		return format.Print(w, pkg, opts)
	default:
		return diagfmt.FormatASTTree(w, pkg)
	}
}
