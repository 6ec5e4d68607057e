package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yapl/internal/export"
)

func newExportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exports [flags] <file.yp|->",
		Short: "Print the exported interface of a yapl source file",
		Long:  `Exports prints the package header and every definition marked export, with function bodies removed`,
		Args:  cobra.ExactArgs(1),
		RunE:  runExports,
	}
	cmd.Flags().String("format", "source", "output format (source|tree|json)")
	return cmd
}

func runExports(cmd *cobra.Command, args []string) error {
	outFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch outFormat {
	case "tree", "json", "source":
	default:
		return fmt.Errorf("unknown format: %s", outFormat)
	}

	st, result, _, err := parseArg(cmd, args[0])
	if err != nil {
		return err
	}
	if err := st.printDiagnostics(cmd.ErrOrStderr(), result.Bag); err != nil {
		return err
	}
	if result.Package == nil || result.Bag.HasErrors() {
		return errReported
	}
	return writePackage(cmd.OutOrStdout(), export.Exports(result.Package), outFormat, st.format)
}
