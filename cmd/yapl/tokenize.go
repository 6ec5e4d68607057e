package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yapl/internal/diagfmt"
	"yapl/internal/driver"
	"yapl/internal/observ"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.yp",
		Short: "Tokenize a yapl source file",
		Long:  `Tokenize breaks a yapl source file down into its tokens, layout tokens included`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	outFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if outFormat != "pretty" && outFormat != "json" {
		return fmt.Errorf("unknown format: %s", outFormat)
	}
	st, err := loadSettings(cmd, filePath)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	var result *driver.TokenizeResult
	err = timer.Measure("tokenize", func() error {
		var tokErr error
		result, tokErr = driver.Tokenize(cmd.Context(), filePath, st.maxDiag)
		return tokErr
	})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if err := st.printDiagnostics(cmd.ErrOrStderr(), result.Bag); err != nil {
		return err
	}
	switch outFormat {
	case "json":
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens)
	}
	if err != nil {
		return err
	}
	if st.timings {
		if err := driver.WriteTimings(cmd.ErrOrStderr(), "tokenize", filePath, timer.Report(), outFormat == "json"); err != nil {
			return err
		}
	}
	if result.Bag.HasErrors() {
		return errReported
	}
	return nil
}
