package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"yapl/internal/driver"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] <path> [path...]",
		Short: "Format yapl source files",
		Long:  `Fmt prints yapl source files in canonical layout, or rewrites them with --write`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFmt,
	}
	cmd.Flags().Bool("check", false, "list files whose formatting differs and fail if any")
	cmd.Flags().Bool("write", false, "rewrite files in place")
	cmd.Flags().String("format", "text", "report format (text|json)")
	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if check && write {
		return errors.New("fmt: --check cannot be used with --write")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	st, err := loadSettings(cmd, args[0])
	if err != nil {
		return err
	}
	results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:          check,
		Write:          write,
		MaxDiagnostics: st.maxDiag,
		Options:        st.format,
	})
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for _, res := range results {
		if res.Err == nil {
			hasChanges = hasChanges || res.Changed
			continue
		}
		hasErrors = true
		if res.Bag != nil && res.Bag.Len() > 0 {
			if err := st.printDiagnostics(stderr, res.Bag); err != nil {
				return err
			}
		}
		fmt.Fprintf(stderr, "fmt: %s: %v\n", res.Path, res.Err)
	}

	switch {
	case outputFormat == "json":
		if err := renderFmtJSON(stdout, results, check); err != nil {
			return err
		}
	case !check && !write:
		for _, res := range results {
			if res.Err == nil {
				if _, err := stdout.Write(res.Formatted); err != nil {
					return err
				}
			}
		}
	case !st.quiet:
		for _, res := range results {
			if res.Err != nil || !res.Changed {
				continue
			}
			if check {
				fmt.Fprintln(stdout, res.Path)
			} else {
				fmt.Fprintf(stdout, "reformatted %s\n", res.Path)
			}
		}
	}

	if hasErrors {
		return errReported
	}
	if check && hasChanges {
		return errors.New("fmt: formatting changes required")
	}
	return nil
}

func renderFmtJSON(w io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
