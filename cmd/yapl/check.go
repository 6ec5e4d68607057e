package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"yapl/internal/diag"
	"yapl/internal/diagfmt"
	"yapl/internal/driver"
	"yapl/internal/ui"
	"yapl/internal/version"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [file.yp|directory...]",
		Short: "Check yapl sources for lexical and syntax errors",
		Long: `Check parses every given file, or every *.yp file under the given directories,
in parallel. Without arguments it checks [package].root of yapl.toml.
Results are cached by file content.`,
		RunE: runCheck,
	}
	cmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().Bool("no-cache", false, "disable the summary cache")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().String("path-mode", "auto", "file paths in diagnostics (auto|absolute|relative|basename)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	outFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch outFormat {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", outFormat)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	uiMode, err := switchFlag(cmd.Flags(), "ui")
	if err != nil {
		return err
	}
	pathModeFlag, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, ok := diagfmt.ParsePathMode(pathModeFlag)
	if !ok {
		return fmt.Errorf("invalid --path-mode value %q", pathModeFlag)
	}

	start := ""
	if len(args) > 0 {
		start = args[0]
	}
	st, err := loadSettings(cmd, start)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		root, err := st.manifest.SourceRoot()
		if err != nil {
			return err
		}
		args = []string{root}
	}
	paths, err := collectCheckPaths(args)
	if err != nil {
		return err
	}

	opts := driver.CheckOptions{MaxDiagnostics: st.maxDiag, Jobs: jobs}
	if !noCache && st.manifest.Config.Cache.Enabled {
		cache, err := openCache(st)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", err)
		} else {
			opts.Cache = cache
		}
	}

	var res *driver.CheckResult
	if !st.quiet && outFormat == "pretty" && uiMode.enabled(cmd.OutOrStdout()) {
		res, err = checkWithUI(cmd.Context(), cmd.OutOrStdout(), paths, opts)
	} else {
		res, err = driver.CheckFiles(cmd.Context(), paths, opts)
	}
	if err != nil {
		return err
	}

	if err := reportCheck(cmd, st, res, outFormat, pathMode); err != nil {
		return err
	}
	if st.timings {
		if err := driver.WriteTimings(cmd.ErrOrStderr(), "check", strings.Join(args, " "), res.Timings, outFormat == "json"); err != nil {
			return err
		}
	}
	if res.HasErrors() {
		return errReported
	}
	return nil
}

// collectCheckPaths expands directories into their sorted *.yp files.
// Files named explicitly are checked whatever their extension.
func collectCheckPaths(args []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		found := []string{arg}
		if info.IsDir() {
			if found, err = driver.ListSourceFiles(arg); err != nil {
				return nil, err
			}
		}
		for _, p := range found {
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("check: no %s files found", driver.SourceExt)
	}
	return paths, nil
}

// openCache uses [cache].dir of the project, or the user cache directory
// when there is no yapl.toml.
func openCache(st *settings) (*driver.DiskCache, error) {
	dir := ""
	if st.hasManifest {
		var err error
		if dir, err = st.manifest.CacheDir(); err != nil {
			return nil, err
		}
	}
	return driver.OpenDiskCache(dir, version.String())
}

type checkOutcome struct {
	res *driver.CheckResult
	err error
}

func checkWithUI(ctx context.Context, out io.Writer, paths []string, opts driver.CheckOptions) (*driver.CheckResult, error) {
	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Observer = func(ev driver.ProgressEvent) { events <- ev }
		res, err := driver.CheckFiles(ctx, paths, optsCopy)
		outcomeCh <- checkOutcome{res: res, err: err}
		close(events)
	}()

	uiErr := ui.RunCheck(ctx, out, "checking", paths, events)
	if uiErr != nil {
		// keep the checker from blocking on a UI that is gone
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.res, uiErr
	}
	return outcome.res, outcome.err
}

func reportCheck(cmd *cobra.Command, st *settings, res *driver.CheckResult, outFormat string, pathMode diagfmt.PathMode) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	all := diag.NewBag(0)
	for _, f := range res.Files {
		all.Merge(f.Bag)
	}
	all.Sort()

	switch outFormat {
	case "json":
		return diagfmt.JSON(stdout, all, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     true,
		})
	case "short":
		if all.Len() == 0 {
			return nil
		}
		_, err := fmt.Fprintln(stdout, diag.FormatShort(all.Items(), false))
		return err
	}

	if all.Len() > 0 {
		err := diagfmt.Pretty(stderr, all, diagfmt.PrettyOpts{
			Color:     st.useColor(stderr),
			Context:   st.context,
			PathMode:  pathMode,
			ShowNotes: true,
		})
		if err != nil {
			return err
		}
	}
	if st.quiet {
		return nil
	}
	cached := 0
	for _, f := range res.Files {
		if f.Cached {
			cached++
		}
	}
	_, err := fmt.Fprintf(stdout, "checked %d file(s), %d cached: %d error(s)\n", len(res.Files), cached, res.ErrorCount())
	return err
}
