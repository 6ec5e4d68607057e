package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"yapl/internal/diag"
	"yapl/internal/diagfmt"
	"yapl/internal/format"
	"yapl/internal/project"
)

// settings merges yapl.toml with the persistent flags; flags given on the
// command line win over the manifest.
type settings struct {
	manifest    *project.Manifest
	hasManifest bool
	color       switchMode
	quiet       bool
	timings     bool
	maxDiag     int
	context     int
	format      format.Options
}

// loadSettings looks for yapl.toml starting at the directory of path.
func loadSettings(cmd *cobra.Command, path string) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	color, err := switchFlag(flags, "color")
	if err != nil {
		return nil, err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	manifest, ok, err := project.Load(manifestStart(path))
	if err != nil {
		return nil, err
	}

	s := &settings{
		manifest:    manifest,
		hasManifest: ok,
		color:       color,
		quiet:       quiet,
		timings:     timings,
		maxDiag:     manifest.Config.Diagnostics.Max,
		context:     manifest.Config.Diagnostics.Context,
		format: format.Options{
			IndentWidth: manifest.Config.Format.IndentWidth,
			UseTabs:     manifest.Config.Format.UseTabs,
		},
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiag, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	return s, nil
}

func manifestStart(path string) string {
	if path == "" || path == "-" {
		return "."
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return filepath.Dir(path)
	}
	return path
}

func (s *settings) useColor(w io.Writer) bool {
	return s.color.enabled(w)
}

// printDiagnostics renders bag on w unless it is empty.
func (s *settings) printDiagnostics(w io.Writer, bag *diag.Bag) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	return diagfmt.Pretty(w, bag, diagfmt.PrettyOpts{
		Color:     s.useColor(w),
		Context:   s.context,
		ShowNotes: true,
	})
}
