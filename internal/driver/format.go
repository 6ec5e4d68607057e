package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"yapl/internal/diag"
	"yapl/internal/format"
	"yapl/internal/source"
)

// FormatOptions configures code formatting.
type FormatOptions struct {
	Check          bool // report changes without writing
	Write          bool // rewrite files in place
	MaxDiagnostics int
	Options        format.Options
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Bag       *diag.Bag // diagnostics of a file that did not parse
	File      *source.File
	Formatted []byte
}

// FormatPaths formats the given files or directories (recursively collecting
// *.yp files). With opts.Check nothing is written and Changed tells whether
// formatting would alter the file. With opts.Write changed files are
// rewritten; otherwise the formatted text is returned in the results.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	results := make([]FormatResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := formatSingleFile(ctx, path, opts)
		if result.Err != nil || opts.Check || !opts.Write {
			results = append(results, result)
			continue
		}

		if result.Changed {
			mode := os.FileMode(0o644)
			if info, statErr := os.Stat(path); statErr == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(path, result.Formatted, mode.Perm()); err != nil {
				result.Err = err
			}
		}
		result.Formatted = nil
		results = append(results, result)
	}

	return results, nil
}

func formatSingleFile(ctx context.Context, path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}

	fileSet := source.NewFileSet()
	sf, err := loadFile(ctx, fileSet, path)
	if err != nil {
		result.Err = err
		return result
	}
	result.File = sf

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	bag := diag.NewBag(maxDiag)
	pkg, err := parseFile(ctx, sf, bag)
	if err != nil || bag.HasErrors() {
		result.Bag = bag
		result.Err = fmt.Errorf("format: %s has syntax errors", path)
		return result
	}

	result.Formatted = format.Source(pkg, opts.Options)
	result.Changed = !bytes.Equal(sf.Content, result.Formatted)
	return result
}

func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if filepath.Ext(path) == SourceExt {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		// explicit files are taken whatever their extension
		addFile(p)
	}

	sort.Strings(files)
	return files, nil
}
