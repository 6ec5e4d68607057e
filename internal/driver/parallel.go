package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/observ"
	"yapl/internal/project"
	"yapl/internal/source"
	"yapl/internal/token"
	"yapl/internal/trace"
)

// SourceExt is the extension of yapl source files.
const SourceExt = ".yp"

// TokenizeDirResult is the result of lexing one file of a directory.
type TokenizeDirResult struct {
	Path   string
	File   *source.File // nil when loading failed
	Tokens []token.Token
	Bag    *diag.Bag
}

// CheckOptions configures CheckDir and CheckFiles.
type CheckOptions struct {
	MaxDiagnostics int
	Jobs           int        // 0 means GOMAXPROCS
	Cache          *DiskCache // nil disables caching
	Observer       ProgressObserver
}

// CheckFileResult is the outcome for one file.
type CheckFileResult struct {
	Path    string
	File    *source.File // nil when loading failed
	Package *ast.Package // nil when cached or when parsing failed
	Bag     *diag.Bag
	Summary *FileSummary
	Cached  bool
	Err     error
	Timing  observ.Report
}

// CheckResult collects the per-file results in path order.
type CheckResult struct {
	FileSet *source.FileSet
	Files   []CheckFileResult
	Timings observ.Report
}

// HasErrors reports whether any file produced an error diagnostic.
func (r *CheckResult) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount counts error diagnostics over all files.
func (r *CheckResult) ErrorCount() int {
	n := 0
	for _, f := range r.Files {
		n += countErrors(f.Bag)
	}
	return n
}

func countErrors(bag *diag.Bag) int {
	if bag == nil {
		return 0
	}
	n := 0
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	return n
}

// ListSourceFiles returns the sorted *.yp files under dir. Directories whose
// name starts with a dot are skipped.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == SourceExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

type loaded struct {
	files   []*source.File
	loadErr []error
}

// preload reads every file up front; FileSet is not safe for concurrent Add.
func preload(ctx context.Context, fileSet *source.FileSet, paths []string) loaded {
	out := loaded{files: make([]*source.File, len(paths)), loadErr: make([]error, len(paths))}
	for i, path := range paths {
		out.files[i], out.loadErr[i] = loadFile(ctx, fileSet, path)
	}
	return out
}

func loadFailure(bag *diag.Bag, err error) {
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()))
}

func workers(jobs, files int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(min(jobs, files), 1)
}

// TokenizeDir lexes all *.yp files in dir in parallel.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	paths, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(paths) == 0 {
		return fileSet, nil, nil
	}
	pre := preload(ctx, fileSet, paths)

	// each goroutine owns results[i]
	results := make([]TokenizeDirResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bag := diag.NewBag(maxDiagnostics)
			results[i] = TokenizeDirResult{Path: path, File: pre.files[i], Bag: bag}
			if pre.loadErr[i] != nil {
				loadFailure(bag, pre.loadErr[i])
				return nil
			}
			results[i].Tokens = tokenizeFile(gctx, pre.files[i], bag)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// CheckDir parses every *.yp file under dir; see CheckFiles.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*CheckResult, error) {
	paths, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	return CheckFiles(ctx, paths, opts)
}

// CheckFiles parses paths in parallel, one lexer and parser per file, and
// summarizes each file. With a cache, files whose content was checked
// before are restored from their summary instead of being parsed.
func CheckFiles(ctx context.Context, paths []string, opts CheckOptions) (*CheckResult, error) {
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "check", trace.ParentSpan(ctx))
	ctx = trace.WithParent(ctx, root)

	res := &CheckResult{FileSet: source.NewFileSet(), Files: make([]CheckFileResult, len(paths))}
	if len(paths) == 0 {
		root.End("no files")
		return res, nil
	}

	loadTimer := observ.NewTimer()
	var pre loaded
	_ = loadTimer.Measure("load", func() error {
		pre = preload(ctx, res.FileSet, paths)
		return nil
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(opts.Jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			notify(opts.Observer, ProgressEvent{Path: path, Index: i, Total: len(paths), Status: FileStarted})
			started := time.Now()

			r := checkOne(gctx, path, pre.files[i], pre.loadErr[i], opts)
			res.Files[i] = r

			notify(opts.Observer, ProgressEvent{
				Path:    path,
				Index:   i,
				Total:   len(paths),
				Status:  FileFinished,
				Cached:  r.Cached,
				Errors:  countErrors(r.Bag),
				Elapsed: time.Since(started),
			})
			return nil
		})
	}
	err := g.Wait()

	reports := []observ.Report{loadTimer.Report()}
	for _, f := range res.Files {
		reports = append(reports, f.Timing)
	}
	res.Timings = observ.Merge(reports...)

	root.WithExtra("files", fmt.Sprint(len(paths))).End(pluralize(res.ErrorCount(), "error"))
	return res, err
}

func checkOne(ctx context.Context, path string, file *source.File, loadErr error, opts CheckOptions) CheckFileResult {
	r := CheckFileResult{Path: path, File: file, Bag: diag.NewBag(opts.MaxDiagnostics)}
	if loadErr != nil {
		loadFailure(r.Bag, loadErr)
		r.Err = loadErr
		return r
	}

	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file", trace.ParentSpan(ctx)).WithExtra("path", path)
	ctx = trace.WithParent(ctx, sp)
	timer := observ.NewTimer()

	var (
		key      project.Digest
		warnings []*diag.Diagnostic
	)
	if opts.Cache != nil {
		key = opts.Cache.Key(file)
		sum, ok, err := opts.Cache.Get(key)
		if err != nil {
			warnings = append(warnings, diag.New(diag.SevWarning, diag.IOCacheError, source.Span{}, "cache read: "+err.Error()))
		}
		if ok {
			cached := *sum
			cached.Path = path
			r.Bag = sum.Restore(file, opts.MaxDiagnostics)
			r.Summary = &cached
			r.Cached = true
			r.Timing = timer.Report()
			sp.End("cached")
			return r
		}
	}

	_ = timer.Measure("parse", func() error {
		r.Package, r.Err = parseFile(ctx, file, r.Bag)
		return r.Err
	})
	_ = timer.Measure("summarize", func() error {
		r.Summary = Summarize(path, r.Package, r.Bag)
		return nil
	})

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, r.Summary); err != nil {
			warnings = append(warnings, diag.New(diag.SevWarning, diag.IOCacheError, source.Span{}, "cache write: "+err.Error()))
		}
	}
	for _, w := range warnings {
		r.Bag.Add(w)
	}
	r.Timing = timer.Report()
	sp.End(pluralize(countErrors(r.Bag), "error"))
	return r
}

func notify(obs ProgressObserver, ev ProgressEvent) {
	if obs != nil {
		obs(ev)
	}
}
