package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

// Config mirrors yapl.toml.
type Config struct {
	Package     PackageConfig     `toml:"package"`
	Format      FormatConfig      `toml:"format"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Cache       CacheConfig       `toml:"cache"`
}

type PackageConfig struct {
	Name string `toml:"name"`
	Root string `toml:"root"` // checked by `yapl check` without arguments
}

type FormatConfig struct {
	IndentWidth int  `toml:"indent_width"`
	UseTabs     bool `toml:"use_tabs"`
}

type DiagnosticsConfig struct {
	Max     int `toml:"max"`
	Context int `toml:"context"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // relative to the project root
}

// DefaultConfig is used for keys absent from the manifest and when no
// manifest exists.
func DefaultConfig() Config {
	return Config{
		Package:     PackageConfig{Root: "."},
		Format:      FormatConfig{IndentWidth: 4},
		Diagnostics: DiagnosticsConfig{Max: 100, Context: 1},
		Cache:       CacheConfig{Enabled: true, Dir: ".yapl-cache"},
	}
}

// Manifest is a loaded yapl.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

var (
	// ErrInvalidPackageName indicates a [package].name that is not a dotted identifier.
	ErrInvalidPackageName = errors.New("invalid [package].name")
	// ErrInvalidIndentWidth indicates [format].indent_width out of range.
	ErrInvalidIndentWidth = errors.New("invalid [format].indent_width")
)

// LoadConfig decodes path on top of DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Package.Name = strings.TrimSpace(cfg.Package.Name)
	if cfg.Package.Name != "" && !IsValidPackageName(cfg.Package.Name) {
		return Config{}, fmt.Errorf("%s: %w %q", path, ErrInvalidPackageName, cfg.Package.Name)
	}
	if cfg.Format.IndentWidth < 1 || cfg.Format.IndentWidth > 16 {
		return Config{}, fmt.Errorf("%s: %w %d: must be between 1 and 16", path, ErrInvalidIndentWidth, cfg.Format.IndentWidth)
	}
	if cfg.Diagnostics.Max < 0 {
		cfg.Diagnostics.Max = 0
	}
	if cfg.Diagnostics.Context < 0 {
		cfg.Diagnostics.Context = 0
	}
	return cfg, nil
}

// Load finds yapl.toml from startDir upwards and loads it. Without a
// manifest it returns a Manifest rooted at startDir with DefaultConfig and
// ok=false.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		root, absErr := filepath.Abs(startDir)
		if absErr != nil {
			return nil, false, fmt.Errorf("failed to resolve start directory: %w", absErr)
		}
		return &Manifest{Root: root, Config: DefaultConfig()}, false, nil
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// SourceRoot resolves and validates [package].root against the project root.
func (m *Manifest) SourceRoot() (string, error) {
	return resolveWithin(m.Root, m.Config.Package.Root, "[package].root", true)
}

// CacheDir resolves [cache].dir against the project root. The directory
// need not exist yet.
func (m *Manifest) CacheDir() (string, error) {
	return resolveWithin(m.Root, m.Config.Cache.Dir, "[cache].dir", false)
}

func resolveWithin(projectRoot, rel, key string, mustExist bool) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		rel = "."
	}
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("invalid %s %q: must be relative", key, rel)
	}
	p := filepath.Join(projectRoot, filepath.Clean(filepath.FromSlash(rel)))
	if p != projectRoot && !pathWithin(projectRoot, p) {
		return "", fmt.Errorf("invalid %s %q: escapes project root", key, rel)
	}
	if !mustExist {
		return p, nil
	}
	info, err := os.Stat(p)
	if err != nil {
		return "", fmt.Errorf("invalid %s %q: %w", key, rel, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("invalid %s %q: not a directory", key, rel)
	}
	return p, nil
}

// IsValidPackageName reports whether name is a dotted list of ASCII
// identifiers, as written after the package keyword.
func IsValidPackageName(name string) bool {
	if name == "" {
		return false
	}
	for _, part := range strings.Split(name, ".") {
		if !isIdent(part) {
			return false
		}
	}
	return true
}

func isIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r > unicode.MaxASCII {
			return false
		}
		if i == 0 && r != '_' && !unicode.IsLetter(r) {
			return false
		}
		if i > 0 && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
