package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/de-tools/sales-atlas/pkg/models/store"
)

// Loader reads a whole dataset into memory.
type Loader interface {
	Load(ctx context.Context, path string) ([]store.RawRecord, store.LoadStats, error)
}

// Options configure how a dataset file is parsed
type Options struct {
	// Delimiter separates fields in text files. Zero selects the format default.
	Delimiter rune
	// Sheet is the workbook sheet to read. Empty selects the first sheet.
	Sheet string
	// Required columns are reported in LoadStats.MissingColumns when absent.
	Required []string
}

// LoaderFactory is a function type that creates a Loader from parsing options
type LoaderFactory func(opts Options) Loader

// Registry maps file extensions to loader factories
type Registry interface {
	// Register adds a loader factory for a file extension such as ".csv"
	Register(ext string, factory LoaderFactory) error
	// Create instantiates the loader matching the extension of path
	Create(path string, opts Options) (Loader, error)
	// ListFormats returns the registered extensions, sorted
	ListFormats() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]LoaderFactory
}

// NewRegistry creates a registry pre-populated with the given factories
func NewRegistry(factories map[string]LoaderFactory) Registry {
	r := &registry{factories: make(map[string]LoaderFactory, len(factories))}
	for ext, factory := range factories {
		r.factories[normalizeExt(ext)] = factory
	}
	return r
}

// DefaultRegistry knows delimited text files and Excel workbooks.
func DefaultRegistry() Registry {
	return NewRegistry(map[string]LoaderFactory{
		".csv":  NewCSVLoader,
		".txt":  NewCSVLoader,
		".tsv":  NewTSVLoader,
		".xlsx": NewXLSXLoader,
	})
}

// Builtin returns the loader factory for a built-in format name: "csv",
// "tsv" or "xlsx".
func Builtin(format string) (LoaderFactory, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return NewCSVLoader, nil
	case "tsv":
		return NewTSVLoader, nil
	case "xlsx":
		return NewXLSXLoader, nil
	default:
		return nil, fmt.Errorf("unknown dataset format %q. Built-in formats: [csv tsv xlsx]", format)
	}
}

// RegisterAliases maps extra file extensions onto built-in formats,
// e.g. {"dat": "csv"}.
func RegisterAliases(r Registry, aliases map[string]string) error {
	exts := make([]string, 0, len(aliases))
	for ext := range aliases {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	for _, ext := range exts {
		factory, err := Builtin(aliases[ext])
		if err != nil {
			return fmt.Errorf("format alias %q: %w", ext, err)
		}
		if err := r.Register(ext, factory); err != nil {
			return fmt.Errorf("format alias %q: %w", ext, err)
		}
	}
	return nil
}

func (r *registry) Register(ext string, factory LoaderFactory) error {
	ext = normalizeExt(ext)
	if ext == "" || ext == "." {
		return fmt.Errorf("extension cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[ext]; exists {
		return fmt.Errorf("format %q is already registered", ext)
	}

	r.factories[ext] = factory
	return nil
}

func (r *registry) Create(path string, opts Options) (Loader, error) {
	ext := normalizeExt(filepath.Ext(path))

	r.mu.RLock()
	factory, exists := r.factories[ext]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unsupported dataset format %q for %s. Supported formats: %v",
			ext, path, r.ListFormats())
	}

	return factory(opts), nil
}

func (r *registry) ListFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.factories))
	for ext := range r.factories {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	return formats
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
