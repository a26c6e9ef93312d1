package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(plan *domain.PlanResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.PlanResult) ([]byte, error)
}

func (ff FormatterFunc) Format(p *domain.PlanResult) ([]byte, error) { return ff.F(p) }
func (ff FormatterFunc) Name() string                              { return ff.ID }

// Options tune the built-in formatters.
type Options struct {
	// CurrencySymbol replaces DefaultCurrencySymbol in text and HTML output.
	CurrencySymbol string
}

func (o Options) symbol() string {
	if o.CurrencySymbol == "" {
		return DefaultCurrencySymbol
	}
	return o.CurrencySymbol
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, plan *domain.PlanResult, dir, ext string) (string, error) {
	data, err := f.Format(plan)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("wealth_plan_%s.%s", time.Now().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters maps canonical names to constructors.
var builtInFormatters = map[string]func(Options) Formatter{
	"console":         func(o Options) Formatter { return ConsoleFormatter{Symbol: o.symbol()} },
	"console-verbose": func(o Options) Formatter { return ConsoleVerboseFormatter{Symbol: o.symbol()} },
	"csv":             func(Options) Formatter { return CSVSummarizer{} },
	"timeline-csv":    func(Options) Formatter { return CSVDetailedExporter{} },
	"json":            func(Options) Formatter { return JSONFormatter{} },
	"html":            func(o Options) Formatter { return HTMLFormatter{Symbol: o.symbol()} },
	"pdf":             func(Options) Formatter { return PDFFormatter{} },
}

// extensions holds file extensions that differ from the format name.
var extensions = map[string]string{
	"console":         "txt",
	"console-verbose": "txt",
	"timeline-csv":    "csv",
}

// NewFormatter builds a registered formatter by (possibly aliased) name.
func NewFormatter(name string, opts Options) (Formatter, error) {
	n := NormalizeFormatName(name)
	ctor, ok := builtInFormatters[n]
	if !ok {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return ctor(opts), nil
}

// GetFormatterByName fetches a registered formatter with default options.
func GetFormatterByName(name string) Formatter {
	f, err := NewFormatter(name, Options{})
	if err != nil {
		return nil
	}
	return f
}

// Extension returns the file extension used when writing the named format.
func Extension(name string) string {
	n := NormalizeFormatName(name)
	if ext, ok := extensions[n]; ok {
		return ext
	}
	return n
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":         "console",
	"table":        "console",
	"verbose":      "console-verbose",
	"timeline":     "console-verbose",
	"csv-summary":  "csv",
	"csv-timeline": "timeline-csv",
	"detailed-csv": "timeline-csv",
	"html-report":  "html",
	"json-pretty":  "json",
	"pdf-report":   "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for n := range builtInFormatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
