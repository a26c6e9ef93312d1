package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// allFormats are written by the "all" pseudo-format.
var allFormats = []string{"console-verbose", "timeline-csv", "json", "html", "pdf"}

// GenerateReport writes plan in format to a timestamped file in dir and returns the
// paths written. "all" writes every format in allFormats.
func GenerateReport(plan *domain.PlanResult, format, dir string, opts Options) ([]string, error) {
	formats := []string{format}
	if NormalizeFormatName(format) == "all" {
		formats = allFormats
	}

	var paths []string
	for _, name := range formats {
		f, err := NewFormatter(name, opts)
		if err != nil {
			return paths, err
		}
		path, err := WriteFormatted(f, plan, dir, Extension(name))
		if err != nil {
			return paths, fmt.Errorf("writing %s report: %w", f.Name(), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// SupportedFormatsHelp describes accepted format names for CLI help text.
func SupportedFormatsHelp() string {
	return strings.Join(append(AvailableFormatterNames(), "all"), ", ")
}
