// Package output renders projection results in multiple formats.
package output

import (
	"fmt"
	"strings"

	"github.com/dyaboykyl/investisizer-sub001/internal/calculation"
)

// Formatter renders a projection set to a string.
type Formatter interface {
	Format(set *calculation.ProjectionSet) (string, error)
}

// NewFormatter creates a formatter for the given format name.
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "console", "table", "":
		return &ConsoleFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "json":
		return &JSONFormatter{Indent: true}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: console, csv, json)", format)
	}
}
