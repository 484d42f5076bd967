package edgelist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/cyclecheck/pkg/cycle"
	"github.com/matzehuels/cyclecheck/pkg/errors"
)

// Supported input formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatDOT  = "dot"
	FormatText = "text"
)

// Formats lists every supported format name.
var Formats = []string{FormatJSON, FormatTOML, FormatDOT, FormatText}

// Edge is an undirected edge between integer vertices.
type Edge = cycle.Edge[int64]

// List is a named edge list. Name is empty unless the source provides one.
type List struct {
	Name  string
	Edges []Edge
}

// ValidateFormat returns an INVALID_FORMAT error unless format is one of [Formats].
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (valid: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// DetectFormat picks a format from the file extension. Unknown extensions
// fall back to [FormatText].
func DetectFormat(path string) string {
	if format, ok := LookupFormat(path); ok {
		return format
	}
	return FormatText
}

// LookupFormat returns the format implied by the file extension and whether
// the extension is one it knows.
func LookupFormat(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".toml":
		return FormatTOML, true
	case ".dot", ".gv":
		return FormatDOT, true
	case ".txt":
		return FormatText, true
	default:
		return "", false
	}
}

// Read decodes an edge list in the given format from r. Read does not close r.
func Read(r io.Reader, format string) (*List, error) {
	switch format {
	case FormatJSON:
		return readJSON(r)
	case FormatTOML:
		return readTOML(r)
	case FormatDOT:
		return readDOT(r)
	case FormatText:
		return readText(r)
	default:
		return nil, ValidateFormat(format)
	}
}

// Import reads the edge list at path, choosing the format with [DetectFormat].
// When the source carries no name, the file's base name without extension is
// used.
func Import(path string) (*List, error) {
	return ImportFormat(path, DetectFormat(path))
}

// ImportFormat reads the edge list at path in an explicit format.
func ImportFormat(path, format string) (*List, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	l, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if l.Name == "" {
		base := filepath.Base(path)
		l.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return l, nil
}
