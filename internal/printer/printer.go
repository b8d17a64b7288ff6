// Package printer handles output formatting and display
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/bethropolis/gitwalk/internal/gitwalk"
)

// Format selects the output layout.
type Format string

const (
	FormatList Format = "list"
	FormatTree Format = "tree"
	FormatJSON Format = "json"
)

// Printer renders walk entries to the configured output destination.
type Printer struct {
	output      io.Writer
	format      Format
	useColors   bool
	showDirs    bool
	jsonStarted bool
	fileCount   int64
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		format:    FormatList,
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithFormat selects the output format
func (p *Printer) WithFormat(format Format) *Printer {
	p.format = format
	if format == FormatJSON {
		// Colors would corrupt the JSON stream
		p.useColors = false
	}
	return p
}

// WithDirs includes directory entries in list output
func (p *Printer) WithDirs(enabled bool) *Printer {
	p.showDirs = enabled
	return p
}

// jsonEntry mirrors a walk entry with a root-relative path.
type jsonEntry struct {
	Path  string   `json:"path"`
	Dirs  []string `json:"dirs"`
	Files []string `json:"files"`
}

// PrintEntry outputs one walk entry. rel is the entry's slash-separated
// path relative to the walk root, empty for the root itself. files is
// the (possibly match-filtered) file list to display.
func (p *Printer) PrintEntry(rel string, entry *gitwalk.Entry, files []string) {
	p.fileCount += int64(len(files))

	switch p.format {
	case FormatJSON:
		if !p.jsonStarted {
			fmt.Fprint(p.output, "[\n")
			p.jsonStarted = true
		} else {
			fmt.Fprint(p.output, ",\n")
		}
		data, err := json.MarshalIndent(jsonEntry{Path: rel, Dirs: entry.Dirs, Files: files}, "  ", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
			return
		}
		fmt.Fprintf(p.output, "  %s", data)

	case FormatTree:
		depth := 0
		name := rel
		if rel == "" {
			name = "."
		} else {
			depth = strings.Count(rel, "/") + 1
			name = path.Base(rel)
		}
		fmt.Fprintf(p.output, "%s%s\n", indent(depth), p.dirName(name))
		for _, file := range files {
			fmt.Fprintf(p.output, "%s%s\n", indent(depth+1), file)
		}

	default: // FormatList
		if p.showDirs {
			for _, dir := range entry.Dirs {
				fmt.Fprintf(p.output, "%s\n", p.dirName(path.Join(rel, dir)+"/"))
			}
		}
		for _, file := range files {
			fmt.Fprintf(p.output, "%s\n", path.Join(rel, file))
		}
	}
}

// dirName renders a directory name, bold cyan when colors are on.
func (p *Printer) dirName(name string) string {
	if p.useColors {
		return "\033[1;36m" + name + "\033[0m"
	}
	return name
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// Finalize completes any pending operations (like closing JSON array)
func (p *Printer) Finalize() {
	if p.format == FormatJSON && p.jsonStarted {
		fmt.Fprint(p.output, "\n]\n")
	}
}

// GetCount returns the number of files printed
func (p *Printer) GetCount() int64 {
	return p.fileCount
}

// ParseFormat maps a flag value to a Format.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatList, FormatTree, FormatJSON:
		return Format(value), nil
	case "":
		return FormatList, nil
	default:
		return "", fmt.Errorf("printer: unknown format %q (want list, tree or json)", value)
	}
}
