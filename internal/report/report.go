package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/jacoelho/linelist/internal/lister"
)

// Format determines how a listing is printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Entry is one numbered line of the listing.
type Entry struct {
	Index int    `json:"index" yaml:"index"`
	Line  string `json:"line" yaml:"line"`
}

// Listing is the numbered result of one run.
type Listing struct {
	Source  string  `json:"source" yaml:"source"`
	Total   int     `json:"total" yaml:"total"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// New numbers links from 1 in the order given.
func New(source string, links []string) Listing {
	entries := make([]Entry, 0, len(links))
	for i, link := range links {
		entries = append(entries, Entry{Index: i + 1, Line: link})
	}

	return Listing{
		Source:  source,
		Total:   len(entries),
		Entries: entries,
	}
}

// Lines returns the entry text in index order.
func (l Listing) Lines() []string {
	lines := make([]string, 0, len(l.Entries))
	for _, entry := range l.Entries {
		lines = append(lines, entry.Line)
	}
	return lines
}

// Write prints the listing in the requested format.
func (l Listing) Write(w io.Writer, format Format) error {
	switch format {
	case FormatText, "":
		return lister.Render(w, l.Lines())
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(l)
	case FormatYAML:
		payload, err := yaml.Marshal(l)
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		_, err = w.Write(payload)
		return err
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}
