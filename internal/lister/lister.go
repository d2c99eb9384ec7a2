// Package lister turns a newline-delimited text file into a numbered list
// of its non-blank lines.
package lister

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultFile is the input read from the working directory.
const DefaultFile = "input.txt"

// ErrUnreadable covers every way the input can fail to load: missing,
// not permitted, not a regular file or not valid UTF-8 text.
var ErrUnreadable = errors.New("file unreadable")

// Load reads path in full and returns its content as text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s: invalid UTF-8 text", ErrUnreadable, path)
	}

	return string(data), nil
}

// Extract splits text on newlines and returns the trimmed, non-empty lines
// in input order.
func Extract(text string) []string {
	links := make([]string, 0)

	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		links = append(links, line)
	}

	return links
}

// Window drops the first skip entries and keeps at most limit of the rest.
// A zero limit keeps everything. Values past the end are clamped.
func Window(links []string, limit, skip int) []string {
	if skip > 0 {
		if skip >= len(links) {
			return links[:0]
		}
		links = links[skip:]
	}

	if limit > 0 && limit < len(links) {
		links = links[:limit]
	}

	return links
}

// Render writes each link as "<index>. <link>", indexes starting at 1.
func Render(w io.Writer, links []string) error {
	for i, link := range links {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, link); err != nil {
			return err
		}
	}

	return nil
}
