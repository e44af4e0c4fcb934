// Package input turns typed text and uploaded files into documents ready for
// analysis.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
	ErrUnsupportedFile = errors.New("unsupported file type")
)

type Mode string

const (
	ModeText Mode = "text"
	ModeFile Mode = "file"
)

// AcceptedExtensions are the uploads the file mode takes.
var AcceptedExtensions = []string{".txt", ".csv", ".md"}

// DefaultPreviewChars is how much of a file is shown before truncation.
const DefaultPreviewChars = 1000

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Document struct {
	Mode Mode
	Name string
	Text string
}

func FromText(text string) (Document, error) {
	if !utf8.ValidString(text) {
		return Document{}, ErrInvalidEncoding
	}
	if strings.TrimSpace(text) == "" {
		return Document{}, ErrEmptyInput
	}
	return Document{Mode: ModeText, Text: text}, nil
}

// FromFile decodes an uploaded file. Markdown is reduced to its plain text.
func FromFile(name string, data []byte) (Document, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(AcceptedExtensions, ext) {
		return Document{}, fmt.Errorf("%w: %q (accepted: %s)", ErrUnsupportedFile, name, strings.Join(AcceptedExtensions, ", "))
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return Document{}, fmt.Errorf("%w: %s", ErrInvalidEncoding, name)
	}

	text := string(data)
	if ext == ".md" {
		text = MarkdownToText(text)
	}
	if strings.TrimSpace(text) == "" {
		return Document{}, fmt.Errorf("%w: %s", ErrEmptyInput, name)
	}

	return Document{Mode: ModeFile, Name: filepath.Base(name), Text: text}, nil
}

// Preview returns at most limit runes of the text, marking a cut with "...".
// The full text is still what gets analyzed.
func (d Document) Preview(limit int) string {
	return Truncate(d.Text, limit)
}

func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
