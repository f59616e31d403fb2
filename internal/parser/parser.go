package parser

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// Parser defines a document parser implementation.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte) (string, error)
}

// FrontMatter is the optional metadata block at the top of a source document.
type FrontMatter struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
}

// Document is a source document ready for extraction and rendering. Body has
// line endings normalized and the front matter removed.
type Document struct {
	Path        string
	FrontMatter FrontMatter
	Body        string
}

// DefaultName is the path reported for the bundled document.
const DefaultName = "embedded:projects.md"

//go:embed assets/projects.md
var defaultDocument []byte

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ParseFile reads path and parses it into a Document.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(path, data)
}

// Parse selects a parser based on name and builds a Document from data.
// Unrecognized names are treated as plain text.
func Parse(name string, data []byte) (*Document, error) {
	if _, ok := binaryFormats[strings.ToLower(filepath.Ext(name))]; ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupported)
	}
	text := string(data)
	for _, p := range registry {
		if p.CanParse(name) {
			parsed, err := p.Parse(data)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", name, err)
			}
			text = parsed
			break
		}
	}

	fm, body, ok := splitFrontMatter(name, text)
	if !ok {
		return &Document{Path: name, Body: text}, nil
	}
	return &Document{Path: name, FrontMatter: fm, Body: body}, nil
}

// splitFrontMatter strips a leading front matter block. A document may open
// with a "---" thematic break, so the block only counts when it decodes to a
// non-empty mapping; otherwise ok is false and the text is left alone.
func splitFrontMatter(name, text string) (FrontMatter, string, bool) {
	var raw map[string]interface{}
	body, err := frontmatter.Parse(strings.NewReader(text), &raw)
	if err != nil {
		slog.Debug("leading block is not front matter, keeping it in the body", "name", name, "err", err)
		return FrontMatter{}, "", false
	}
	if len(raw) == 0 {
		if len(body) != len(text) {
			slog.Debug("leading block is empty or not a mapping, keeping it in the body", "name", name)
		}
		return FrontMatter{}, "", false
	}
	var fm FrontMatter
	fm.Title, _ = raw["title"].(string)
	fm.Description, _ = raw["description"].(string)
	return fm, string(body), true
}

// Default returns the document bundled with the binary.
func Default() (*Document, error) {
	return Parse(DefaultName, defaultDocument)
}

func init() {
	// Register default parsers
	Register(txtParser{})
	Register(markdownParser{})
}

// ErrUnsupported indicates a format is not supported.
var ErrUnsupported = errors.New("unsupported document format")

// binaryFormats are document types that cannot hold a project list.
var binaryFormats = map[string]struct{}{
	".docx": {},
	".xlsx": {},
	".pdf":  {},
	".zip":  {},
}
