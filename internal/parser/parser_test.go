package parser_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/folio-cli/internal/parser"
	"github.com/KaramelBytes/folio-cli/internal/project"
)

func TestParseFileTXT(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")
	content := "## Alpha\r\n**Tech:** Go\r\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := parser.ParseFile(p)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if strings.Contains(doc.Body, "\r") || !strings.Contains(doc.Body, "## Alpha\n**Tech:** Go") {
		t.Fatalf("unexpected body: %q", doc.Body)
	}
	if doc.Path != p {
		t.Fatalf("unexpected path: %q", doc.Path)
	}
}

func TestParseFileMD(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.md")
	content := "# Title\n\n\n\nBody here\n\n- list\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := parser.ParseFile(p)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Body != content {
		t.Fatalf("blank lines not preserved: %q", doc.Body)
	}
}

func TestParseKeepsFencedBlankLines(t *testing.T) {
	content := "## A\n\n```\nline1\n\n\n\nline2\n```\n"
	doc, err := parser.Parse("projects.md", []byte(content))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.Contains(doc.Body, "line1\n\n\n\nline2") {
		t.Fatalf("fenced block changed: %q", doc.Body)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := parser.ParseFile(filepath.Join(t.TempDir(), "nope.md"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseFrontMatter(t *testing.T) {
	content := "---\ntitle: My Work\ndescription: Stuff\n---\n## Alpha\n"
	doc, err := parser.Parse("projects.md", []byte(content))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.FrontMatter.Title != "My Work" || doc.FrontMatter.Description != "Stuff" {
		t.Fatalf("unexpected front matter: %+v", doc.FrontMatter)
	}
	if strings.Contains(doc.Body, "title:") {
		t.Fatalf("front matter left in body: %q", doc.Body)
	}
	if !strings.Contains(doc.Body, "## Alpha") {
		t.Fatalf("body lost content: %q", doc.Body)
	}
}

func TestParseLeadingRule(t *testing.T) {
	cases := map[string]string{
		"invalid yaml":  "---\n## Alpha\n**Tech:** Go\n---\n## Beta\n",
		"comments only": "---\n## Alpha\n---\n## Beta\n",
		"scalar":        "---\nintro text\n---\n## Alpha\n## Beta\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := parser.Parse("projects.md", []byte(content))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if doc.Body != content {
				t.Fatalf("leading rule stripped: %q", doc.Body)
			}
			if doc.FrontMatter != (parser.FrontMatter{}) {
				t.Fatalf("unexpected front matter: %+v", doc.FrontMatter)
			}
			if n := len(project.Extract(doc.Body)); n != 2 {
				t.Fatalf("expected 2 projects, got %d", n)
			}
		})
	}
}

func TestParseBOM(t *testing.T) {
	doc, err := parser.Parse("projects.md", []byte("\ufeff## Alpha\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.HasPrefix(doc.Body, "## Alpha") {
		t.Fatalf("byte order mark not stripped: %q", doc.Body)
	}
}

func TestParseUnsupported(t *testing.T) {
	_, err := parser.Parse("projects.docx", []byte("PK"))
	if !errors.Is(err, parser.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestDefault(t *testing.T) {
	doc, err := parser.Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if doc.Path != parser.DefaultName {
		t.Fatalf("unexpected path: %q", doc.Path)
	}
	if doc.FrontMatter.Title == "" {
		t.Fatalf("expected bundled document to carry a title")
	}
	if !strings.Contains(doc.Body, "## ") {
		t.Fatalf("expected bundled document to list projects")
	}
}
