package portfolio

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/KaramelBytes/folio-cli/internal/parser"
	"github.com/KaramelBytes/folio-cli/internal/project"
)

// DefaultMaxEntries bounds the number of documents a Service remembers.
const DefaultMaxEntries = 16

// ErrNotFound is returned when no project has the requested ID.
var ErrNotFound = errors.New("project not found")

// namespace seeds the name-based UUIDs given to entries.
var namespace = uuid.MustParse("6f0c5b7e-4c1a-5d3e-9b1f-2a7c8d9e0f11")

// Entry is an extracted project with a stable identifier.
type Entry struct {
	ID string `json:"id" yaml:"id"`

	project.Project `yaml:",inline"`
}

// Portfolio is everything derived from one source document.
type Portfolio struct {
	Title    string  `json:"title"`
	Source   string  `json:"source"`
	Hash     string  `json:"hash"`
	Projects []Entry `json:"projects"`
	HTML     string  `json:"-"`
}

// Get returns the entry with the given ID.
func (p *Portfolio) Get(id string) (*Entry, error) {
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Renderer turns a markdown document into HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

// Service builds portfolios and remembers them by content hash. Both the
// extractor and the renderer are deterministic, so a repeated document is
// answered from memory.
type Service struct {
	renderer   Renderer
	maxEntries int

	mu    sync.Mutex
	cache map[string]*Portfolio
	order []string
}

// NewService creates a Service. maxEntries <= 0 selects DefaultMaxEntries.
func NewService(r Renderer, maxEntries int) *Service {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Service{
		renderer:   r,
		maxEntries: maxEntries,
		cache:      make(map[string]*Portfolio),
	}
}

// Build extracts and renders doc. The returned Portfolio is shared with later
// callers for the same content and must not be modified.
func (s *Service) Build(doc *parser.Document) (*Portfolio, error) {
	if doc == nil {
		return nil, errors.New("document is nil")
	}
	hash := contentHash(doc.Body)

	s.mu.Lock()
	cached, ok := s.cache[hash]
	s.mu.Unlock()
	if ok && cached.Title == doc.FrontMatter.Title && cached.Source == doc.Path {
		return cached, nil
	}

	html, err := s.renderer.Render(doc.Body)
	if err != nil {
		return nil, err
	}
	records := project.Extract(doc.Body)
	p := &Portfolio{
		Title:    doc.FrontMatter.Title,
		Source:   doc.Path,
		Hash:     hash,
		Projects: make([]Entry, 0, len(records)),
		HTML:     html,
	}
	for i, rec := range records {
		p.Projects = append(p.Projects, Entry{ID: EntryID(i, rec.Title), Project: rec})
	}

	s.remember(hash, p)
	return p, nil
}

func (s *Service) remember(hash string, p *Portfolio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cache[hash]; !ok {
		s.order = append(s.order, hash)
	}
	s.cache[hash] = p
	for len(s.order) > s.maxEntries {
		delete(s.cache, s.order[0])
		s.order = s.order[1:]
	}
}

// Len reports how many documents are remembered.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// EntryID derives the identifier of the project at position index. Titles may
// repeat, so the position is part of the name.
func EntryID(index int, title string) string {
	return uuid.NewSHA1(namespace, []byte(strconv.Itoa(index)+":"+title)).String()
}

func contentHash(body string) string {
	sum := sha1.Sum([]byte(body))
	return hex.EncodeToString(sum[:])
}
