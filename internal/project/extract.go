package project

import "strings"

const (
	headingPrefix     = "## "
	titlePrefix       = "# "
	urlsPrefix        = "**URLS:**"
	descriptionPrefix = "**Description:**"
	techPrefix        = "**Tech:**"
	datePrefix        = "**Date:**"
	fieldMarker       = "**"
)

type lineKind int

const (
	lineText lineKind = iota
	lineBlank
	lineHeading
	lineURLs
	lineDescription
	lineTech
	lineDate
	// lineField is a bold-prefixed line whose label is not recognized.
	lineField
)

// classify reports the kind of a trimmed line and the value that follows its prefix.
func classify(line string) (lineKind, string) {
	switch {
	case line == "":
		return lineBlank, ""
	case strings.HasPrefix(line, headingPrefix) && !strings.HasPrefix(line, titlePrefix):
		return lineHeading, strings.TrimSpace(strings.TrimPrefix(line, headingPrefix))
	case strings.HasPrefix(line, urlsPrefix):
		return lineURLs, strings.TrimSpace(strings.TrimPrefix(line, urlsPrefix))
	case strings.HasPrefix(line, descriptionPrefix):
		return lineDescription, strings.TrimSpace(strings.TrimPrefix(line, descriptionPrefix))
	case strings.HasPrefix(line, techPrefix):
		return lineTech, strings.TrimSpace(strings.TrimPrefix(line, techPrefix))
	case strings.HasPrefix(line, datePrefix):
		return lineDate, strings.TrimSpace(strings.TrimPrefix(line, datePrefix))
	case strings.HasPrefix(line, fieldMarker):
		return lineField, ""
	default:
		return lineText, line
	}
}

// scan holds the state of a single Extract call. The open project is kept by
// value and copied into projects when sealed.
type scan struct {
	projects       []Project
	current        Project
	open           bool
	collectingURLs bool
}

// Extract scans markdown line by line and returns the projects it describes, in
// the order their headings appear. It never fails: missing fields are left empty
// and malformed link entries are dropped.
func Extract(markdown string) []Project {
	s := &scan{projects: []Project{}}
	for _, raw := range strings.Split(markdown, "\n") {
		kind, value := classify(strings.TrimSpace(raw))
		s.dispatch(kind, value)
	}
	s.seal()
	return s.projects
}

// Count returns the number of project headings in markdown, which is the number
// of records Extract produces for it.
func Count(markdown string) int {
	n := 0
	for _, raw := range strings.Split(markdown, "\n") {
		if kind, _ := classify(strings.TrimSpace(raw)); kind == lineHeading {
			n++
		}
	}
	return n
}

func (s *scan) dispatch(kind lineKind, value string) {
	switch kind {
	case lineHeading:
		s.seal()
		s.current = newProject(value)
		s.open = true
		s.collectingURLs = false
		return
	case lineURLs:
		if s.open {
			s.startURLs(value)
			return
		}
	case lineText:
		if s.collectingURLs && s.open {
			if link, ok := ParseLink(strings.TrimSuffix(value, ",")); ok {
				s.current.URLs = append(s.current.URLs, link)
			}
		}
		return
	}

	if !s.open {
		return
	}
	switch kind {
	case lineDescription:
		s.current.Description = value
	case lineTech:
		s.current.Tech = firstSegment(value)
	case lineDate:
		s.current.Date = value
	}
	s.collectingURLs = false
}

// startURLs handles a URLS line. An inline value is the complete list; an empty
// one switches to reading one entry per following line.
func (s *scan) startURLs(value string) {
	s.current.URLs = []Link{}
	if value == "" {
		s.collectingURLs = true
		return
	}
	for _, entry := range strings.Split(value, ",") {
		if link, ok := ParseLink(entry); ok {
			s.current.URLs = append(s.current.URLs, link)
		}
	}
	s.collectingURLs = false
}

func (s *scan) seal() {
	if s.open {
		s.projects = append(s.projects, s.current)
	}
	s.current = Project{}
	s.open = false
}

// ParseLink parses a "url|icon" entry. The icon defaults to DefaultIcon. It
// returns false when the url part is empty.
func ParseLink(entry string) (Link, bool) {
	parts := strings.Split(entry, "|")
	url := strings.TrimSpace(parts[0])
	if url == "" {
		return Link{}, false
	}
	icon := DefaultIcon
	if len(parts) > 1 {
		if v := strings.TrimSpace(parts[1]); v != "" {
			icon = v
		}
	}
	return Link{URL: url, Icon: icon}, true
}

// firstSegment keeps only the first comma-separated value.
func firstSegment(value string) string {
	head, _, _ := strings.Cut(value, ",")
	return strings.TrimSpace(head)
}
