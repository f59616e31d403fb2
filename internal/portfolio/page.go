package portfolio

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<main>
{{.Content}}
</main>
</body>
</html>
`))

// WritePage writes a standalone HTML page holding the rendered document.
func (p *Portfolio) WritePage(w io.Writer) error {
	title := p.Title
	if title == "" {
		title = "Projects"
	}
	return pageTemplate.Execute(w, struct {
		Title   string
		Content template.HTML
	}{title, template.HTML(p.HTML)})
}
