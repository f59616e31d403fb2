package project

// DefaultIcon is the icon tag assigned to a link that does not name one.
const DefaultIcon = "link"

// Project is one portfolio entry extracted from the source document.
type Project struct {
	Title       string `json:"title" yaml:"title"`
	URLs        []Link `json:"urls" yaml:"urls"`
	Description string `json:"description" yaml:"description"`
	Tech        string `json:"tech" yaml:"tech"`
	Date        string `json:"date" yaml:"date"`
}

// Link is a single URL attached to a project along with the icon used to display it.
type Link struct {
	URL  string `json:"url" yaml:"url"`
	Icon string `json:"icon" yaml:"icon"`
}

func newProject(title string) Project {
	return Project{Title: title, URLs: []Link{}}
}
