package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/KaramelBytes/folio-cli/internal/project"
)

//go:embed *.json
var schemaFS embed.FS

// Schema names for ValidateProjects.
const (
	// ProjectsSchema requires a title on every project and a url on every link.
	ProjectsSchema = "projects.json"
	// StrictSchema additionally requires a description, tech and date.
	StrictSchema = "projects-strict.json"
)

// ValidationError lists every schema violation found.
type ValidationError struct {
	Errors []string
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Errors[0])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ValidateProjects checks extracted projects against an embedded schema.
func ValidateProjects(schemaName string, projects []project.Project) error {
	if projects == nil {
		projects = []project.Project{}
	}
	b, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	var data interface{}
	if err := json.Unmarshal(b, &data); err != nil {
		return fmt.Errorf("decode projects: %w", err)
	}
	return ValidateJSON(schemaName, data)
}

// ValidateJSON validates decoded JSON data against an embedded schema.
func ValidateJSON(schemaName string, data interface{}) error {
	schemaData, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}
	schema, err := jsonschema.CompileString(schemaName, string(schemaData))
	if err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", schemaName, err)
	}

	err = schema.Validate(data)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return ValidationError{Errors: []string{err.Error()}}
	}
	var out []string
	collect(verr, &out)
	return ValidationError{Errors: out}
}

// collect gathers the leaf causes, which carry the specific messages.
func collect(e *jsonschema.ValidationError, out *[]string) {
	if len(e.Causes) == 0 {
		loc := e.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, fmt.Sprintf("%s: %s", loc, e.Message))
		return
	}
	for _, c := range e.Causes {
		collect(c, out)
	}
}
