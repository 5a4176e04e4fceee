package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"sync"
)

//go:embed templates/*.html
var templateFiles embed.FS

// DefaultTemplate is the template used when no identifier is supplied.
const DefaultTemplate = "imagine"

var (
	templateCache = make(map[string]*template.Template)
	templateMu    sync.RWMutex
)

// ListTemplates returns the identifiers of all embedded resume templates.
func ListTemplates() []string {
	entries, err := templateFiles.ReadDir("templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".html")
		if name != entry.Name() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// RenderHTML executes the named template against the prepared variable
// mapping and returns the rendered document.
func RenderHTML(name string, data map[string]any) (string, error) {
	if name == "" {
		name = DefaultTemplate
	}

	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to execute template %s", name),
			Cause:   err,
		}
	}
	return out.String(), nil
}

// loadTemplate parses an embedded template by identifier, caching the result.
func loadTemplate(name string) (*template.Template, error) {
	templateMu.RLock()
	if tmpl, ok := templateCache[name]; ok {
		templateMu.RUnlock()
		return tmpl, nil
	}
	templateMu.RUnlock()

	content, err := templateFiles.ReadFile("templates/" + name + ".html")
	if err != nil {
		return nil, &TemplateNotFoundError{Name: name}
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to parse template %s", name),
			Cause:   err,
		}
	}

	templateMu.Lock()
	templateCache[name] = tmpl
	templateMu.Unlock()

	return tmpl, nil
}
