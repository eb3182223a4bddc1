package render

import (
	"sort"
	"strings"
)

// Registry maps format names to their renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates a registry with the built-in renderers, all using the
// given report title.
func NewRegistry(title string) *Registry {
	r := &Registry{
		renderers: make(map[string]Renderer),
	}

	htmlRenderer := &HTMLRenderer{Title: title}
	markdownRenderer := &MarkdownRenderer{Title: title}

	r.renderers["html"] = htmlRenderer
	r.renderers["markdown"] = markdownRenderer
	r.renderers["md"] = markdownRenderer

	return r
}

// Get returns the renderer for a format name, or nil if none is registered.
func (r *Registry) Get(format string) Renderer {
	return r.renderers[strings.ToLower(format)]
}

// Register adds or replaces the renderer for a format name.
func (r *Registry) Register(format string, renderer Renderer) {
	r.renderers[strings.ToLower(format)] = renderer
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
