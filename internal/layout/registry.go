package layout

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultName is the layout used when a project is created without a template.
const DefaultName = "vfx"

//go:embed config/*.yaml
var configFiles embed.FS

// Layout is a named, ordered list of project-relative directories
type Layout struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Directories []string `yaml:"directories" json:"directories"`
}

// Registry holds the built-in layouts
type Registry struct {
	layouts map[string]*Layout
	mu      sync.RWMutex
}

// NewRegistry creates a registry and loads the embedded YAML layouts
func NewRegistry() (*Registry, error) {
	r := &Registry{
		layouts: make(map[string]*Layout),
	}

	entries, err := configFiles.ReadDir("config")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded layouts: %w", err)
	}
	for _, entry := range entries {
		if err := r.loadLayoutFile(entry.Name()); err != nil {
			return nil, err
		}
	}

	if _, ok := r.layouts[DefaultName]; !ok {
		return nil, fmt.Errorf("default layout %q is missing", DefaultName)
	}

	return r, nil
}

// loadLayoutFile loads one embedded layout file
func (r *Registry) loadLayoutFile(filename string) error {
	data, err := configFiles.ReadFile("config/" + filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}
	if l.Name == "" {
		l.Name = strings.TrimSuffix(filename, ".yaml")
	}

	r.mu.Lock()
	r.layouts[l.Name] = &l
	r.mu.Unlock()

	return nil
}

// Get returns a copy of the named layout's directory list
func (r *Registry) Get(name string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.layouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout: %s", name)
	}

	dirs := make([]string, len(l.Directories))
	copy(dirs, l.Directories)
	return dirs, nil
}

// Default returns the directory list of the default layout
func (r *Registry) Default() []string {
	dirs, _ := r.Get(DefaultName)
	return dirs
}

// Names returns the registered layout names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
