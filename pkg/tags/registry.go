package tags

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/tagfield/pkg/files"
	"github.com/pluqqy/tagfield/pkg/models"
)

// Registry manages the known tags used for suggestions and chip colors
type Registry struct {
	mu       sync.RWMutex
	registry *models.TagRegistry
	path     string
}

// NewRegistry loads the registry at path, starting empty when the file does not exist
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{
		path: path,
	}

	if err := r.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.registry = &models.TagRegistry{
				Tags: []models.Tag{},
			}
			return r, nil
		}
		return nil, fmt.Errorf("failed to load tag registry: %w", err)
	}

	return r, nil
}

// Path returns the file backing the registry
func (r *Registry) Path() string {
	return r.path
}

// Load reads the tag registry from disk
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var registry models.TagRegistry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return fmt.Errorf("failed to parse tag registry: %w", err)
	}
	if registry.Tags == nil {
		registry.Tags = []models.Tag{}
	}

	r.registry = &registry
	return nil
}

// Save writes the tag registry to disk
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := yaml.Marshal(r.registry)
	if err != nil {
		return fmt.Errorf("failed to marshal tag registry: %w", err)
	}

	if err := files.WriteFileAtomic(r.path, data); err != nil {
		return fmt.Errorf("failed to save tag registry: %w", err)
	}

	return nil
}

// GetTag retrieves tag metadata by name, ignoring case and spacing differences
func (r *Registry) GetTag(name string) (*models.Tag, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.find(name)
}

func (r *Registry) find(name string) (*models.Tag, bool) {
	key := models.NormalizeTagName(name)
	for _, tag := range r.registry.Tags {
		if models.NormalizeTagName(tag.Name) == key {
			t := tag
			return &t, true
		}
	}
	return nil, false
}

// Color returns the chip color for a tag
func (r *Registry) Color(name string) string {
	if tag, ok := r.GetTag(name); ok {
		return models.GetTagColor(name, tag.Color)
	}
	return models.GetTagColor(name, "")
}

// AddTag adds or updates a tag. The name is stored as given so the
// registry can hold upper-case or spaced tags produced by the field.
func (r *Registry) AddTag(tag models.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tag.Name = strings.TrimSpace(tag.Name)
	if tag.Name == "" {
		return fmt.Errorf("invalid tag name: %w", models.ErrEmptyTagName)
	}

	key := models.NormalizeTagName(tag.Name)
	for i, existing := range r.registry.Tags {
		if models.NormalizeTagName(existing.Name) == key {
			r.registry.Tags[i] = tag
			return nil
		}
	}

	r.registry.Tags = append(r.registry.Tags, tag)
	return nil
}

// RemoveTag removes a tag from the registry
func (r *Registry) RemoveTag(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := models.NormalizeTagName(name)

	newTags := make([]models.Tag, 0, len(r.registry.Tags))
	found := false

	for _, tag := range r.registry.Tags {
		if models.NormalizeTagName(tag.Name) != key {
			newTags = append(newTags, tag)
		} else {
			found = true
		}
	}

	if !found {
		return fmt.Errorf("tag '%s' not found in registry", name)
	}

	r.registry.Tags = newTags
	return nil
}

// ListTags returns a copy of all tags sorted by name
func (r *Registry) ListTags() []models.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]models.Tag, len(r.registry.Tags))
	copy(tags, r.registry.Tags)
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i].Name) < strings.ToLower(tags[j].Name)
	})
	return tags
}

// Record adds every name not yet known with an auto-assigned color and
// saves once. It returns how many tags were added.
func (r *Registry) Record(names []string) (int, error) {
	added := 0
	for _, name := range names {
		if _, exists := r.GetTag(name); exists {
			continue
		}
		if err := r.AddTag(models.Tag{Name: name, Color: models.GetTagColor(name, "")}); err != nil {
			return added, err
		}
		added++
	}

	if added == 0 {
		return 0, nil
	}
	if err := r.Save(); err != nil {
		return added, err
	}
	return added, nil
}

// Suggest returns known tag names matching input, prefix matches first and
// then substring matches, skipping anything in exclude. A limit of zero
// means no limit.
func (r *Registry) Suggest(input string, exclude []string, limit int) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil
	}

	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[strings.ToLower(e)] = true
	}

	known := r.ListTags()
	var prefix, contains []string
	for _, tag := range known {
		lower := strings.ToLower(tag.Name)
		if skip[lower] {
			continue
		}
		switch {
		case strings.HasPrefix(lower, input):
			prefix = append(prefix, tag.Name)
		case strings.Contains(lower, input):
			contains = append(contains, tag.Name)
		}
	}

	suggestions := append(prefix, contains...)
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
