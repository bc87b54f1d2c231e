package catalog

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownEntry is returned when a lookup does not resolve to any entry.
var ErrUnknownEntry = errors.New("unknown entry")

// DefaultGrant is the viewer key whose patterns apply to every viewer.
const DefaultGrant = "*"

// Entry represents a launchable item offered by the menu.
type Entry struct {
	ID          string
	DisplayName string
	Visible     bool
	Permission  string
	Command     []string
	Dir         string
}

// Name returns the display name, falling back to the identifier.
func (e Entry) Name() string {
	if name := strings.TrimSpace(e.DisplayName); name != "" {
		return name
	}
	return e.ID
}

// Authority decides whether a viewer may start an entry.
type Authority interface {
	HasPermission(viewer string, entry Entry) bool
}

// Catalog is the ordered set of entries known to the process together with
// the permission grants used to filter them per viewer.
type Catalog struct {
	entries []Entry
	grants  map[string][]string
}

type fileEntry struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Visible    *bool    `yaml:"visible"`
	Permission string   `yaml:"permission"`
	Command    []string `yaml:"command"`
	Dir        string   `yaml:"dir"`
}

type fileFormat struct {
	Entries []fileEntry         `yaml:"entries"`
	Grants  map[string][]string `yaml:"grants"`
}

// New builds a catalog from already constructed entries.
func New(entries []Entry, grants map[string][]string) *Catalog {
	c := &Catalog{
		entries: CloneEntries(entries),
		grants:  make(map[string][]string, len(grants)),
	}
	for viewer, patterns := range grants {
		c.grants[viewer] = append([]string(nil), patterns...)
	}
	return c
}

// Empty returns a catalog without entries.
func Empty() *Catalog {
	return New(nil, nil)
}

// Load reads a YAML catalog from disk. An empty path yields an empty catalog.
func Load(file string) (*Catalog, error) {
	if strings.TrimSpace(file) == "" {
		return Empty(), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", file, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc fileFormat
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(doc.Entries))
	entries := make([]Entry, 0, len(doc.Entries))
	for i, fe := range doc.Entries {
		id := strings.TrimSpace(fe.ID)
		if id == "" {
			return nil, fmt.Errorf("entry %d: missing id", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("entry %d: duplicate id %q", i, id)
		}
		seen[id] = struct{}{}
		visible := true
		if fe.Visible != nil {
			visible = *fe.Visible
		}
		entries = append(entries, Entry{
			ID:          id,
			DisplayName: strings.TrimSpace(fe.Name),
			Visible:     visible,
			Permission:  strings.TrimSpace(fe.Permission),
			Command:     append([]string(nil), fe.Command...),
			Dir:         fe.Dir,
		})
	}
	for viewer, patterns := range doc.Grants {
		for _, pattern := range patterns {
			if _, err := path.Match(pattern, ""); err != nil {
				return nil, fmt.Errorf("grant %q for %s: %w", pattern, viewer, err)
			}
		}
	}
	return New(entries, doc.Grants), nil
}

// Entries returns every entry in declaration order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	return CloneEntries(c.entries)
}

// Len reports the number of entries, visible or not.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// HasPermission reports whether viewer holds a grant matching the entry's
// permission. Entries without a permission are open to everyone.
func (c *Catalog) HasPermission(viewer string, entry Entry) bool {
	if entry.Permission == "" {
		return true
	}
	if c == nil {
		return false
	}
	for _, key := range []string{viewer, DefaultGrant} {
		for _, pattern := range c.grants[key] {
			if ok, _ := path.Match(pattern, entry.Permission); ok {
				return true
			}
		}
	}
	return false
}

// Available returns the entries offered to viewer, in catalog order.
func (c *Catalog) Available(viewer string) []Entry {
	if c == nil {
		return nil
	}
	return Filter(c.entries, viewer, c)
}

// Filter keeps the entries the viewer may start and that are visible,
// preserving scan order.
func Filter(entries []Entry, viewer string, auth Authority) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if auth != nil && !auth.HasPermission(viewer, entry) {
			continue
		}
		if !entry.Visible {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// CloneEntries produces a copy of the provided entries.
func CloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
