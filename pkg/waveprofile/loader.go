package waveprofile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no profile file exists for a name.
var ErrNotFound = errors.New("profile not found")

const maxParentDepth = 16

// Loader reads and writes named profiles under <dir>/profiles.
type Loader struct {
	dir   string
	cache map[string]*Profile
}

func NewLoader(dir string) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string]*Profile),
	}
}

// Path returns the file a profile name maps to.
func (l *Loader) Path(name string) string {
	return filepath.Join(l.dir, "profiles", name+".json")
}

// Load reads a profile and merges in its parents. Results are cached;
// callers must not modify the returned profile.
func (l *Loader) Load(name string) (*Profile, error) {
	return l.load(name, 0)
}

func (l *Loader) load(name string, depth int) (*Profile, error) {
	name = strings.TrimSuffix(name, ".json")
	if p, ok := l.cache[name]; ok {
		return p, nil
	}
	if depth > maxParentDepth {
		return nil, fmt.Errorf("profile %q: parent chain deeper than %d", name, maxParentDepth)
	}

	data, err := os.ReadFile(l.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("could not read profile file: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("could not unmarshal profile %q: %w", name, err)
	}

	if p.Parent != "" {
		parent, err := l.load(p.Parent, depth+1)
		if err != nil {
			return nil, fmt.Errorf("could not load parent profile '%s': %w", p.Parent, err)
		}
		p.inherit(parent)
	}

	l.cache[name] = &p
	return &p, nil
}

func (p *Profile) inherit(parent *Profile) {
	if p.Preset == "" {
		p.Preset = parent.Preset
	}
	if p.WindSpeed == nil {
		p.WindSpeed = parent.WindSpeed
	}
	if p.WindDirectionDeg == nil {
		p.WindDirectionDeg = parent.WindDirectionDeg
	}
	if p.Fetch == nil {
		p.Fetch = parent.Fetch
	}
	if p.Choppiness == nil {
		p.Choppiness = parent.Choppiness
	}
	if p.Seed == nil {
		p.Seed = parent.Seed
	}
	if len(p.Octaves) == 0 {
		p.Octaves = append([]Octave(nil), parent.Octaves...)
	}
}

// Save writes p as the named profile and replaces any cached copy.
func (l *Loader) Save(name string, p *Profile) error {
	path := l.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create profile dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal profile %q: %w", name, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("could not write profile file: %w", err)
	}
	cp := *p
	l.cache[strings.TrimSuffix(name, ".json")] = &cp
	return nil
}

// List returns the names of the profiles on disk, sorted.
func (l *Loader) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(l.dir, "profiles", "*.json"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".json"))
	}
	return names, nil
}
