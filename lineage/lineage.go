// Package lineage overlays generational name characters taken from a family poem.
package lineage

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// System maps a generation number to one character of the lineage poem.
type System struct {
	Poem []string
}

type poemFile struct {
	LineagePoem []string `yaml:"lineage_poem"`
}

// New returns a system for poem. An empty poem is an error.
func New(poem []string) (*System, error) {
	if len(poem) == 0 {
		return nil, errors.New("lineage poem is empty")
	}
	return &System{Poem: poem}, nil
}

// FromYAML reads the lineage_poem list from path.
func FromYAML(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read lineage file %s", path)
	}
	var pf poemFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, errors.Wrapf(err, "failed to decode lineage file %s", path)
	}
	sys, err := New(pf.LineagePoem)
	if err != nil {
		return nil, errors.Wrapf(err, "lineage file %s", path)
	}
	return sys, nil
}

// GenerationChar returns the poem entry for generation, cycling through the poem.
// Generations below 1 have none.
func (s *System) GenerationChar(generation int) (string, bool) {
	if generation <= 0 || len(s.Poem) == 0 {
		return "", false
	}
	return s.Poem[(generation-1)%len(s.Poem)], true
}

// AnnotateName inserts the generation character after the first character of name.
func (s *System) AnnotateName(name string, generation int) string {
	char, ok := s.GenerationChar(generation)
	if !ok || name == "" {
		return name
	}
	runes := []rune(name)
	return string(runes[:1]) + char + string(runes[1:])
}
