// Package seed replays a YAML description of files and versions into a
// registry.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alimasry/go-version-registry/registry"
	"github.com/alimasry/go-version-registry/version"
)

//go:embed demo.yaml
var demoYAML []byte

// Seed is a list of files to create followed by versions to append.
type Seed struct {
	Files    []string `yaml:"files"`
	Versions []Entry  `yaml:"versions"`
}

// Entry is one version to append. An empty File appends to the
// registry's last file; otherwise the version is added by name and
// Label is ignored.
type Entry struct {
	File    string `yaml:"file,omitempty"`
	Number  int    `yaml:"number"`
	State   string `yaml:"state"`
	Date    string `yaml:"date"`
	Label   string `yaml:"label,omitempty"`
	Content string `yaml:"content"`
}

// Parse decodes and validates a seed document.
func Parse(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for i, e := range s.Versions {
		if _, err := version.ParseState(e.State); err != nil {
			return nil, fmt.Errorf("versions[%d]: %w", i, err)
		}
	}
	return &s, nil
}

// Load reads and parses a seed file.
func Load(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Demo returns the built-in two-file sample.
func Demo() *Seed {
	s, err := Parse(demoYAML)
	if err != nil {
		panic("seed: bad demo.yaml: " + err.Error())
	}
	return s
}

// Apply adds the files, then the versions in order. Files that already
// exist are skipped. Versions that cannot be placed are skipped and
// reported together once everything else was applied; this includes
// entries whose State does not parse.
func (s *Seed) Apply(reg registry.Registry) error {
	for _, name := range s.Files {
		if err := reg.AddFile(name); err != nil && !errors.Is(err, registry.ErrFileExists) {
			return err
		}
	}

	var errs []error
	for i, e := range s.Versions {
		st, err := version.ParseState(e.State)
		if err != nil {
			errs = append(errs, fmt.Errorf("versions[%d]: %w", i, err))
			continue
		}
		if e.File == "" {
			err = reg.AddVersionToLastFile(e.Number, st, e.Date, e.Label, e.Content)
		} else {
			err = reg.AddVersionByFileName(e.File, e.Number, st, e.Date, e.Content)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("versions[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
