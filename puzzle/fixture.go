package puzzle

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is one puzzle with its expected password, as stored in YAML.
type Fixture struct {
	Name     string   `yaml:"name"`
	FaceSize int      `yaml:"face_size"`
	Net      []string `yaml:"net"`
	Moves    string   `yaml:"moves"`
	Want     int      `yaml:"want"`
}

// fixtureFile is the document root of a fixture file.
type fixtureFile struct {
	Puzzles []Fixture `yaml:"puzzles"`
}

// Puzzle parses the fixture into a Puzzle carrying its face size.
func (f Fixture) Puzzle() (*Puzzle, error) {
	p, err := FromLines(f.Net, f.Moves)
	if err != nil {
		return nil, fmt.Errorf("fixture %q: %w", f.Name, err)
	}
	p.FaceSize = f.FaceSize
	return p, nil
}

// Decode reads fixtures from a YAML document with a top-level "puzzles" list.
// Every fixture needs a name and a net; face_size may be omitted (inferred)
// but must not be negative.
func Decode(r io.Reader) ([]Fixture, error) {
	var doc fixtureFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrFixture, err)
	}
	for i, f := range doc.Puzzles {
		switch {
		case f.Name == "":
			return nil, fmt.Errorf("%w: puzzle %d has no name", ErrFixture, i)
		case len(f.Net) == 0:
			return nil, fmt.Errorf("%w: puzzle %q has no net", ErrFixture, f.Name)
		case f.FaceSize < 0:
			return nil, fmt.Errorf("%w: puzzle %q has negative face_size", ErrFixture, f.Name)
		}
	}
	return doc.Puzzles, nil
}

// Load reads fixtures from a YAML file.
func Load(path string) ([]Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFixture, err)
	}
	defer f.Close()

	fixtures, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fixtures, nil
}
