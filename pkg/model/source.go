package model

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/fcviz/pkg/errors"
)

// Source decodes model files of one kind.
type Source interface {
	// Read decodes a model from r.
	Read(r io.Reader) (*Static, error)
	// Supports reports whether this source handles the given filename.
	Supports(filename string) bool
	// Type returns the source type identifier (e.g., "json", "safetensors").
	Type() string
}

// DefaultSources returns the built-in sources in detection order.
func DefaultSources() []Source {
	return []Source{JSONSource{}, TOMLSource{}, SafeTensorsSource{}}
}

// Detect finds a source that supports the given file path.
// Returns an UNSUPPORTED error if no source matches.
func Detect(path string, sources ...Source) (Source, error) {
	if len(sources) == 0 {
		sources = DefaultSources()
	}
	name := filepath.Base(path)
	for _, s := range sources {
		if s.Supports(name) {
			return s, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported model file: %s", name)
}

// Open detects the source for path, decodes the file and validates the result.
// With no sources given, [DefaultSources] are used.
func Open(path string, sources ...Source) (*Static, error) {
	src, err := Detect(path, sources...)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := src.Read(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "read %s model %s", src.Type(), filepath.Base(path))
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return m, nil
}

// document is the shared structure of text model files (JSON and TOML).
type document struct {
	Modules    []moduleEntry    `json:"modules" toml:"modules"`
	Parameters []parameterEntry `json:"parameters" toml:"parameters"`
}

type moduleEntry struct {
	Name string `json:"name" toml:"name"`
	Type string `json:"type" toml:"type"`
}

type parameterEntry struct {
	Name  string    `json:"name" toml:"name"`
	Shape []int     `json:"shape" toml:"shape"`
	Data  []float64 `json:"data" toml:"data"`
}

func (d document) toStatic() *Static {
	m := &Static{
		Mods:   make([]Module, len(d.Modules)),
		Params: make([]Parameter, len(d.Parameters)),
	}
	for i, e := range d.Modules {
		m.Mods[i] = Module{Name: e.Name, Type: e.Type}
	}
	for i, e := range d.Parameters {
		shape := e.Shape
		if len(shape) == 0 && len(e.Data) > 0 {
			shape = []int{len(e.Data)}
		}
		m.Params[i] = Parameter{Name: e.Name, Tensor: Tensor{Shape: shape, Data: e.Data}}
	}
	return m
}
