package betafn

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Functions that a golden table may reference.
const (
	FuncLogBeta              = "logbeta"
	FuncBeta                 = "beta"
	FuncRegularizedBeta      = "regbeta"
	FuncRegularizedBetaUpper = "regbetac"
)

// Case is one golden row: the expected value of Func at (X, A, B).
// X is ignored by logbeta and beta. A row passes when the result is within
// ULPs units in the last place or within relative tolerance Tol of Want;
// with neither set it must match exactly.
type Case struct {
	Name string  `yaml:"name,omitempty"`
	Func string  `yaml:"func"`
	X    float64 `yaml:"x,omitempty"`
	A    float64 `yaml:"a"`
	B    float64 `yaml:"b"`
	Want float64 `yaml:"want"`
	ULPs float64 `yaml:"ulps,omitempty"`
	Tol  float64 `yaml:"tol,omitempty"`
}

// Label identifies c in reports.
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	switch c.Func {
	case FuncLogBeta, FuncBeta:
		return fmt.Sprintf("%s(%g, %g)", c.Func, c.A, c.B)
	}
	return fmt.Sprintf("%s(%g, %g, %g)", c.Func, c.X, c.A, c.B)
}

// Table is a golden file.
type Table struct {
	Cases []Case `yaml:"cases"`
}

// LoadTable reads a golden table from a YAML file.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()
	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadTable decodes and validates a golden table.
func ReadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var t Table
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	for i, c := range t.Cases {
		if _, ok := evaluators[c.Func]; !ok {
			return nil, fmt.Errorf("case %d: %w", i, errUnknownFunc(c.Func))
		}
		if c.ULPs < 0 || c.Tol < 0 {
			return nil, fmt.Errorf("case %d: negative tolerance", i)
		}
	}
	return &t, nil
}

func errUnknownFunc(name string) error {
	return fmt.Errorf("unknown func %q", name)
}
