// Package model builds constraint problems from declarative YAML
// definitions: a table of symbolic values, variables drawing from it, and
// constraint groups over them. It covers problems whose constraints are
// purely "these variables differ" — map coloring being the canonical
// example — without writing any Go.
package model

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// Supported constraint kinds.
const (
	KindAllDistinct = "all-distinct"
	KindNotEqual    = "not-equal"
)

// Spec is the YAML shape of a problem definition.
type Spec struct {
	Name        string           `yaml:"name"`
	Values      []string         `yaml:"values"`
	Variables   []VariableSpec   `yaml:"variables"`
	Constraints []ConstraintSpec `yaml:"constraints"`
}

// VariableSpec declares one variable. An empty values list means the
// variable ranges over the whole value table.
type VariableSpec struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values,omitempty"`
	Aux    bool     `yaml:"aux,omitempty"`
}

// ConstraintSpec declares one constraint group.
type ConstraintSpec struct {
	Kind      string   `yaml:"kind"`
	Variables []string `yaml:"variables"`
}

// Parse decodes a Spec from YAML.
func Parse(r io.Reader) (*Spec, error) {
	var s Spec
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("model: decode: %w", err)
	}
	return &s, nil
}

// ParseFile decodes a Spec from a YAML file.
func ParseFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Instance is a Spec lowered onto a solvable csp.Problem. Symbolic values
// are encoded as indexes into the spec's value table.
type Instance struct {
	Name    string
	problem *csp.Problem
	values  []string
}

// Build validates the spec and constructs the problem. not-equal groups
// lower to two-variable all-distinct constraints, which have identical
// semantics.
func (s *Spec) Build() (*Instance, error) {
	if len(s.Values) == 0 {
		return nil, errors.New("model: empty value table")
	}
	valueIndex := make(map[string]int, len(s.Values))
	for i, name := range s.Values {
		if _, dup := valueIndex[name]; dup {
			return nil, fmt.Errorf("model: duplicate value %q", name)
		}
		valueIndex[name] = i
	}

	in := &Instance{Name: s.Name, problem: csp.NewProblem(), values: s.Values}
	seen := make(map[string]bool)
	for _, vs := range s.Variables {
		if vs.Name == "" {
			return nil, errors.New("model: variable without a name")
		}
		if seen[vs.Name] {
			return nil, fmt.Errorf("model: duplicate variable %q", vs.Name)
		}
		seen[vs.Name] = true

		candidates := make([]int, 0, len(s.Values))
		if len(vs.Values) == 0 {
			for i := range s.Values {
				candidates = append(candidates, i)
			}
		} else {
			for _, name := range vs.Values {
				i, ok := valueIndex[name]
				if !ok {
					return nil, fmt.Errorf("model: variable %q: unknown value %q", vs.Name, name)
				}
				candidates = append(candidates, i)
			}
		}
		if vs.Aux {
			in.problem.NewAuxVariable(vs.Name, csp.NewDomain(candidates...))
		} else {
			in.problem.NewVariable(vs.Name, csp.NewDomain(candidates...))
		}
	}

	for _, cs := range s.Constraints {
		vars := make([]*csp.Variable, 0, len(cs.Variables))
		for _, name := range cs.Variables {
			v := in.problem.Variable(name)
			if v == nil {
				return nil, fmt.Errorf("model: constraint over unknown variable %q", name)
			}
			vars = append(vars, v)
		}
		switch cs.Kind {
		case KindNotEqual:
			if len(vars) != 2 {
				return nil, fmt.Errorf("model: not-equal needs exactly 2 variables, got %d", len(vars))
			}
			fallthrough
		case KindAllDistinct:
			if err := in.problem.AddConstraint(csp.NewAllDistinct(vars...)); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("model: unknown constraint kind %q", cs.Kind)
		}
	}
	return in, nil
}

// Problem exposes the underlying CSP.
func (in *Instance) Problem() *csp.Problem { return in.problem }

// Solve assigns every non-auxiliary variable, or returns
// csp.ErrNoSolution.
func (in *Instance) Solve() error { return in.problem.Solve() }

// Assignment maps variable names back to their symbolic values. Variables
// without a committed value (unsolved, or auxiliary) are omitted.
func (in *Instance) Assignment() map[string]string {
	out := make(map[string]string)
	for _, v := range in.problem.Variables() {
		if value, ok := v.Value(); ok {
			out[v.Name()] = in.values[value]
		}
	}
	return out
}
