package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
)

func TestAustraliaMapColoring(t *testing.T) {
	spec, err := ParseFile("testdata/australia.yaml")
	require.NoError(t, err)
	in, err := spec.Build()
	require.NoError(t, err)
	require.NoError(t, in.Solve())

	colors := in.Assignment()
	require.Len(t, colors, 7)
	for state, color := range colors {
		assert.Contains(t, []string{"red", "green", "blue"}, color, "state %s", state)
	}
	for _, cs := range spec.Constraints {
		a, b := cs.Variables[0], cs.Variables[1]
		assert.NotEqual(t, colors[a], colors[b], "%s and %s share a color", a, b)
	}
}

func TestBuildRestrictedAndAuxVariables(t *testing.T) {
	spec, err := Parse(strings.NewReader(`
name: restricted
values: [a, b, c]
variables:
  - name: X
    values: [a]
  - name: Y
  - name: scratch
    aux: true
constraints:
  - { kind: not-equal, variables: [X, Y] }
`))
	require.NoError(t, err)
	in, err := spec.Build()
	require.NoError(t, err)
	require.NoError(t, in.Solve())

	colors := in.Assignment()
	assert.Equal(t, "a", colors["X"])
	assert.NotEqual(t, "a", colors["Y"])
	_, scratchSolved := colors["scratch"]
	assert.False(t, scratchSolved, "aux variables need no assignment")
}

func TestBuildUnsatisfiable(t *testing.T) {
	spec, err := Parse(strings.NewReader(`
values: [only]
variables:
  - name: A
  - name: B
constraints:
  - { kind: all-distinct, variables: [A, B] }
`))
	require.NoError(t, err)
	in, err := spec.Build()
	require.NoError(t, err)
	assert.ErrorIs(t, in.Solve(), csp.ErrNoSolution)
}

func TestBuildRejectsBadSpecs(t *testing.T) {
	cases := map[string]string{
		"empty value table": `
variables: [{ name: A }]
`,
		"duplicate value": `
values: [x, x]
variables: [{ name: A }]
`,
		"duplicate variable": `
values: [x]
variables: [{ name: A }, { name: A }]
`,
		"unknown value": `
values: [x]
variables: [{ name: A, values: [y] }]
`,
		"unknown constraint variable": `
values: [x]
variables: [{ name: A }]
constraints: [{ kind: not-equal, variables: [A, B] }]
`,
		"unknown kind": `
values: [x]
variables: [{ name: A }]
constraints: [{ kind: exactly-one, variables: [A] }]
`,
		"not-equal arity": `
values: [x]
variables: [{ name: A }]
constraints: [{ kind: not-equal, variables: [A] }]
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			spec, err := Parse(strings.NewReader(doc))
			require.NoError(t, err)
			_, err = spec.Build()
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse(strings.NewReader("values: [unterminated"))
	assert.Error(t, err)
}
