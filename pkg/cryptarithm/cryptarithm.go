// Package cryptarithm models cryptarithmetic puzzles of the form
// "SEND + MORE = MONEY" as constraint-satisfaction problems: one decimal
// variable per distinct letter, one auxiliary carry bit per column
// boundary, a column-sum constraint per column, and a single all-distinct
// constraint over the letters. Only two-addend decimal puzzles are
// supported.
package cryptarithm

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// ErrInvalidPuzzle is returned when the input does not parse as
// "word + word = word" or needs more than ten distinct letters.
var ErrInvalidPuzzle = errors.New("cryptarithm: invalid puzzle")

var puzzlePattern = regexp.MustCompile(`^\s*([A-Za-z]+)\s*\+\s*([A-Za-z]+)\s*=\s*([A-Za-z]+)\s*$`)

// Puzzle is a parsed cryptarithmetic problem ready to solve.
type Puzzle struct {
	problem *csp.Problem
	addend1 string
	addend2 string
	sum     string
	letters map[rune]*csp.Variable
	ordered []rune // letters in order of first appearance
	grid    string // right-justified addition layout
}

// Parse builds a Puzzle from a one-line equation with two addends.
// Letters are case-insensitive and normalized to upper case.
func Parse(input string) (*Puzzle, error) {
	m := puzzlePattern.FindStringSubmatch(strings.ToUpper(input))
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPuzzle, input)
	}
	pz := &Puzzle{
		problem: csp.NewProblem(),
		addend1: m[1],
		addend2: m[2],
		sum:     m[3],
		letters: make(map[rune]*csp.Variable),
	}
	pz.grid = layout(pz.addend1, pz.addend2, pz.sum)

	// One decimal variable per distinct letter. A letter leading any of
	// the three words can never be zero.
	leading := map[rune]bool{
		[]rune(pz.addend1)[0]: true,
		[]rune(pz.addend2)[0]: true,
		[]rune(pz.sum)[0]:     true,
	}
	for _, word := range []string{pz.addend1, pz.addend2, pz.sum} {
		for _, letter := range word {
			if _, seen := pz.letters[letter]; seen {
				continue
			}
			dom := csp.NewRangeDomain(0, 9)
			if leading[letter] {
				dom = csp.NewRangeDomain(1, 9)
			}
			v := pz.problem.NewVariable(string(letter), dom)
			pz.letters[letter] = v
			pz.ordered = append(pz.ordered, letter)
		}
	}
	if len(pz.letters) > 10 {
		return nil, fmt.Errorf("%w: %d distinct letters for 10 digits", ErrInvalidPuzzle, len(pz.letters))
	}

	// One auxiliary carry bit per column boundary.
	carries := make(map[int]*csp.Variable)
	for i := 1; i < len(pz.sum); i++ {
		carries[i] = pz.problem.NewAuxVariable(fmt.Sprintf("carry%d", i), csp.NewDomain(0, 1))
	}

	// Column i (1 = units): carryIn + addend digits = column digit + 10*carryOut.
	for i := 1; i <= len(pz.sum); i++ {
		var left []*csp.Variable
		if carry, ok := carries[i-1]; ok {
			left = append(left, carry)
		}
		if i <= len(pz.addend1) {
			left = append(left, pz.letterAt(pz.addend1, i))
		}
		if i <= len(pz.addend2) {
			left = append(left, pz.letterAt(pz.addend2, i))
		}
		right := []*csp.Variable{pz.letterAt(pz.sum, i)}
		weights := []int{1}
		if carry, ok := carries[i]; ok {
			right = append(right, carry)
			weights = append(weights, 10)
		}
		if err := pz.problem.AddConstraint(&columnSum{left: left, right: right, weights: weights}); err != nil {
			return nil, err
		}
	}

	letterVars := make([]*csp.Variable, 0, len(pz.ordered))
	for _, letter := range pz.ordered {
		letterVars = append(letterVars, pz.letters[letter])
	}
	if err := pz.problem.AddConstraint(csp.NewAllDistinct(letterVars...)); err != nil {
		return nil, err
	}
	return pz, nil
}

// letterAt returns the variable for the i-th column digit of word, with
// column 1 being the units digit.
func (pz *Puzzle) letterAt(word string, i int) *csp.Variable {
	runes := []rune(word)
	return pz.letters[runes[len(runes)-i]]
}

// Problem exposes the underlying CSP, mainly for tests and tooling.
func (pz *Puzzle) Problem() *csp.Problem { return pz.problem }

// Solve assigns a digit to every letter, or returns csp.ErrNoSolution.
func (pz *Puzzle) Solve() error { return pz.problem.Solve() }

// Digit returns the digit committed to letter, if any.
func (pz *Puzzle) Digit(letter rune) (int, bool) {
	v, ok := pz.letters[letter]
	if !ok {
		return 0, false
	}
	return v.Value()
}

// Grid returns the unsolved right-justified addition layout.
func (pz *Puzzle) Grid() string { return pz.grid }

// Render returns the addition layout with every solved letter replaced by
// its digit. Unsolved letters render as themselves.
func (pz *Puzzle) Render() string {
	var b strings.Builder
	for _, r := range pz.grid {
		if v, ok := pz.letters[r]; ok {
			if d, assigned := v.Value(); assigned {
				fmt.Fprintf(&b, "%d", d)
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// layout right-justifies the two addends and the sum the way the puzzle is
// written on paper:
//
//	  SEND
//	+ MORE
//	------
//	 MONEY
func layout(addend1, addend2, sum string) string {
	width := len(sum)
	if w := len(addend2) + 2; w > width {
		width = w
	}
	pad := func(s string) string { return strings.Repeat(" ", width-len(s)) + s }
	return strings.Join([]string{
		pad(addend1),
		pad("+ " + addend2),
		strings.Repeat("-", width),
		pad(sum),
	}, "\n")
}
