// Package wordsquare searches for word squares: n×n letter grids whose
// rows and columns (and optionally the main diagonal) all spell words from
// a dictionary. Each grid cell is a constraint variable over the alphabet;
// every line of the square is one constraint backed by a
// position→letter→words index.
package wordsquare

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gitrdm/gocsp/pkg/csp"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Dictionary is a word list grouped by word length.
type Dictionary struct {
	byLength map[int][]string
}

// Load reads one word per line, keeping only purely alphabetic words and
// normalizing them to upper case.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{byLength: make(map[int][]string)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || !alphabetic(word) {
			continue
		}
		word = strings.ToUpper(word)
		d.byLength[len(word)] = append(d.byLength[len(word)], word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordsquare: read words: %w", err)
	}
	return d, nil
}

// LoadFile reads a dictionary from a text file with one word per line.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordsquare: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Words returns the words of the given length.
func (d *Dictionary) Words(length int) []string {
	return d.byLength[length]
}

func alphabetic(s string) bool {
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}

// Square is one word-square problem instance over a dictionary.
type Square struct {
	size    int
	problem *csp.Problem
	cells   [][]*csp.Variable

	// index maps position → letter → words of length size with that
	// letter at that position. Shared by every line constraint.
	index []map[byte][]string

	// freq counts letter occurrences across the usable words, driving the
	// most-common-letter-first value ordering.
	freq map[int]int
}

// Square builds the CSP for an n×n square. With diagonal set, the main
// diagonal must spell a word too. Any two cells share at most one line,
// so the disjoint-constraints lookup applies.
func (d *Dictionary) Square(size int, diagonal bool) *Square {
	sq := &Square{
		size:    size,
		problem: csp.NewProblem(),
		index:   make([]map[byte][]string, size),
		freq:    make(map[int]int),
	}
	sq.problem.SetDisjointConstraints(true)

	for i := range sq.index {
		sq.index[i] = make(map[byte][]string)
	}
	for _, word := range d.byLength[size] {
		for i := 0; i < size; i++ {
			sq.index[i][word[i]] = append(sq.index[i][word[i]], word)
			sq.freq[int(word[i])]++
		}
	}

	ordering := sq.byFrequency()
	letters := make([]int, 0, len(alphabet))
	for _, r := range alphabet {
		letters = append(letters, int(r))
	}
	sq.cells = make([][]*csp.Variable, size)
	for r := 0; r < size; r++ {
		sq.cells[r] = make([]*csp.Variable, size)
		for c := 0; c < size; c++ {
			v := sq.problem.NewVariable(fmt.Sprintf("%d,%d", r, c), csp.NewDomain(letters...))
			v.SetValueOrdering(ordering)
			sq.cells[r][c] = v
		}
	}

	for i := 0; i < size; i++ {
		row := make([]*csp.Variable, size)
		col := make([]*csp.Variable, size)
		for j := 0; j < size; j++ {
			row[j] = sq.cells[i][j]
			col[j] = sq.cells[j][i]
		}
		must(sq.problem.AddConstraint(&line{cells: row, index: sq.index}))
		must(sq.problem.AddConstraint(&line{cells: col, index: sq.index}))
	}
	if diagonal {
		diag := make([]*csp.Variable, size)
		for i := 0; i < size; i++ {
			diag[i] = sq.cells[i][i]
		}
		must(sq.problem.AddConstraint(&line{cells: diag, index: sq.index}))
	}
	return sq
}

// byFrequency orders candidate letters most-common-first across the
// usable words, a pure search-speed heuristic.
func (sq *Square) byFrequency() csp.ValueOrdering {
	return func(values []int) {
		sort.SliceStable(values, func(i, j int) bool {
			return sq.freq[values[i]] > sq.freq[values[j]]
		})
	}
}

// Problem exposes the underlying CSP.
func (sq *Square) Problem() *csp.Problem { return sq.problem }

// Solve fills the grid, or returns csp.ErrNoSolution.
func (sq *Square) Solve() error { return sq.problem.Solve() }

// Cell returns the letter committed to row r, column c, or 0.
func (sq *Square) Cell(r, c int) (rune, bool) {
	v, ok := sq.cells[r][c].Value()
	return rune(v), ok
}

// Render prints the grid, one row per line. Unassigned cells render as
// spaces.
func (sq *Square) Render() string {
	var b strings.Builder
	for r := 0; r < sq.size; r++ {
		for c := 0; c < sq.size; c++ {
			if letter, ok := sq.Cell(r, c); ok {
				b.WriteRune(letter)
			} else {
				b.WriteByte(' ')
			}
		}
		if r < sq.size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// line constrains the cells of one row, column, or diagonal to spell a
// dictionary word.
type line struct {
	cells []*csp.Variable
	index []map[byte][]string
}

func (l *line) Variables() []*csp.Variable { return l.cells }

// IsSatisfiable reports whether some word puts letter value at v's
// position while keeping every other position's letter inside that cell's
// current domain.
func (l *line) IsSatisfiable(v *csp.Variable, value int) bool {
	pos := -1
	for i, cell := range l.cells {
		if cell == v {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}
	for _, word := range l.index[pos][byte(value)] {
		ok := true
		for j, cell := range l.cells {
			if j != pos && !cell.Domain().Has(int(word[j])) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
