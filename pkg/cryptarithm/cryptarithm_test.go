package cryptarithm

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// wordValue reconstructs the number a word stands for from the committed
// letter digits.
func wordValue(t *testing.T, pz *Puzzle, word string) int {
	t.Helper()
	n := 0
	for _, letter := range word {
		d, ok := pz.Digit(letter)
		require.True(t, ok, "letter %c unassigned", letter)
		n = n*10 + d
	}
	return n
}

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{
		"",
		"SEND MORE MONEY",
		"SEND + MORE",
		"SEND + MORE = M0NEY",
		"A + B = C = D",
	} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidPuzzle, "input %q", input)
	}
}

func TestParseRejectsTooManyLetters(t *testing.T) {
	_, err := Parse("THE + QUICK = BROWNFOX")
	assert.ErrorIs(t, err, ErrInvalidPuzzle)
}

func TestSendMoreMoney(t *testing.T) {
	pz, err := Parse("SEND + MORE = MONEY")
	require.NoError(t, err)
	require.NoError(t, pz.Solve())

	assert.Equal(t, 9567, wordValue(t, pz, "SEND"))
	assert.Equal(t, 1085, wordValue(t, pz, "MORE"))
	assert.Equal(t, 10652, wordValue(t, pz, "MONEY"))
}

func TestSendMoreMoneyRender(t *testing.T) {
	pz, err := Parse("SEND + MORE = MONEY")
	require.NoError(t, err)
	require.NoError(t, pz.Solve())

	g := goldie.New(t)
	g.Assert(t, "send_more_money", []byte(pz.Render()))
}

func TestGridLayout(t *testing.T) {
	pz, err := Parse("SEND + MORE = MONEY")
	require.NoError(t, err)
	assert.Equal(t, "  SEND\n+ MORE\n------\n MONEY", pz.Grid())
}

func TestUseLessKiddy(t *testing.T) {
	pz, err := Parse("use + less = kiddy")
	require.NoError(t, err)
	require.NoError(t, pz.Solve())

	a := wordValue(t, pz, "USE")
	b := wordValue(t, pz, "LESS")
	sum := wordValue(t, pz, "KIDDY")
	assert.Equal(t, sum, a+b, "committed digits must balance the addition")

	seen := make(map[int]bool)
	for _, letter := range "USELKIDY" {
		d, ok := pz.Digit(letter)
		require.True(t, ok)
		assert.False(t, seen[d], "digit %d reused", d)
		seen[d] = true
	}
}

func TestBackjumpingKeepsChainedCarryPuzzlesSolvable(t *testing.T) {
	// Carry propagation prunes letters several columns away from the
	// assignment that caused it, so a backjump that only consulted
	// neighbors used to skip implicated choice points and lose the
	// solution here. Both search modes must solve and agree.
	solve := func(backjump bool) *Puzzle {
		pz, err := Parse("use + less = kiddy")
		require.NoError(t, err)
		pz.Problem().SetBackjumping(backjump)
		require.NoError(t, pz.Solve())
		return pz
	}

	jumping := solve(true)
	exhaustive := solve(false)
	assert.Equal(t,
		wordValue(t, exhaustive, "USE")+wordValue(t, exhaustive, "LESS"),
		wordValue(t, exhaustive, "KIDDY"))
	for _, letter := range "USELKIDY" {
		a, _ := jumping.Digit(letter)
		b, _ := exhaustive.Digit(letter)
		assert.Equal(t, b, a, "letter %c diverged between search modes", letter)
	}
}

func TestUnsatisfiablePuzzle(t *testing.T) {
	// A = B contradicts all-distinct immediately.
	pz, err := Parse("A + B = A")
	require.NoError(t, err)
	assert.ErrorIs(t, pz.Solve(), csp.ErrNoSolution)
}

func TestLeadingLettersForbidZero(t *testing.T) {
	pz, err := Parse("SEND + MORE = MONEY")
	require.NoError(t, err)
	for _, letter := range "SM" {
		v := pz.Problem().Variable(string(letter))
		require.NotNil(t, v)
		assert.False(t, v.Domain().Has(0), "leading letter %c may not be zero", letter)
	}
	assert.True(t, pz.Problem().Variable("E").Domain().Has(0))
}
