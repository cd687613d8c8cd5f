package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SBuercklin/AdventOfCode23/parse"
)

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parse.Lines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, parse.Lines("a\r\n\r\nb"))
	assert.Nil(t, parse.Lines(""))
	assert.Nil(t, parse.Lines("\n"))
}

func TestBlocks(t *testing.T) {
	got := parse.Blocks([]string{"", "a", "b", "", "", "c", ""})
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, got)
	assert.Nil(t, parse.Blocks(nil))
}

func TestCommaSeparated(t *testing.T) {
	assert.Equal(t, []string{"3 blue", "4 red"}, parse.CommaSeparated(" 3 blue, 4 red"))
	assert.Nil(t, parse.CommaSeparated("  "))
}

func TestInts(t *testing.T) {
	got, err := parse.Ints("  0 3 -6\t9 ")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, -6, 9}, got)

	_, err = parse.Ints("1 x 3")
	assert.ErrorIs(t, err, parse.ErrSyntax)

	got, err = parse.IntList("1,1,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3}, got)
	_, err = parse.IntList("1,,3")
	assert.ErrorIs(t, err, parse.ErrSyntax)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 8}, parse.Digits("a1b2c3d8"))
	assert.Empty(t, parse.Digits("trebuchet"))
}

func TestCut(t *testing.T) {
	a, b, err := parse.Cut("Game 1: 3 blue", ":")
	require.NoError(t, err)
	assert.Equal(t, "Game 1", a)
	assert.Equal(t, "3 blue", b)

	_, _, err = parse.Cut("no separator", "|")
	assert.ErrorIs(t, err, parse.ErrSyntax)
}
