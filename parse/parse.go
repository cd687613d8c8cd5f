// Package parse holds the small text helpers shared by the puzzle solvers.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrSyntax is returned when input does not have the expected shape.
var ErrSyntax = errors.New("parse: syntax error")

// Lines splits s into lines, accepting "\n" or "\r\n" endings. A single
// trailing newline does not produce an empty final line.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// Blocks groups lines into runs separated by blank lines. Leading,
// trailing and repeated blank lines produce no empty blocks.
func Blocks(lines []string) [][]string {
	var out [][]string
	var cur []string
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

// Fields splits s on runs of whitespace.
func Fields(s string) []string { return strings.Fields(s) }

// CommaSeparated splits s on commas and trims the spaces around each item.
// Empty input yields no items.
func CommaSeparated(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts
}

// Ints parses every whitespace-separated field of s as a signed integer.
func Ints(s string) ([]int, error) {
	fs := strings.Fields(s)
	out := make([]int, 0, len(fs))
	for _, f := range fs {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrSyntax, f)
		}
		out = append(out, n)
	}

	return out, nil
}

// IntList parses a comma separated list such as "3,2,1".
func IntList(s string) ([]int, error) {
	parts := CommaSeparated(s)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrSyntax, p)
		}
		out = append(out, n)
	}

	return out, nil
}

// Digits returns the decimal digits of s in order, skipping anything else.
func Digits(s string) []int {
	var out []int
	for _, r := range s {
		if unicode.IsDigit(r) && r <= '9' {
			out = append(out, int(r-'0'))
		}
	}

	return out
}

// Cut splits s around the first sep and trims both halves. A missing
// separator is an ErrSyntax.
func Cut(s, sep string) (before, after string, err error) {
	b, a, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", fmt.Errorf("%w: %q has no %q", ErrSyntax, s, sep)
	}

	return strings.TrimSpace(b), strings.TrimSpace(a), nil
}
