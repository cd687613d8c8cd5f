// Command aoc23 runs one Advent of Code 2023 puzzle solver.
//
// Usage:
//
//	aoc23 -day N -part P [-file PATH] [-config PATH] [-v] [INPUT]
//
// The puzzle input is taken from -file, else from the INPUT argument, else
// from the configured input directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SBuercklin/AdventOfCode23/config"
	"github.com/SBuercklin/AdventOfCode23/days"
	"github.com/SBuercklin/AdventOfCode23/parse"
)

var log = logrus.New()

var errUsage = errors.New("aoc23: invalid arguments")

func main() {
	log.SetOutput(os.Stderr)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.WithError(err).Error("aoc23 failed")
		}
		os.Exit(1)
	}
}

type options struct {
	day, part  int
	file       string
	configPath string
	verbose    bool
	inline     string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("aoc23", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.day, "day", 0, "day number to run (1-25)")
	fs.IntVar(&o.part, "part", 0, "problem component (1 or 2)")
	fs.StringVar(&o.file, "file", "", "path to puzzle input")
	fs.StringVar(&o.configPath, "config", "aoc23.yaml", "settings file")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.day < 1 || o.day > 25 {
		return options{}, fmt.Errorf("%w: -day %d not in 1..25", errUsage, o.day)
	}
	if o.part < 1 || o.part > 2 {
		return options{}, fmt.Errorf("%w: -part %d not in 1..2", errUsage, o.part)
	}
	switch fs.NArg() {
	case 0:
	case 1:
		o.inline = fs.Arg(0)
	default:
		return options{}, fmt.Errorf("%w: want at most one INPUT argument, got %d", errUsage, fs.NArg())
	}

	return o, nil
}

// run solves the requested puzzle and prints the answer to stdout.
func run(args []string, stdout io.Writer) error {
	o, err := parseArgs(args, log.Out)
	if err != nil {
		return err
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	if o.verbose {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)

	solve, err := days.Lookup(o.day, o.part)
	if err != nil {
		return err
	}
	text, source, err := readInput(o, cfg)
	if err != nil {
		return err
	}
	entry := log.WithFields(logrus.Fields{"day": o.day, "part": o.part, "source": source})
	entry.Debug("solving")

	start := time.Now()
	answer, err := solve(parse.Lines(text))
	if err != nil {
		return fmt.Errorf("day %d part %d: %w", o.day, o.part, err)
	}
	entry.WithField("elapsed", time.Since(start)).Info("solved")

	fmt.Fprintf(stdout, "Answer for day %d, part %d\n%d\n", o.day, o.part, answer)
	return nil
}

// readInput resolves the puzzle text and names where it came from.
func readInput(o options, cfg config.Config) (text, source string, err error) {
	if o.file != "" {
		b, err := os.ReadFile(o.file)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", days.ErrNoInput, err)
		}
		return string(b), o.file, nil
	}
	if o.inline != "" {
		return o.inline, "argument", nil
	}
	p := cfg.InputPath(o.day)
	b, err := os.ReadFile(p)
	if err != nil {
		log.WithError(err).WithField("path", p).Debug("no input in configured directory")
		return "", "", days.ErrNoInput
	}

	return string(b), p, nil
}
