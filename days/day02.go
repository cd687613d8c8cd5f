package days

import (
	"strconv"
	"strings"

	"github.com/SBuercklin/AdventOfCode23/parse"
)

type cubes struct{ red, green, blue int }

func (c cubes) power() int { return c.red * c.green * c.blue }

func (c cubes) within(limit cubes) bool {
	return c.red <= limit.red && c.green <= limit.green && c.blue <= limit.blue
}

type game struct {
	id     int
	rounds []cubes
}

// fewest is the smallest bag that makes every round possible.
func (g game) fewest() cubes {
	var m cubes
	for _, r := range g.rounds {
		m.red = max(m.red, r.red)
		m.green = max(m.green, r.green)
		m.blue = max(m.blue, r.blue)
	}

	return m
}

// Day02Part1 sums the ids of games possible with 12 red, 13 green and
// 14 blue cubes.
func Day02Part1(lines []string) (int, error) {
	games, err := parseGames(lines)
	if err != nil {
		return 0, err
	}
	limit := cubes{red: 12, green: 13, blue: 14}
	total := 0
	for _, g := range games {
		if g.fewest().within(limit) {
			total += g.id
		}
	}

	return total, nil
}

// Day02Part2 sums the power of the fewest cubes each game needs.
func Day02Part2(lines []string) (int, error) {
	games, err := parseGames(lines)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		total += g.fewest().power()
	}

	return total, nil
}

// parseGames reads "Game 1: 3 blue, 4 red; 1 red, 2 green".
func parseGames(lines []string) ([]game, error) {
	games := make([]game, 0, len(lines))
	for _, l := range lines {
		head, body, err := parse.Cut(l, ":")
		if err != nil {
			return nil, parseErrorf("game %q: %v", l, err)
		}
		id, err := strconv.Atoi(strings.TrimPrefix(head, "Game "))
		if err != nil {
			return nil, parseErrorf("game id %q", head)
		}
		g := game{id: id}
		for _, round := range strings.Split(body, ";") {
			var c cubes
			for _, item := range parse.CommaSeparated(round) {
				f := parse.Fields(item)
				if len(f) != 2 {
					return nil, parseErrorf("game %d: cube count %q", id, item)
				}
				n, err := strconv.Atoi(f[0])
				if err != nil {
					return nil, parseErrorf("game %d: cube count %q", id, item)
				}
				switch f[1] {
				case "red":
					c.red = n
				case "green":
					c.green = n
				case "blue":
					c.blue = n
				default:
					return nil, parseErrorf("game %d: unknown colour %q", id, f[1])
				}
			}
			g.rounds = append(g.rounds, c)
		}
		games = append(games, g)
	}

	return games, nil
}
