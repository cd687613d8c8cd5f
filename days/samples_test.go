package days_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SBuercklin/AdventOfCode23/days"
)

const (
	trebuchet = "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet"

	spelled = "two1nine\neightwothree\nabcone2threexyz\nxtwone3four\n4nineeightseven2\nzoneight234\n7pqrstsixteen"

	cubeGames = "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green\n" +
		"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue\n" +
		"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red\n" +
		"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red\n" +
		"Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green"

	schematic = "467..114..\n...*......\n..35..633.\n......#...\n617*......\n.....+.58.\n..592.....\n......755.\n...$.*....\n.664.598.."

	cards = "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53\n" +
		"Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19\n" +
		"Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1\n" +
		"Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83\n" +
		"Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36\n" +
		"Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11"

	almanac = "seeds: 79 14 55 13\n\n" +
		"seed-to-soil map:\n50 98 2\n52 50 48\n\n" +
		"soil-to-fertilizer map:\n0 15 37\n37 52 2\n39 0 15\n\n" +
		"fertilizer-to-water map:\n49 53 8\n0 11 42\n42 0 7\n57 7 4\n\n" +
		"water-to-light map:\n88 18 7\n18 25 70\n\n" +
		"light-to-temperature map:\n45 77 23\n81 45 19\n68 64 13\n\n" +
		"temperature-to-humidity map:\n0 69 1\n1 0 69\n\n" +
		"humidity-to-location map:\n60 56 37\n56 93 4"

	races = "Time:      7  15   30\nDistance:  9  40  200"

	camelHand = "32T3K 765\nT55J5 684\nKK677 28\nKTJJT 220\nQQQJA 483"

	network = "RL\n\nAAA = (BBB, CCC)\nBBB = (DDD, EEE)\nCCC = (ZZZ, GGG)\nDDD = (DDD, DDD)\nEEE = (EEE, EEE)\nGGG = (GGG, GGG)\nZZZ = (ZZZ, ZZZ)"

	ghosts = "LR\n\nWWA = (WWB, XXX)\nWWB = (XXX, WWZ)\nWWZ = (WWB, XXX)\nSSA = (SSB, XXX)\nSSB = (SSC, SSC)\nSSC = (SSZ, SSZ)\nSSZ = (SSB, SSB)\nXXX = (XXX, XXX)"

	histories = "0 3 6 9 12 15\n1 3 6 10 15 21\n10 13 16 21 30 45"

	pipeLoop = ".....\n.S-7.\n.|.|.\n.L-J.\n....."

	galaxies = "...#......\n.......#..\n#.........\n..........\n......#...\n.#........\n.........#\n..........\n.......#..\n#...#....."

	springs = "???.### 1,1,3\n.??..??...?##. 1,1,3\n?#?#?#?#?#?#?#? 1,3,1,6\n????.#...#... 4,1,1\n????.######..#####. 1,6,5\n?###???????? 3,2,1"

	mirrors = "#.##..##.\n..#.##.#.\n##......#\n##......#\n..#.##.#.\n..##..##.\n#.#.##.#.\n\n" +
		"#...##..#\n#....#..#\n..##..###\n#####.##.\n#####.##.\n..##..###\n#....#..#"

	platform = "O....#....\nO.OO#....#\n.....##...\nOO.#O....O\n.O.....O#.\nO.#..O.#.#\n..O..#O..O\n.......O..\n#....###..\n#OO..#...."

	initSteps = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7"

	contraption = ".|...\\....\n|.-.\\.....\n.....|-...\n........|.\n..........\n.........\\\n..../.\\\\..\n.-.-/..|..\n.|....-|.\\\n..//.|...."

	heatMap = "2413432311323\n3215453535623\n3255245654254\n3446585845452\n4546657867536\n1438598798454\n4457876987766\n3637877979653\n4654967986887\n4564679986453\n1224686865563\n2546548887735\n4322674655533"

	digPlan = "R 6 (#70c710)\nD 5 (#0dc571)\nL 2 (#5713f0)\nD 2 (#d2c081)\nR 2 (#59c680)\nD 2 (#411b91)\nL 5 (#8ceee2)\nU 2 (#caa173)\nL 1 (#1b58a2)\nU 2 (#caa171)\nR 2 (#7807d2)\nU 3 (#a77fa3)\nL 2 (#015232)\nU 2 (#7a21e3)"
)

func TestPuzzleSamples(t *testing.T) {
	tests := []struct {
		day, part int
		input     string
		want      int
	}{
		{1, 1, trebuchet, 142},
		{1, 2, spelled, 281},
		{2, 1, cubeGames, 8},
		{2, 2, cubeGames, 2286},
		{3, 1, schematic, 4361},
		{3, 2, schematic, 467835},
		{4, 1, cards, 13},
		{4, 2, cards, 30},
		{5, 1, almanac, 35},
		{5, 2, almanac, 46},
		{6, 1, races, 288},
		{6, 2, races, 71503},
		{7, 1, camelHand, 6440},
		{7, 2, camelHand, 5905},
		{8, 1, network, 2},
		{8, 2, ghosts, 6},
		{9, 1, histories, 114},
		{9, 2, histories, 2},
		{10, 1, pipeLoop, 4},
		{10, 2, pipeLoop, 1},
		{11, 1, galaxies, 374},
		{12, 1, springs, 21},
		{12, 2, springs, 525152},
		{13, 1, mirrors, 405},
		{13, 2, mirrors, 400},
		{14, 1, platform, 136},
		{14, 2, platform, 64},
		{15, 1, initSteps, 1320},
		{15, 2, initSteps, 145},
		{16, 1, contraption, 46},
		{16, 2, contraption, 51},
		{17, 1, heatMap, 102},
		{17, 2, heatMap, 94},
		{18, 1, digPlan, 62},
		{18, 2, digPlan, 952408144115},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("day%02d/part%d", tc.day, tc.part), func(t *testing.T) {
			solve, err := days.Lookup(tc.day, tc.part)
			require.NoError(t, err)
			got, err := solve(strings.Split(tc.input, "\n"))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

