package game

import (
	"strconv"
	"strings"
)

// difficulties is the fixed level table, indexed by menu choice - 1.
var difficulties = [...]Difficulty{
	{Level: 1, Name: "Easy", Min: 1, Max: 50, MaxAttempts: 10},
	{Level: 2, Name: "Medium", Min: 1, Max: 100, MaxAttempts: 7},
	{Level: 3, Name: "Hard", Min: 1, Max: 200, MaxAttempts: 5},
	{Level: 4, Name: "Expert", Min: 1, Max: 500, MaxAttempts: 4},
}

// Difficulties returns the level table in menu order.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties[:])
	return out
}

// DifficultyFor maps a menu choice (1–4) to its Difficulty.
func DifficultyFor(choice int) (Difficulty, error) {
	if choice < 1 || choice > len(difficulties) {
		return Difficulty{}, &RangeError{Value: choice, Min: 1, Max: len(difficulties)}
	}
	return difficulties[choice-1], nil
}

// ParseDifficulty parses free-form menu input into a Difficulty.
func ParseDifficulty(input string) (Difficulty, error) {
	n, err := ParseInt(input)
	if err != nil {
		return Difficulty{}, err
	}
	return DifficultyFor(n)
}

// ParseInt parses a trimmed decimal integer, returning *ParseError on failure.
func ParseInt(input string) (int, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Input: s}
	}
	return n, nil
}
