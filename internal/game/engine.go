// internal/game/engine.go
//
// Core engine for a single guessing round.
// Responsibilities:
//   - Create rounds with a target drawn uniformly from the difficulty range.
//   - Validate guesses (integer, inside [Min, Max]) without consuming attempts on bad input.
//   - Produce proximity / temperature / parity hints for wrong guesses.
//   - Score won rounds and track state transitions: awaiting_guess → won/lost.
//
// Notes:
//   - Randomness is injected through Source so tests can pin the target.
//   - The difficulty multiplier is fixed when the round starts.
package game

import (
	"github.com/google/uuid"
)

// Round holds the state of one play of the game. It is discarded once finished.
type Round struct {
	ID           string
	Difficulty   Difficulty
	Target       int
	AttemptsUsed int
	state        State
	multiplier   int
}

// NewRound starts a round at difficulty d with a target drawn from src.
func NewRound(d Difficulty, src Source) *Round {
	return &Round{
		ID:         uuid.NewString(),
		Difficulty: d,
		Target:     between(src, d.Min, d.Max),
		state:      StateAwaitingGuess,
		multiplier: d.Multiplier(),
	}
}

// State reports the current lifecycle state.
func (r *Round) State() State { return r.state }

// AttemptsLeft is the number of guesses still available.
func (r *Round) AttemptsLeft() int { return r.Difficulty.MaxAttempts - r.AttemptsUsed }

// Guess parses free-form input and applies it.
// A *ParseError or *RangeError leaves the round untouched.
func (r *Round) Guess(input string) (Outcome, error) {
	if r.state.Terminal() {
		return r.outcome(0), ErrRoundOver
	}
	n, err := ParseInt(input)
	if err != nil {
		return r.outcome(0), err
	}
	return r.Apply(n)
}

// Apply validates and applies a numeric guess, mutating the round.
//
// State transitions:
//   - guess == target                 → won.
//   - attempts used reach MaxAttempts → lost.
//   - otherwise                       → awaiting_guess, with Feedback.
func (r *Round) Apply(guess int) (Outcome, error) {
	if r.state.Terminal() {
		return r.outcome(guess), ErrRoundOver
	}
	d := r.Difficulty
	if guess < d.Min || guess > d.Max {
		return r.outcome(guess), &RangeError{Value: guess, Min: d.Min, Max: d.Max}
	}

	leftBefore := r.AttemptsLeft()
	r.AttemptsUsed++

	switch {
	case guess == r.Target:
		r.state = StateWon
		out := r.outcome(guess)
		out.Score = score(d, r.AttemptsUsed, r.multiplier)
		return out, nil
	case r.AttemptsUsed >= d.MaxAttempts:
		r.state = StateLost
		return r.outcome(guess), nil
	}

	out := r.outcome(guess)
	fb := hint(r.Target, guess, leftBefore)
	out.Feedback = &fb
	return out, nil
}

func (r *Round) outcome(guess int) Outcome {
	return Outcome{
		RoundID:      r.ID,
		Difficulty:   r.Difficulty,
		Guess:        guess,
		Target:       r.Target,
		State:        r.state,
		AttemptsUsed: r.AttemptsUsed,
		AttemptsLeft: r.AttemptsLeft(),
	}
}

// hint builds the feedback for a wrong guess.
// attemptsLeft is the count at the start of the turn; the parity hint unlocks at <= 2.
func hint(target, guess, attemptsLeft int) Feedback {
	diff := abs(target - guess)
	fb := Feedback{
		Difference:  diff,
		Direction:   DirectionLower,
		Proximity:   proximityOf(diff),
		Temperature: temperatureOf(diff),
	}
	if guess < target {
		fb.Direction = DirectionHigher
	}
	if attemptsLeft <= 2 {
		fb.Parity = ParityOdd
		if target%2 == 0 {
			fb.Parity = ParityEven
		}
	}
	return fb
}

func proximityOf(diff int) Proximity {
	switch {
	case diff > 50:
		return ProximityVeryFar
	case diff > 20:
		return ProximityFar
	case diff > 10:
		return ProximityClose
	default:
		return ProximityVeryClose
	}
}

func temperatureOf(diff int) Temperature {
	switch {
	case diff <= 5:
		return TemperatureBurningHot
	case diff <= 15:
		return TemperatureHot
	case diff <= 30:
		return TemperatureWarm
	case diff <= 50:
		return TemperatureCold
	default:
		return TemperatureFreezing
	}
}

// Score computes the points for winning at d after attemptsUsed guesses.
func Score(d Difficulty, attemptsUsed int) int {
	return score(d, attemptsUsed, d.Multiplier())
}

// score rewards speed (unused attempts) and range size; all divisions floor.
func score(d Difficulty, attemptsUsed, multiplier int) int {
	base := 100
	attemptsBonus := (d.MaxAttempts - attemptsUsed) * 20
	rangeBonus := d.Max / 10
	difficultyBonus := multiplier * 50
	return base + attemptsBonus + rangeBonus + difficultyBonus
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
