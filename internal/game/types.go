// internal/game/types.go
//
// Core type definitions for the number guessing engine.
// Defines:
//   - State: where a round is in its lifecycle (awaiting guess / won / lost).
//   - Difficulty: the (min, max, attempts) tuple chosen before a round.
//   - Feedback: the hint bundle produced for a wrong, non-final guess.
//   - Outcome: the result of applying one guess to a round.

package game

// State represents the lifecycle position of a round.
//   - "awaiting_guess": the round accepts further guesses.
//   - "won":            the target was guessed (terminal).
//   - "lost":           all attempts were used without a hit (terminal).
type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateWon           State = "won"
	StateLost          State = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }

// Difficulty is a closed guessing range plus the number of attempts allowed.
type Difficulty struct {
	Level       int    // Menu index (1–4).
	Name        string // Display name ("Easy", "Medium", ...).
	Min         int    // Lowest valid guess (inclusive).
	Max         int    // Highest valid guess (inclusive).
	MaxAttempts int    // Attempts available in one round.
}

// Multiplier is the difficulty bonus factor used by the scoring formula.
func (d Difficulty) Multiplier() int { return d.Max / 50 }

// Direction tells the player which way to move the next guess.
type Direction string

const (
	DirectionHigher Direction = "higher"
	DirectionLower  Direction = "lower"
)

// Proximity is the distance bucket shown with every wrong guess.
type Proximity string

const (
	ProximityVeryFar   Proximity = "very far"
	ProximityFar       Proximity = "far"
	ProximityClose     Proximity = "close"
	ProximityVeryClose Proximity = "very close"
)

// Temperature is the second, independent distance bucket.
type Temperature string

const (
	TemperatureBurningHot Temperature = "burning hot"
	TemperatureHot        Temperature = "hot"
	TemperatureWarm       Temperature = "warm"
	TemperatureCold       Temperature = "cold"
	TemperatureFreezing   Temperature = "freezing"
)

// Parity is the extra hint revealed when few attempts remain.
// ParityHidden means the hint is not unlocked for this guess.
type Parity string

const (
	ParityHidden Parity = ""
	ParityEven   Parity = "even"
	ParityOdd    Parity = "odd"
)

// Feedback holds every hint produced for a wrong, non-terminal guess.
type Feedback struct {
	Difference  int
	Direction   Direction
	Proximity   Proximity
	Temperature Temperature
	Parity      Parity
}

// Outcome is returned for each accepted guess.
type Outcome struct {
	RoundID      string
	Difficulty   Difficulty
	Guess        int
	Target       int
	State        State
	AttemptsUsed int
	AttemptsLeft int
	Feedback     *Feedback // Set only while the round is still awaiting guesses.
	Score        int       // Round score; non-zero only when State == StateWon.
}
