package game

// Quick play uses a fixed range and attempt budget, with no scoring.
const (
	QuickMin         = 1
	QuickMax         = 100
	QuickMaxAttempts = 7
)

// QuickLabel is the coarse closeness label shown in quick play.
type QuickLabel string

const (
	QuickLabelNone      QuickLabel = ""
	QuickLabelVeryClose QuickLabel = "very close"
	QuickLabelWarm      QuickLabel = "warm"
)

// QuickRound is a stateless single round: no session, no persistence.
type QuickRound struct {
	Target       int
	AttemptsUsed int
	state        State
}

// QuickOutcome is the result of one accepted quick-play guess.
type QuickOutcome struct {
	Guess        int
	Target       int
	State        State
	AttemptsUsed int
	Direction    Direction  // Empty when the guess was correct.
	Label        QuickLabel // QuickLabelNone for gaps over 15.
}

// NewQuickRound draws a target from [QuickMin, QuickMax].
func NewQuickRound(src Source) *QuickRound {
	return &QuickRound{Target: between(src, QuickMin, QuickMax), state: StateAwaitingGuess}
}

// State reports the current lifecycle state.
func (q *QuickRound) State() State { return q.state }

// Guess applies free-form input. Unparsable input does not consume an attempt;
// any parsed integer does, with no range check.
func (q *QuickRound) Guess(input string) (QuickOutcome, error) {
	if q.state.Terminal() {
		return QuickOutcome{Target: q.Target, State: q.state, AttemptsUsed: q.AttemptsUsed}, ErrRoundOver
	}
	n, err := ParseInt(input)
	if err != nil {
		return QuickOutcome{Target: q.Target, State: q.state, AttemptsUsed: q.AttemptsUsed}, err
	}
	q.AttemptsUsed++

	out := QuickOutcome{Guess: n, Target: q.Target, AttemptsUsed: q.AttemptsUsed}
	if n == q.Target {
		q.state = StateWon
		out.State = q.state
		return out, nil
	}

	out.Direction = DirectionLower
	if n < q.Target {
		out.Direction = DirectionHigher
	}
	switch diff := abs(q.Target - n); {
	case diff <= 5:
		out.Label = QuickLabelVeryClose
	case diff <= 15:
		out.Label = QuickLabelWarm
	}

	if q.AttemptsUsed >= QuickMaxAttempts {
		q.state = StateLost
	}
	out.State = q.state
	return out, nil
}
