package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// targetSource pins the drawn value to target for a range starting at min.
type targetSource struct{ offset int }

func (s targetSource) Intn(n int) int { return s.offset % n }

func roundWithTarget(t *testing.T, level, target int) *Round {
	t.Helper()
	d, err := DifficultyFor(level)
	require.NoError(t, err)
	r := NewRound(d, targetSource{offset: target - d.Min})
	require.Equal(t, target, r.Target)
	return r
}

func TestDifficultyTable(t *testing.T) {
	cases := []struct {
		choice              int
		min, max, attempts int
	}{
		{1, 1, 50, 10},
		{2, 1, 100, 7},
		{3, 1, 200, 5},
		{4, 1, 500, 4},
	}
	for _, tc := range cases {
		d, err := DifficultyFor(tc.choice)
		require.NoError(t, err)
		assert.Equal(t, tc.min, d.Min)
		assert.Equal(t, tc.max, d.Max)
		assert.Equal(t, tc.attempts, d.MaxAttempts)
	}
}

func TestParseDifficultyRejectsBadInput(t *testing.T) {
	for _, in := range []string{"0", "5", "-1"} {
		_, err := ParseDifficulty(in)
		var re *RangeError
		require.ErrorAs(t, err, &re, in)
	}
	_, err := ParseDifficulty("easy")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.True(t, IsInputError(err))

	d, err := ParseDifficulty(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, "Hard", d.Name)
}

func TestScoreFormula(t *testing.T) {
	easy, _ := DifficultyFor(1)
	medium, _ := DifficultyFor(2)
	expert, _ := DifficultyFor(4)

	assert.Equal(t, 295, Score(easy, 3))
	assert.Equal(t, 310, Score(medium, 2))
	// 100 + 0 + 50 + 10*50
	assert.Equal(t, 650, Score(expert, 4))
}

func TestAttemptsNeverExceedMax(t *testing.T) {
	for _, d := range Difficulties() {
		t.Run(d.Name, func(t *testing.T) {
			r := NewRound(d, NewSource(7))
			wrong := d.Min
			if wrong == r.Target {
				wrong = d.Max
			}
			for i := 0; i < d.MaxAttempts+3; i++ {
				_, err := r.Apply(wrong)
				if r.State().Terminal() && i >= d.MaxAttempts {
					require.ErrorIs(t, err, ErrRoundOver)
				}
				assert.LessOrEqual(t, r.AttemptsUsed, d.MaxAttempts)
			}
			assert.Equal(t, StateLost, r.State())
			assert.Equal(t, d.MaxAttempts, r.AttemptsUsed)
		})
	}
}

func TestInvalidGuessesDoNotConsumeAttempts(t *testing.T) {
	r := roundWithTarget(t, 2, 42)

	_, err := r.Guess("abc")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)

	_, err = r.Guess("101")
	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 1, re.Min)
	assert.Equal(t, 100, re.Max)

	_, err = r.Guess("0")
	require.ErrorAs(t, err, &re)

	assert.Equal(t, 0, r.AttemptsUsed)
	assert.Equal(t, StateAwaitingGuess, r.State())
}

func TestEndToEndMediumTarget42(t *testing.T) {
	r := roundWithTarget(t, 2, 42)

	out, err := r.Guess("50")
	require.NoError(t, err)
	require.NotNil(t, out.Feedback)
	assert.Equal(t, StateAwaitingGuess, out.State)
	assert.Equal(t, 8, out.Feedback.Difference)
	assert.Equal(t, DirectionLower, out.Feedback.Direction)
	assert.Equal(t, ProximityVeryClose, out.Feedback.Proximity)
	assert.Equal(t, TemperatureHot, out.Feedback.Temperature)
	assert.Equal(t, ParityHidden, out.Feedback.Parity)

	out, err = r.Guess("42")
	require.NoError(t, err)
	assert.Equal(t, StateWon, out.State)
	assert.Equal(t, 2, out.AttemptsUsed)
	assert.Equal(t, 310, out.Score)
	assert.Nil(t, out.Feedback)

	_, err = r.Guess("42")
	assert.True(t, errors.Is(err, ErrRoundOver))
}

func TestLostRoundHasNoScoreOrFeedback(t *testing.T) {
	r := roundWithTarget(t, 4, 250)
	var out Outcome
	var err error
	for i := 0; i < 4; i++ {
		out, err = r.Apply(1)
		require.NoError(t, err)
	}
	assert.Equal(t, StateLost, out.State)
	assert.Zero(t, out.Score)
	assert.Nil(t, out.Feedback)
	assert.Zero(t, out.AttemptsLeft)
}

func TestFeedbackBuckets(t *testing.T) {
	cases := []struct {
		diff int
		prox Proximity
		temp Temperature
	}{
		{1, ProximityVeryClose, TemperatureBurningHot},
		{5, ProximityVeryClose, TemperatureBurningHot},
		{6, ProximityVeryClose, TemperatureHot},
		{10, ProximityVeryClose, TemperatureHot},
		{11, ProximityClose, TemperatureHot},
		{15, ProximityClose, TemperatureHot},
		{16, ProximityClose, TemperatureWarm},
		{20, ProximityClose, TemperatureWarm},
		{21, ProximityFar, TemperatureWarm},
		{30, ProximityFar, TemperatureWarm},
		{31, ProximityFar, TemperatureCold},
		{50, ProximityFar, TemperatureCold},
		{51, ProximityVeryFar, TemperatureFreezing},
	}
	for _, tc := range cases {
		fb := hint(100, 100+tc.diff, 5)
		assert.Equal(t, tc.prox, fb.Proximity, "diff %d", tc.diff)
		assert.Equal(t, tc.temp, fb.Temperature, "diff %d", tc.diff)
		assert.Equal(t, DirectionLower, fb.Direction)
	}
	assert.Equal(t, DirectionHigher, hint(100, 90, 5).Direction)
}

func TestParityHintUnlocksWithTwoAttemptsLeft(t *testing.T) {
	r := roundWithTarget(t, 3, 120) // 5 attempts

	for i, wantParity := range []Parity{ParityHidden, ParityHidden, ParityHidden, ParityEven} {
		out, err := r.Apply(1)
		require.NoError(t, err, "guess %d", i+1)
		require.NotNil(t, out.Feedback)
		assert.Equal(t, wantParity, out.Feedback.Parity, "guess %d", i+1)
	}

	odd := hint(7, 1, 1)
	assert.Equal(t, ParityOdd, odd.Parity)
}

func TestRoundIDsAreUnique(t *testing.T) {
	d, _ := DifficultyFor(1)
	a := NewRound(d, NewSource(1))
	b := NewRound(d, NewSource(1))
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Target, b.Target)
}

func TestTargetWithinRange(t *testing.T) {
	src := NewSource(99)
	for _, d := range Difficulties() {
		for i := 0; i < 200; i++ {
			r := NewRound(d, src)
			require.GreaterOrEqual(t, r.Target, d.Min)
			require.LessOrEqual(t, r.Target, d.Max)
		}
	}
}

func TestNewRandomSourceDraws(t *testing.T) {
	a, b := NewRandomSource(), NewRandomSource()
	var sa, sb []int
	for i := 0; i < 4; i++ {
		v := a.Intn(1 << 30)
		require.GreaterOrEqual(t, v, 0)
		sa = append(sa, v)
		sb = append(sb, b.Intn(1<<30))
	}
	assert.NotEqual(t, sa, sb)
}
