// internal/session/session.go
//
// Guessing game session: the counters that outlive a single round.
// Responsibilities:
//   - Seed the high score from a store once at construction.
//   - Apply finished rounds (score, high score, games played).
//   - Reset progress and expose a read-only stats view.
//
// Notes:
//   - A session is owned by one control loop; it is not safe for concurrent use.
//   - Store failures never surface to the caller: loads fall back to 0 and
//     failed saves are logged while the in-memory high score still advances.

package session

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/metrics"
	"github.com/robalobadob/numguess/internal/store"
)

// Session holds cumulative state for the full game.
type Session struct {
	store       store.HighScoreStore
	recorder    metrics.Recorder
	score       int
	highScore   int
	gamesPlayed int
}

// Option customises a Session.
type Option func(*Session)

// WithRecorder attaches a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Session) {
		if r != nil {
			s.recorder = r
		}
	}
}

// New builds a session, loading the high score from st.
func New(ctx context.Context, st store.HighScoreStore, opts ...Option) *Session {
	s := &Session{store: st, recorder: metrics.NoopRecorder{}}
	for _, o := range opts {
		o(s)
	}

	v, ok, err := st.Load(ctx)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("high score unreadable, starting from 0")
	case ok && v > 0:
		s.highScore = v
	}
	s.recorder.SetHighScore(s.highScore)
	return s
}

// Score is the cumulative score since start or the last reset.
func (s *Session) Score() int { return s.score }

// HighScore is the best cumulative score ever recorded.
func (s *Session) HighScore() int { return s.highScore }

// GamesPlayed counts completed rounds since start or the last reset.
func (s *Session) GamesPlayed() int { return s.gamesPlayed }

// Record applies a terminal round outcome. Non-terminal outcomes are ignored.
// It reports whether the round set a new high score.
func (s *Session) Record(ctx context.Context, out game.Outcome) bool {
	if !out.State.Terminal() {
		return false
	}
	s.gamesPlayed++
	s.recorder.IncRound(out.Difficulty.Name, string(out.State))
	s.recorder.ObserveAttempts(out.Difficulty.Name, out.AttemptsUsed)

	logEvt := log.Info().
		Str("round", out.RoundID).
		Str("difficulty", out.Difficulty.Name).
		Str("state", string(out.State)).
		Int("attempts", out.AttemptsUsed)

	if out.State != game.StateWon {
		logEvt.Int("gamesPlayed", s.gamesPlayed).Msg("round finished")
		return false
	}

	s.score += out.Score
	logEvt.Int("roundScore", out.Score).Int("score", s.score).Msg("round finished")
	if s.score <= s.highScore {
		return false
	}

	s.highScore = s.score
	s.recorder.SetHighScore(s.highScore)
	if err := s.store.Save(ctx, s.highScore); err != nil {
		log.Error().Err(err).Int("highScore", s.highScore).Msg("persist high score")
	} else {
		log.Info().Int("highScore", s.highScore).Msg("new high score saved")
	}
	return true
}

// Reset zeroes score and games played; the high score is kept.
func (s *Session) Reset() {
	s.score = 0
	s.gamesPlayed = 0
	log.Info().Msg("progress reset")
}

// Stats is a snapshot of the session counters.
type Stats struct {
	HighScore   int
	Score       int
	GamesPlayed int
	// Accuracy reproduces the legacy statistics formula. It depends only on
	// GamesPlayed ((n-1)/n*100) since wins are never tracked; do not read it
	// as a win rate. HasAccuracy is false when no games were played.
	Accuracy    float64
	HasAccuracy bool
}

// Stats returns the current counters.
func (s *Session) Stats() Stats {
	st := Stats{HighScore: s.highScore, Score: s.score, GamesPlayed: s.gamesPlayed}
	if s.gamesPlayed > 0 {
		st.Accuracy = legacyAccuracy(s.gamesPlayed)
		st.HasAccuracy = true
	}
	return st
}

// legacyAccuracy counts game indexes equal to zero among 0..n-1 and
// subtracts that from n. The count is always 1.
func legacyAccuracy(n int) float64 {
	zeros := 0
	for g := 0; g < n; g++ {
		if g == 0 {
			zeros++
		}
	}
	return float64(n-zeros) / float64(n) * 100
}
