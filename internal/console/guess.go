package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/session"
)

// menu choices for the full game.
const (
	menuPlay = iota + 1
	menuStats
	menuHelp
	menuReset
	menuExit
)

// RunGuessing asks for a mode and runs the full game or a quick play round.
// '2' selects quick play; anything else, including end of input, the full game.
func (c *Console) RunGuessing(ctx context.Context, sess *session.Session) error {
	c.println("Choose game mode:")
	c.println("1. Full Game (with scores, levels, and features)")
	c.println("2. Quick Play (simple version)")
	choice, err := c.readLine("Enter choice (1 or 2): ")
	if err != nil && !isEOF(err) {
		return err
	}
	if strings.TrimSpace(choice) == "2" {
		return c.QuickPlay()
	}
	return c.FullGame(ctx, sess)
}

// FullGame runs the main menu until the player exits or input ends.
func (c *Console) FullGame(ctx context.Context, sess *session.Session) error {
	for {
		c.banner(sess)
		c.println("MAIN MENU")
		c.println(rule("-", 30))
		c.println("1. Play Game")
		c.println("2. View Statistics")
		c.println("3. How to Play")
		c.println("4. Reset Progress")
		c.println("5. Exit")
		c.println()
		c.printf("Current Score: %d\n", sess.Score())

		line, err := c.readLine("Enter your choice (1-5): ")
		if err != nil {
			return c.farewellOn(err)
		}
		choice, err := parseChoice(line, menuPlay, menuExit)
		if err != nil {
			c.noteInvalid(err)
			c.println("Invalid choice! Please enter 1-5")
			continue
		}

		switch choice {
		case menuPlay:
			if err := c.PlayRound(ctx, sess); err != nil {
				return c.farewellOn(err)
			}
			c.pause()
		case menuStats:
			c.showStats(sess)
			c.pause()
		case menuHelp:
			c.showHelp(sess)
			c.pause()
		case menuReset:
			sess.Reset()
			c.println("Game progress reset!")
		case menuExit:
			c.println("\nThanks for playing!")
			return nil
		}
	}
}

// farewellOn ends the menu loop: end of input is a graceful exit.
func (c *Console) farewellOn(err error) error {
	if isEOF(err) {
		c.println("\n\nThanks for playing!")
		return nil
	}
	return err
}

// ChooseDifficulty re-prompts until a level 1–4 is entered.
func (c *Console) ChooseDifficulty() (game.Difficulty, error) {
	c.println("Choose Difficulty Level:")
	for _, d := range game.Difficulties() {
		c.printf("%d. %s (%d-%d, %d attempts)\n", d.Level, d.Name, d.Min, d.Max, d.MaxAttempts)
	}
	for {
		line, err := c.readLine("Enter your choice (1-4): ")
		if err != nil {
			return game.Difficulty{}, err
		}
		d, err := game.ParseDifficulty(line)
		if err == nil {
			return d, nil
		}
		c.noteInvalid(err)
		var re *game.RangeError
		if errors.As(err, &re) {
			c.println("Please enter a number between 1 and 4")
		} else {
			c.println("Please enter a valid number!")
		}
	}
}

// PlayRound selects a difficulty, plays one round and records it on sess.
// A round abandoned by end of input is not recorded.
func (c *Console) PlayRound(ctx context.Context, sess *session.Session) error {
	c.banner(sess)
	d, err := c.ChooseDifficulty()
	if err != nil {
		return err
	}

	r := game.NewRound(d, c.src)
	log.Debug().Str("round", r.ID).Str("difficulty", d.Name).Msg("round started")

	c.printf("\nI'm thinking of a number between %d and %d\n", d.Min, d.Max)
	c.printf("You have %d attempts to guess it!\n", d.MaxAttempts)
	c.println(rule("-", 50))

	for !r.State().Terminal() {
		c.printf("\nAttempts left: %d\n", r.AttemptsLeft())
		line, err := c.readLine(fmt.Sprintf("Enter your guess (%d-%d): ", d.Min, d.Max))
		if err != nil {
			log.Debug().Str("round", r.ID).Msg("round abandoned")
			return err
		}

		out, err := r.Guess(line)
		if err != nil {
			c.noteInvalid(err)
			var re *game.RangeError
			if errors.As(err, &re) {
				c.printf("Please enter a number between %d and %d!\n", re.Min, re.Max)
			} else {
				c.println("Please enter a valid number!")
			}
			continue
		}

		switch out.State {
		case game.StateWon:
			newHigh := sess.Record(ctx, out)
			c.println()
			c.println(rule("*", 40))
			c.println("CONGRATULATIONS! You guessed it!")
			c.printf("The number was %d!\n", out.Target)
			c.printf("You found it in %d attempts!\n", out.AttemptsUsed)
			c.printf("Score earned: %d points!\n", out.Score)
			c.printf("Total score: %d points!\n", sess.Score())
			c.println(rule("*", 40))
			if newHigh {
				c.println("NEW HIGH SCORE!")
			}
		case game.StateLost:
			sess.Record(ctx, out)
			c.println()
			c.println(rule("x", 40))
			c.printf("GAME OVER! You've used all %d attempts!\n", d.MaxAttempts)
			c.printf("The number was %d\n", out.Target)
			c.println(rule("x", 40))
		default:
			c.println("Wrong guess!")
			c.printFeedback(*out.Feedback)
		}
	}
	return nil
}

func (c *Console) printFeedback(fb game.Feedback) {
	c.printf("Hint: You're %s! Try going %s\n", fb.Proximity, strings.ToUpper(string(fb.Direction)))
	if fb.Parity != game.ParityHidden {
		c.printf("Extra Hint: The number is %s\n", strings.ToUpper(string(fb.Parity)))
	}
	switch fb.Temperature {
	case game.TemperatureBurningHot:
		c.println("Burning hot!")
	case game.TemperatureHot:
		c.println("Hot!")
	case game.TemperatureWarm:
		c.println("Warm")
	case game.TemperatureCold:
		c.println("Cold")
	default:
		c.println("Freezing!")
	}
}

func (c *Console) banner(sess *session.Session) {
	c.println()
	c.println(rule("=", 44))
	c.println("            NUMBER GUESSING GAME")
	c.println(rule("=", 44))
	c.printf("High Score: %d | Games Played: %d\n\n", sess.HighScore(), sess.GamesPlayed())
}

func (c *Console) showStats(sess *session.Session) {
	c.banner(sess)
	st := sess.Stats()
	c.println("GAME STATISTICS")
	c.println(rule("-", 30))
	c.printf("High Score: %d\n", st.HighScore)
	c.printf("Current Score: %d\n", st.Score)
	c.printf("Games Played: %d\n", st.GamesPlayed)
	if st.HasAccuracy {
		c.printf("Accuracy: %.1f%%\n", st.Accuracy)
	}
}

const howToPlay = `HOW TO PLAY
----------------------------------------
1. Choose a difficulty level
2. Try to guess the secret number
3. You'll get hints after each wrong guess
4. Points are awarded based on:
   - Fewer attempts used = more points
   - Higher difficulty = more points
   - Larger number range = more points
5. Try to beat your high score!

HINT SYSTEM:
   - Distance hints (very far, far, close, very close)
   - Direction hints (higher/lower)
   - Temperature hints (burning hot to freezing)
   - Special hints when few attempts remain`

func (c *Console) showHelp(sess *session.Session) {
	c.banner(sess)
	c.println(howToPlay)
}

// QuickPlay runs one stateless round on 1–100 with 7 attempts.
func (c *Console) QuickPlay() error {
	c.println("QUICK PLAY - Number Guessing Game")
	c.println(rule("-", 40))

	q := game.NewQuickRound(c.src)
	c.printf("I'm thinking of a number between %d and %d!\n", game.QuickMin, game.QuickMax)
	c.printf("You have %d attempts to guess it!\n", game.QuickMaxAttempts)

	for !q.State().Terminal() {
		line, err := c.readLine(fmt.Sprintf("\nAttempt %d/%d: Enter your guess: ", q.AttemptsUsed+1, game.QuickMaxAttempts))
		if err != nil {
			if isEOF(err) {
				c.println()
				return nil
			}
			return err
		}
		out, err := q.Guess(line)
		if err != nil {
			c.noteInvalid(err)
			c.println("Please enter a valid number!")
			continue
		}
		if out.State == game.StateWon {
			c.printf("\nCongratulations! You guessed it in %d attempts!\n", out.AttemptsUsed)
			return nil
		}
		if out.Direction == game.DirectionHigher {
			c.println("Try higher!")
		} else {
			c.println("Try lower!")
		}
		switch out.Label {
		case game.QuickLabelVeryClose:
			c.println("Very close!")
		case game.QuickLabelWarm:
			c.println("Getting warm!")
		}
	}
	c.printf("\nGame Over! The number was %d\n", q.Target)
	return nil
}

// parseChoice parses a menu entry in [lo, hi].
func parseChoice(line string, lo, hi int) (int, error) {
	n, err := game.ParseInt(line)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, &game.RangeError{Value: n, Min: lo, Max: hi}
	}
	return n, nil
}
