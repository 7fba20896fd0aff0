package main

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/config"
	"github.com/robalobadob/numguess/internal/console"
	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/metrics"
	"github.com/robalobadob/numguess/internal/session"
	"github.com/robalobadob/numguess/internal/store"
	"github.com/robalobadob/numguess/internal/tempconv"
)

// Global is the state shared by every subcommand.
type Global struct {
	Config config.Config
	In     io.Reader
	Out    io.Writer

	recorder metrics.Recorder
	prom     *metrics.PrometheusRecorder
}

// NewGlobal wires the metrics recorder for cfg. Metrics are only collected
// when METRICS_TEXTFILE is set.
func NewGlobal(cfg config.Config, in io.Reader, out io.Writer) *Global {
	g := &Global{Config: cfg, In: in, Out: out, recorder: metrics.NoopRecorder{}}
	if cfg.MetricsTextfile != "" {
		g.prom = metrics.NewPrometheusRecorder(nil)
		g.recorder = g.prom
	}
	return g
}

// Flush writes collected metrics to the configured textfile, if any.
func (g *Global) Flush() error {
	if g.prom == nil {
		return nil
	}
	return g.prom.WriteTextfile(g.Config.MetricsTextfile)
}

func (g *Global) console(opts ...console.Option) *console.Console {
	opts = append(opts, console.WithRecorder(g.recorder))
	return console.New(g.In, g.Out, opts...)
}

// CLI is the numguess command tree.
type CLI struct {
	Play PlayCmd `cmd:"" default:"1" help:"Play the number guessing game (default)"`
	Temp TempCmd `cmd:"" help:"Convert temperatures between Celsius, Fahrenheit and Kelvin"`
	Calc CalcCmd `cmd:"" help:"Run the four-operation calculator"`
}

// PlayCmd runs the guessing game against the configured high score store.
type PlayCmd struct{}

func (PlayCmd) Run(g *Global) error {
	ctx := context.Background()
	cfg := g.Config

	st, closer, err := store.Open(cfg.HighScoreBackend, cfg.HighScoreFile, cfg.HighScoreDB)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Warn().Err(err).Msg("close high score store")
		}
	}()

	seed := cfg.RandomSeed
	if seed == 0 {
		if seed, err = game.NewSeed(); err != nil {
			return err
		}
	}
	log.Debug().Int64("seed", seed).Str("backend", cfg.HighScoreBackend).Msg("starting game")

	sess := session.New(ctx, st, session.WithRecorder(g.recorder))
	return g.console(console.WithSource(game.NewSource(seed))).RunGuessing(ctx, sess)
}

// TempCmd converts once when given arguments and runs the interactive
// converter otherwise.
type TempCmd struct {
	Args     []string `arg:"" optional:"" help:"<value> <from> <to>, e.g. 100 C F"`
	Examples bool     `help:"Print example conversions and exit"`
}

func (t *TempCmd) Run(g *Global) error {
	conv := tempconv.NewConverter()
	c := g.console()
	switch {
	case t.Examples:
		c.ConversionExamples(conv)
		return nil
	case len(t.Args) > 0:
		return c.ConvertOnce(conv, t.Args)
	default:
		return c.RunTemperature(conv)
	}
}

// CalcCmd evaluates one a-op-b expression read from the terminal.
type CalcCmd struct{}

func (CalcCmd) Run(g *Global) error {
	return g.console().RunCalculator()
}
