package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	config.ConfigureLogging(cfg, os.Stderr)

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("numguess"),
		kong.Description("Number guessing game with a temperature converter and calculator."),
		kong.UsageOnError(),
	)

	g := NewGlobal(cfg, os.Stdin, os.Stdout)
	runErr := ctx.Run(g)
	if err := g.Flush(); err != nil {
		log.Error().Err(err).Msg("metrics not written")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Str("command", ctx.Command()).Msg("command failed")
	}
}
