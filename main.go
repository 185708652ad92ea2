package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"isolation/config"
	"isolation/experiments"
	"isolation/game"
	"isolation/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "experiment", "experiment: play match-ups; throughput: measure search rate per depth; serve: run the agent HTTP server")
	name := flag.String("name", "matchups", "Experiment name, used for the output folder")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.Debug)
	log.Info().Msgf("loaded config: %+v", *cfg)

	switch *mode {
	case "experiment":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if _, _, err := experiments.Run(ctx, *name, cfg); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	case "throughput":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if _, _, err := experiments.RunThroughput(ctx, *name, cfg); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
	case "serve":
		evaluate, err := cfg.Evaluate()
		if err != nil {
			log.Fatal().Err(err).Msg("bad evaluator")
		}
		factory := func(id game.Player) player.Player {
			return player.NewCustomPlayer(id,
				player.WithDepthLimit(cfg.DepthLimit),
				player.WithOpeningPlies(cfg.OpeningPlies),
				player.WithEvaluationFn(evaluate),
			)
		}
		if err := player.NewServer(factory, cfg.TimeLimit).ListenAndServe(cfg.Listen); err != nil {
			log.Fatal().Err(err).Msg("agent server stopped")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Debug().Msg("debug logging is on")
}
