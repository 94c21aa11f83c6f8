package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gomoku/agent"
	"gomoku/bootstrap"
	"gomoku/engine"
	"gomoku/experiments"
	"gomoku/game"
	"gomoku/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup configuration")
	}

	if err := runMatches(cfg); err != nil {
		log.Fatal().Err(err).Msg("match run failed")
	}
}

// runMatches plays the MCTS agent against the random baseline and records
// the outcomes.
func runMatches(cfg *bootstrap.Config) error {
	env, err := game.NewGomoku(cfg.BoardSize, cfg.WinLength, game.WithSeed(cfg.Seed))
	if err != nil {
		return fmt.Errorf("creating environment: %w", err)
	}

	search, err := searcher.NewMCTS(
		searcher.WithExploration(cfg.Exploration),
		searcher.WithEpisodes(cfg.Episodes),
		searcher.WithMoveLimit(cfg.MoveLimit),
		searcher.WithSeed(cfg.Seed),
		searcher.WithMetrics(),
	)
	if err != nil {
		return fmt.Errorf("creating searcher: %w", err)
	}

	mcts := agent.NewMCTSAgent(env, search)
	random := agent.NewRandomAgent(cfg.Seed + 1)
	e := engine.LocalEngine(env, mcts, random)

	writer, err := experiments.NewWriter(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	var gameRecords []experiments.GameRecord
	var moveRecords []experiments.MoveRecord
	wins := map[float64]int{}

	for i := 0; i < cfg.Games; i++ {
		// Alternate the starting player for fairness
		starting := game.PlayerA
		if i%2 == 1 {
			starting = game.PlayerB
		}

		start := time.Now()
		winner, moves, records, err := e.Run(starting)
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		wins[winner]++

		gameRecords = append(gameRecords, experiments.GameRecord{
			ID:             i + 1,
			StartingPlayer: int(starting),
			Winner:         winner,
			Moves:          moves,
			Duration:       time.Since(start),
		})
		for _, record := range records {
			record.Game = i + 1
			moveRecords = append(moveRecords, record)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().
		Int("games", cfg.Games).
		Int("mcts", wins[float64(game.PlayerA)]).
		Int("random", wins[float64(game.PlayerB)]).
		Int("ties", wins[0]).
		Msg("finished matches")
	return nil
}
