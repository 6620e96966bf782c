package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/utils"
)

// frame is one rendered snapshot handed from the simulation to the terminal
type frame struct {
	status string
	board  string
}

// game bundles everything the simulation loop owns
type game struct {
	config  utils.Config
	board   *model.Board
	history *model.History
	stats   *utils.Stats
	pool    *model.BufferPool
	mode    model.UpdateMode
	seed    model.Seed
	rng     *rand.Rand
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, error) {
	mode, err := model.ParseUpdateMode(config.UpdateMode)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] invalid update mode")
	}
	seed, err := model.ParseSeed(config.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] invalid seed")
	}

	g := &game{
		config:  config,
		history: model.NewHistory(0),
		stats:   utils.NewStats(),
		mode:    mode,
		seed:    seed,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if config.UseMemoryPool {
		g.pool = model.NewBufferPool()
	}

	if g.board, err = g.newBoard(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *game) newBoard() (*model.Board, error) {
	return model.SeedBoard(
		model.Dimensions{Width: g.config.Width, Height: g.config.Height},
		g.seed,
		g.config.RandomDensity,
		g.rng,
		g.config.Debug,
		model.WithUpdateMode(g.mode),
		model.WithBufferPool(g.pool),
	)
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) string {
	return fmt.Sprintf("Mode: %s | Seed: %s | Memory Pool: %v\nGrid: %dx%d | Initial living cells: %d",
		g.mode, g.seed, g.config.UseMemoryPool,
		g.board.Width(), g.board.Height(), g.board.CountLivingCells())
}

// gameStatus formats the status line shown above each frame
func gameStatus(g *game, generation int, stagnant bool) string {
	livingCells := g.board.CountLivingCells()
	density := float64(livingCells) / float64(g.board.Size()) * 100

	status := "Active"
	if stagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n"+
		"Performance: %.1f gen/sec | Avg Pop: %.1f | Births: %d | Deaths: %d | Runtime: %.1fs",
		generation, livingCells, density, status,
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation,
		g.stats.TotalBirths, g.stats.TotalDeaths, g.stats.Runtime().Seconds())
}

// checkStopConditions determines if the current board has run its course
func checkStopConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// simulate steps the board and publishes a frame per generation until the
// generation limit is hit, the board stops evolving, or ctx is cancelled
func simulate(ctx context.Context, g *game, frames chan<- frame) error {
	defer close(frames)

	var (
		generation    = 0
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for {
		hash := g.board.Hash()
		stagnant := g.history.IsStagnant(hash)
		g.history.Record(hash)
		if stagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		f := frame{
			status: gameStatus(g, generation, stagnant),
			board:  model.FormatRows(g.board.Render(), g.board.Width()),
		}
		select {
		case frames <- f:
		case <-ctx.Done():
			return nil
		}

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			log.Printf("reached maximum generations limit (%d)", g.config.MaxGenerations)
			return nil
		}

		if stop, reason := checkStopConditions(g.board.CountLivingCells(), stagnantCount, g.config); stop {
			if !g.config.AutoRestart {
				log.Printf("stopping at generation %d due to %s", generation, reason)
				return nil
			}

			log.Printf("restarting at generation %d due to %s", generation, reason)
			board, err := g.newBoard()
			if err != nil {
				return err
			}
			g.board = board
			g.history.Reset()
			stagnantCount = 0
		}

		frameStart := time.Now()
		report, err := g.board.Step()
		if err != nil {
			return errors.Wrapf(err, "[simulate] generation %d failed", generation+1)
		}
		generation++
		g.stats.Update(generation, report.Population, report.Births, report.Deaths, time.Since(lastFrameTime))
		lastFrameTime = frameStart
		if g.board.Debug() {
			log.Printf("generation %d: births=%d deaths=%d population=%d",
				generation, report.Births, report.Deaths, report.Population)
		}

		select {
		case <-time.After(g.config.FrameRate):
		case <-ctx.Done():
			return nil
		}
	}
}

// present writes every frame to the terminal
func present(renderer *model.TerminalRenderer, frames <-chan frame) error {
	for f := range frames {
		if err := renderer.Clear(); err != nil {
			return errors.Wrap(err, "[present] failed to clear terminal")
		}
		if err := renderer.DisplayFrame(f.status + "\n\n" + f.board); err != nil {
			return errors.Wrap(err, "[present] failed to write frame")
		}
	}
	return nil
}

// run drives the simulation and the terminal output side by side
func run(ctx context.Context, g *game, renderer *model.TerminalRenderer) error {
	eg, ctx := errgroup.WithContext(ctx)
	frames := make(chan frame, 1)

	eg.Go(func() error {
		return simulate(ctx, g, frames)
	})
	eg.Go(func() error {
		return present(renderer, frames)
	})

	return eg.Wait()
}
