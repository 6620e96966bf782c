package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/gol-board/host"
	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		log.Printf("using default configuration: %v", err)
		config = utils.DefaultConfig()
	}
	if err = utils.ApplyEnv(&config); err != nil {
		log.Fatalf("%+v", err)
	}
	if err = config.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	if err = host.Greet("game of life", func(message string) { fmt.Println(message) }); err != nil {
		log.Printf("greeting failed: %v", err)
	}

	g, err := initializeGame(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	fmt.Println(displayGameInfo(g))
	fmt.Println("Press Ctrl+C to exit gracefully")

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, g, &model.TerminalRenderer{Out: os.Stdout}); err != nil {
		log.Fatalf("%+v", err)
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.stats.TotalGenerations, g.stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
