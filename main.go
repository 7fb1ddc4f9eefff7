package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/pkg/profile"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
	"github.com/sheikhrachel/torus-gol/window"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(config); err != nil {
		log.Fatal(err)
	}
}

func run(config utils.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	switch config.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	g, err := newGame(config)
	if err != nil {
		return err
	}

	switch config.Renderer {
	case utils.RendererScreen:
		return runScreen(g)
	case utils.RendererWindow:
		return window.Run(g.grid, config)
	default:
		return runTerminal(g)
	}
}

// runTerminal prints every generation to stdout until interrupted or the
// generation limit is reached.
func runTerminal(g *game) error {
	renderer := model.NewTerminalRenderer(os.Stdout)
	fmt.Println(g.info())
	fmt.Println("Press Ctrl+C to exit gracefully")

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			printFinalStats(g)
			return nil
		default:
		}

		livingCells, status := g.update()
		if err := renderer.Clear(); err != nil {
			return err
		}
		renderer.Printf("%s\n\n", status)
		if err := renderer.Display(g.grid); err != nil {
			return err
		}

		if g.done() {
			fmt.Printf("\nReached maximum generations limit (%d)\n", g.config.MaxGenerations)
			printFinalStats(g)
			return nil
		}

		g.maintain(livingCells)
		if err := g.step(); err != nil {
			return err
		}

		time.Sleep(g.config.FrameRate)
	}
}

// runScreen drives an interactive full-screen terminal.
func runScreen(g *game) error {
	renderer, err := model.NewScreenRenderer(nil)
	if err != nil {
		return err
	}
	defer renderer.Close()

	// log output would tear the screen
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	frameRate := g.config.FrameRate
	if frameRate <= 0 {
		frameRate = time.Millisecond
	}
	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	paused := false
	_, status := g.update()
	renderer.Display(g.grid, status)

	for {
		select {
		case <-sigChan:
			return nil
		case ev, ok := <-renderer.Events():
			if !ok {
				return nil
			}
			switch ev.Command {
			case model.CommandQuit:
				return nil
			case model.CommandPause:
				paused = !paused
			case model.CommandStep:
				if err := g.step(); err != nil {
					return errors.Wrap(err, "[runScreen] step failed")
				}
			case model.CommandClear:
				g.grid.Clear()
			case model.CommandReset:
				g.grid.Reset(g.config.RandomDensity)
			case model.CommandToggle:
				g.grid.Toggle(ev.Row, ev.Col)
			}
		case <-ticker.C:
			if paused || g.done() {
				continue
			}
			livingCells, _ := g.update()
			g.maintain(livingCells)
			if err := g.step(); err != nil {
				return errors.Wrap(err, "[runScreen] step failed")
			}
		}

		status = fmt.Sprintf("Gen: %d | Living: %d | %s | space pause  n step  c clear  r reset  click toggle  q quit",
			g.generation, g.grid.CountLivingCells(), pausedLabel(paused))
		renderer.Display(g.grid, status)
	}
}

func pausedLabel(paused bool) string {
	if paused {
		return "Paused"
	}
	return "Running"
}

func printFinalStats(g *game) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.generation, g.stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
