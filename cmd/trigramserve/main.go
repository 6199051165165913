/*
Package main implements the trigram similarity server and CLI [DBG] application.

trigramserve exposes pg_trgm-compatible trigram similarity scoring, either
as a MessagePack IPC server for integration with host applications, or as a
CLI for testing and debugging.

# Usage

Start the server with default settings:

	trigramserve

Run in CLI mode, ranking queries against a candidate file:

	trigramserve -c -cand words.txt -limit 10 -min 0.3

Score tab-separated pairs interactively:

	trigramserve -c

# Configuration

Runtime configuration is managed through a TOML file:

	[engine]
	parallel_threshold = 250
	workers = 0

	[server]
	max_batch = 100000
	max_candidates = 100000

	[cli]
	default_limit = 10
	default_threshold = 0.1

The config file is automatically created with defaults if it doesn't exist.
The engine settings only pick the execution strategy; scores are identical
whichever path runs.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. See the server
package docs for the message catalogue. Example request and response:

	{"id": "req1", "op": "sim", "a": "hello", "b": "hallo"}
	{"id": "req1", "score": 0.33, "t": 41}

Logs go to stderr so the stdout stream stays pure msgpack.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/EnaiaInc/trigram/internal/cli"
	"github.com/EnaiaInc/trigram/pkg/config"
	"github.com/EnaiaInc/trigram/pkg/server"
	"github.com/EnaiaInc/trigram/pkg/trigram"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "1.0.0"
	AppName = "trigramserve"
	gh      = "https://github.com/EnaiaInc/trigram"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config and logging, then hands off to the server or
// the CLI loop. No scoring logic lives here.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Path to a config.toml (default: ~/.config/trigramserve/config.toml)")
	candPath := flag.String("cand", "", "Candidate file for CLI ranking mode (one string per line)")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of ranked matches to print in CLI mode")
	minScore := flag.Float64("min", defaults.CLI.DefaultThreshold, "Minimum score for CLI ranking mode")
	threshold := flag.Int("threshold", 0, "Parallel crossover threshold override (0 = from config)")
	workers := flag.Int("workers", 0, "Worker count override (0 = from config)")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ trigramserve ] pg_trgm-compatible similarity scoring")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	// stdout carries the msgpack stream; all logging goes to stderr
	log.SetOutput(os.Stderr)

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	engineThreshold := appConfig.Engine.ParallelThreshold
	if *threshold > 0 {
		engineThreshold = *threshold
	}
	engineWorkers := appConfig.Engine.Workers
	if *workers > 0 {
		engineWorkers = *workers
	}
	scorer := trigram.NewScorer(engineThreshold, engineWorkers)
	log.Debugf("Init scorer: threshold=[%d], workers=[%d]", engineThreshold, engineWorkers)

	if *cliMode {
		log.SetReportTimestamp(false)
		var candidates []string
		if *candPath != "" {
			candidates, err = cli.LoadCandidates(*candPath)
			if err != nil {
				log.Fatalf("Failed to load candidates from %s: %v", *candPath, err)
			}
			log.Debugf("Loaded %d candidates from %s", len(candidates), *candPath)
		}
		inputHandler := cli.NewInputHandler(scorer, candidates, *limit, float32(*minScore))
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(scorer, appConfig)

	showStartupInfo()

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo() {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
