// Borderline is a turn-based narrative journey along the US-Mexico
// border, playable as a migrant or a border patrol agent.
// Usage: borderline [--version] [--plain] [--script <file>] [--config <file>]
// [--content <dir>] [--role migrant|patrol] [--name <name>] [--seed <n>]
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nathoo/borderline/cli"
	"github.com/nathoo/borderline/config"
	"github.com/nathoo/borderline/content"
	"github.com/nathoo/borderline/engine"
	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/events"
	"github.com/nathoo/borderline/loader"
	"github.com/nathoo/borderline/matcher"
	"github.com/nathoo/borderline/tui"
	"github.com/nathoo/borderline/types"
)

func main() {
	plain := false
	role := "migrant"
	name := ""
	var scriptFile, configFile, contentDir string
	var seed int64

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("borderline %s\n", config.Version)
			return
		case "--plain":
			plain = true
		case "--script":
			scriptFile = nextArg(args, &i, "--script")
		case "--config":
			configFile = nextArg(args, &i, "--config")
		case "--content":
			contentDir = nextArg(args, &i, "--content")
		case "--role":
			role = nextArg(args, &i, "--role")
		case "--name":
			name = nextArg(args, &i, "--name")
		case "--seed":
			n, err := strconv.ParseInt(nextArg(args, &i, "--seed"), 10, 64)
			if err != nil {
				fatalf("--seed requires an integer: %v", err)
			}
			seed = n
		default:
			fatalf("Unknown flag %s\nUsage: borderline [--version] [--plain] [--script <file>] [--config <file>] [--content <dir>] [--role migrant|patrol] [--name <name>] [--seed <n>]", args[i])
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fatalf("Error loading config: %v", err)
	}

	var kind character.Kind
	switch role {
	case "migrant":
		kind = character.KindMigrant
	case "patrol":
		kind = character.KindAgent
	default:
		fatalf("Unknown role %q (want migrant or patrol)", role)
	}

	gameContent, err := loadContent(cfg, contentDir)
	if err != nil {
		fatalf("Error loading content: %v", err)
	}

	opts := engine.Options{
		Config:     cfg,
		Content:    gameContent,
		Matcher:    buildMatcher(cfg, name),
		PlayerName: name,
		PlayerKind: kind,
		Seed:       seed,
	}

	// Script mode: commands come from a file, echoed for readability.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fatalf("Error opening script: %v", err)
		}
		defer f.Close()

		c := cli.New()
		c.In = f
		c.EchoInput = true
		runCLI(c, opts)
		return
	}

	// Plain CLI when asked for, or when stdout is piped.
	if plain || !isTerminal() {
		runCLI(cli.New(), opts)
		return
	}

	s := tui.NewSession()
	opts.Decider = s
	eng, err := engine.New(opts)
	if err != nil {
		fatalf("Error: %v", err)
	}
	s.Engine = eng
	if err := s.Run(); err != nil {
		fatalf("Error: %v", err)
	}
}

func runCLI(c *cli.CLI, opts engine.Options) {
	opts.Decider = c
	eng, err := engine.New(opts)
	if err != nil {
		fatalf("Error: %v", err)
	}
	c.Engine = eng
	c.Run()
}

func loadContent(cfg config.Config, contentDir string) (*types.Content, error) {
	dir := contentDir
	if dir == "" {
		dir = cfg.ContentDir
	}
	if dir != "" {
		return loader.Load(dir)
	}
	return content.Default()
}

// buildMatcher wires the embeddings endpoint when enabled. A warm-up
// failure degrades to plain command parsing rather than aborting.
func buildMatcher(cfg config.Config, playerName string) *matcher.Client {
	if !cfg.Matcher.Enabled {
		return nil
	}
	m := matcher.New(cfg.Matcher.URL, cfg.Matcher.Model)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	characters := []string{"Manuel", "Agent Hernandez", "Elena"}
	if playerName != "" {
		characters = append(characters, playerName)
	}
	if err := m.Warm(ctx, characters, events.ItemPool); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: embeddings unavailable (%v); falling back to basic command parsing.\n", err)
		return nil
	}
	return m
}

func nextArg(args []string, i *int, flag string) string {
	if *i+1 >= len(args) {
		fatalf("%s requires a value", flag)
	}
	*i++
	return args[*i]
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
