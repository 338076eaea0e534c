// Package cli runs the game in a plain terminal: a prompt loop over
// stdin/stdout with nested numbered menus for mid-turn choices. It also
// serves scripted playback, where input comes from a file and comment
// lines are skipped.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nathoo/borderline/engine"
	"github.com/nathoo/borderline/engine/save"
	"github.com/nathoo/borderline/engine/session"
)

// CLI handles terminal interaction with the player. It implements
// session.Decider, so mid-turn choices are answered on the same input
// stream as regular commands.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	EchoInput bool // echo each input line after the prompt (for script playback)

	scanner *bufio.Scanner
}

var _ session.Decider = (*CLI)(nil)

// New creates a CLI on stdin/stdout. The engine is attached afterwards
// because it needs the CLI as its decider.
func New() *CLI {
	home, _ := os.UserHomeDir()
	return &CLI{
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: filepath.Join(home, ".borderline", "saves"),
	}
}

func (c *CLI) scan() *bufio.Scanner {
	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.In)
	}
	return c.scanner
}

// Run plays the game to completion: intro, then the prompt loop, then
// the journey summary and epilogue.
func (c *CLI) Run() {
	c.printLine(c.Engine.Intro())
	sc := c.scan()

	for {
		if out := c.Engine.BeginTurn(); out != "" {
			c.printLine("")
			c.printLine(out)
		}
		if c.Engine.Over() {
			break
		}

		c.print("\n> ")
		if !sc.Scan() {
			// Input ran out mid-journey.
			c.printLine("")
			c.printLine(c.Engine.GracefulExit())
			return
		}
		input := strings.TrimSpace(sc.Text())
		if input == "" {
			c.printLine("Please enter a command. Type 'help' for assistance.")
			continue
		}
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}
		if strings.HasPrefix(input, "/") {
			c.metaCommand(input)
			continue
		}

		result, quit := c.Engine.Command(input)
		if quit {
			c.print("Are you sure you want to quit? (y/n): ")
			if !sc.Scan() || strings.HasPrefix(strings.ToLower(strings.TrimSpace(sc.Text())), "y") {
				c.printLine("")
				c.printLine(c.Engine.GracefulExit())
				return
			}
			continue
		}

		if result != "" {
			c.printLine("")
			c.printLine(result)
		}
		if c.Engine.Over() {
			c.printLine("")
			c.printLine(c.Engine.EndingMessage())
			break
		}
	}

	c.printLine("")
	c.printLine(c.Engine.Summary())
	c.printLine("")
	c.printLine(c.Engine.EndingText())
}

// Choose presents a numbered menu and reads picks until one lands on an
// enabled option. EOF falls back to the first enabled option so scripted
// runs never wedge.
func (c *CLI) Choose(prompt string, options []session.Option) int {
	c.printLine("")
	c.printLine(prompt)
	c.printLine("")
	for i, opt := range options {
		line := fmt.Sprintf("%d. %s", i+1, opt.Label)
		if opt.Note != "" {
			line += fmt.Sprintf(" (%s)", opt.Note)
		}
		if opt.Disabled {
			line += " [unavailable]"
		}
		c.printLine(line)
	}

	sc := c.scan()
	for {
		c.print(fmt.Sprintf("Enter your choice (1-%d): ", len(options)))
		if !sc.Scan() {
			return firstEnabled(options)
		}
		text := strings.TrimSpace(sc.Text())
		if c.EchoInput {
			c.printLine(text)
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > len(options) {
			c.printLine(fmt.Sprintf("Please enter a number between 1 and %d.", len(options)))
			continue
		}
		if options[n-1].Disabled {
			note := options[n-1].Note
			if note == "" {
				note = "that option isn't available"
			}
			c.printLine("You can't choose that: " + note)
			continue
		}
		return n - 1
	}
}

// metaCommand handles slash commands that live outside the game world:
// saving and loading. They never cost a turn.
func (c *CLI) metaCommand(input string) {
	fields := strings.Fields(input)
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch fields[0] {
	case "/save":
		c.cmdSave(arg)
	case "/load":
		c.cmdLoad(arg)
	default:
		c.printLine(fmt.Sprintf("Unknown command: %s. Use /save [name] or /load [name].", fields[0]))
	}
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = "quicksave"
	}

	data, err := save.Snapshot(c.Engine.Session)
	if err != nil {
		c.printLine(fmt.Sprintf("Save failed: %v", err))
		return
	}

	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		c.printLine(fmt.Sprintf("Save failed: %v", err))
		return
	}

	path := filepath.Join(c.SaveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.printLine(fmt.Sprintf("Save failed: %v", err))
		return
	}

	c.printLine(fmt.Sprintf("Game saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(c.SaveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		c.printLine(fmt.Sprintf("Load failed: %v", err))
		return
	}

	sd, err := save.Load(data)
	if err != nil {
		c.printLine(fmt.Sprintf("Load failed: %v", err))
		return
	}

	if err := save.Restore(c.Engine.Session, sd); err != nil {
		c.printLine(fmt.Sprintf("Load failed: %v", err))
		return
	}
	c.printLine(fmt.Sprintf("Game loaded from %s (turn %d).", name, sd.Turn))
	c.printLine("")
	c.printLine(c.Engine.Status())
}

func firstEnabled(options []session.Option) int {
	for i, opt := range options {
		if !opt.Disabled {
			return i
		}
	}
	return 0
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}
