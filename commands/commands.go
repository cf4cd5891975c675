package commands

import (
	"context"
	"io"
	"sort"
	"strconv"

	"github.com/Strum355/log"
	"github.com/spf13/viper"

	"MyTube/store"
)

// CommandHandler runs one menu command against the application state. A nil
// return means the command completed (domain failures are rendered as text,
// not surfaced as errors).
type CommandHandler func(ctx context.Context, st *store.Store, c *Console) *commandError

type Command struct {
	Selector    int
	Name        string
	Description string
}

type Commands struct {
	commands []*Command
	handlers map[int]CommandHandler
}

var (
	commands = &Commands{}
)

// Add registers a command and its handler under its menu selector.
func (c *Commands) Add(com *Command, handler CommandHandler) {
	c.commands = append(c.commands, com)
	if c.handlers == nil {
		c.handlers = map[int]CommandHandler{}
	}
	c.handlers[com.Selector] = handler
}

// Dispatch routes a selector to its handler, tagging the logging context
// with the invocation details. Returns false for unknown selectors.
func (c *Commands) Dispatch(selector int, st *store.Store, console *Console) bool {
	handler, ok := c.handlers[selector]
	if !ok {
		return false
	}

	var com *Command
	for _, candidate := range c.commands {
		if candidate.Selector == selector {
			com = candidate
			break
		}
	}

	username := "anonymous"
	if u := st.CurrentUser(); u != nil {
		username = u.Username
	}

	ctx := context.WithValue(context.Background(), log.Key, log.Fields{
		"selector": strconv.Itoa(selector),
		"command":  com.Name,
		"user":     username,
	})
	log.WithContext(ctx).Info("Invoking command")

	if cErr := handler(ctx, st, console); cErr != nil {
		cErr.Handle(console)
	}
	return true
}

// printMenu renders the selector menu from the registered commands.
func (c *Commands) printMenu(console *Console) {
	console.Printf("\n--- MyTube ---\n")
	console.Printf("%-3d%s\n", 0, "Show menu")

	sorted := make([]*Command, len(c.commands))
	copy(sorted, c.commands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Selector < sorted[j].Selector })

	for _, com := range sorted {
		console.Printf("%-3d%s\n", com.Selector, com.Description)
	}
	console.Printf("%-3d%s\n", 99, "Exit")
}

// Run drives the interactive command loop until the operator exits or input
// ends. Domain errors never terminate the loop.
func Run(st *store.Store, in io.Reader, out io.Writer) {
	console := NewConsole(in, out)
	prompt := viper.GetString("prompt")

	commands.printMenu(console)

	for {
		line, err := console.ReadLine(prompt)
		if err != nil {
			if err != io.EOF {
				log.WithError(err).Error("Failed to read command")
			}
			return
		}
		if line == "" {
			continue
		}

		selector, err := strconv.Atoi(line)
		if err != nil {
			console.Printf("Enter a number\n")
			continue
		}

		switch selector {
		case 0:
			commands.printMenu(console)
		case 99:
			console.Printf("Goodbye\n")
			return
		default:
			if !commands.Dispatch(selector, st, console) {
				console.Printf("Unknown command\n")
			}
		}
	}
}
