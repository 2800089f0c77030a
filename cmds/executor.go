package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

type Executor struct {
	commands map[string]*Command
	// Positional receives words that are not commands and do not look like
	// flags ("-" alone is positional). Without it such words are errors.
	Positional func(arg string) error
}

func NewExecutor() *Executor {
	return &Executor{
		commands: make(map[string]*Command),
	}
}

func (p *Executor) Define(name string, command *Command) {
	command.name = name
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			if p.Positional != nil && (name == "-" || !strings.HasPrefix(name, "-")) {
				if err := p.Positional(name); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("unknown command: %s", name)
		}

		var err error
		args, err = command.call(args)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, sub := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = sub
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands, "")
}

func printCommands(w io.Writer, commands map[string]*Command, indent string) {
	names := make(map[*Command][]string)
	for name, command := range commands {
		names[command] = append(names[command], name)
	}
	for _, command := range sortedCommands(names) {
		fmt.Fprintf(w, "%s%s\t%s\n", indent, strings.Join(names[command], ", "), command.Description)
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, indent+"  ")
		}
	}
}

// sortedCommands orders each name list with the defined name first and the
// aliases after it, then orders commands by their first name.
func sortedCommands(names map[*Command][]string) []*Command {
	commands := make([]*Command, 0, len(names))
	for command, list := range names {
		slices.SortFunc(list, func(a, b string) int {
			switch command.name {
			case a:
				return -1
			case b:
				return 1
			}
			return strings.Compare(a, b)
		})
		commands = append(commands, command)
	}
	slices.SortFunc(commands, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})
	return commands
}
