package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintln(os.Stderr, "commands:")
	writeCommands(os.Stderr, p.commands, "  ")
}

func writeCommands(w io.Writer, commands map[string]*Command, indent string) {
	// aliases share a *Command; group names so each prints once
	groups := make(map[*Command][]string)
	for name, command := range commands {
		groups[command] = append(groups[command], name)
	}

	type group struct {
		names   []string
		command *Command
	}
	var ordered []group
	for command, names := range groups {
		slices.Sort(names)
		ordered = append(ordered, group{
			names:   names,
			command: command,
		})
	}
	slices.SortFunc(ordered, func(a, b group) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	for _, g := range ordered {
		fmt.Fprintf(w, "%s%s\n", indent, strings.Join(g.names, " | "))
		if g.command == nil {
			continue
		}
		if g.command.Description != "" {
			fmt.Fprintf(w, "%s  %s\n", indent, g.command.Description)
		}
		if len(g.command.Subs) > 0 {
			writeCommands(w, g.command.Subs, indent+"  ")
		}
	}
}
