package main

import (
	"fmt"
	"os"

	// Packages
	research "github.com/mutablelogic/go-research"
	table "github.com/mutablelogic/go-research/pkg/ui/table"
	version "github.com/mutablelogic/go-research/pkg/version"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCommand struct{}

type VersionCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ModelsCommand) Run(ctx *Globals) error {
	defaults, err := ctx.Defaults()
	if err != nil {
		return err
	}
	data := table.Models{Models: research.Models(), Selected: defaults.Model}

	// Markdown when the output is not a terminal
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(table.Render(data))
	} else {
		fmt.Println(table.RenderMarkdown(data))
	}
	return nil
}

func (cmd *VersionCommand) Run(ctx *Globals) error {
	fmt.Println(string(version.JSON(ctx.execName)))
	return nil
}
