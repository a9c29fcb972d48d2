package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/range-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games registered in the arcade with their default session length.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	idWidth, titleWidth := len("ID"), len("Title")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
		titleWidth = max(titleWidth, len(g.Title))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "Session")
	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "--", titleWidth, "-----", "-------")

	for _, g := range games {
		game, err := registry.Create(g.ID)
		if err != nil {
			return err
		}
		opts := game.Options()
		start := "countdown"
		if !opts.CountdownOnStart || opts.CountdownSeconds == 0 {
			start = "immediate"
		}
		fmt.Printf("  %-*s  %-*s  %.0fs, %s start\n", idWidth, g.ID, titleWidth, g.Title, opts.Duration, start)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
	return nil
}
