package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Game catalog commands",
	}

	cmd.AddCommand(newGamesListCmd())
	cmd.AddCommand(newGamesShowCmd())

	return cmd
}

func newGamesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the game catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("game id must be numeric")
			}

			var result Game

			if err := client.Get(fmt.Sprintf("/api/v1/games/%d", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
