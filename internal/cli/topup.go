package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTopUpCmd() *cobra.Command {
	var userID string
	var amount int

	cmd := &cobra.Command{
		Use:   "topup <game-id>",
		Short: "Submit a top-up order for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("game id must be numeric")
			}
			if userID == "" {
				return fmt.Errorf("--user is required")
			}

			req := map[string]any{
				"user_id": userID,
				"amount":  amount,
			}
			var result TopUpResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/topup", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "In-game user id (required)")
	cmd.Flags().IntVar(&amount, "amount", 0, "Amount in baht (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
