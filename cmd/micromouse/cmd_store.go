package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCmd lists stored mazes
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored mazes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		names, err := st.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

// deleteCmd removes stored mazes
var deleteCmd = &cobra.Command{
	Use:   "delete name...",
	Short: "Delete stored mazes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		for _, name := range args {
			if err := st.Delete(cmd.Context(), name); err != nil {
				return err
			}
			logger.Debug("maze deleted", zap.String("name", name))
		}
		return nil
	},
}
