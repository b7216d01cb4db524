package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pong/internal/model"
)

func (a *App) newVersionCommand() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.Out, "pong version %s\n", model.Version)
			if check && a.CheckUpdate != nil {
				a.CheckUpdate(a.Out, model.Version)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")
	return cmd
}
