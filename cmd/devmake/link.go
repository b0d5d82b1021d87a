package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devmake/devmake/internal/messages"
)

func newLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.LinkUse,
		Short: messages.LinkShort,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			execPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf(messages.LinkTargetFmt, args[0], err)
			}
			if _, err := os.Stat(execPath); err != nil {
				return fmt.Errorf(messages.LinkTargetFmt, execPath, err)
			}
			name := filepath.Base(execPath)
			if len(args) == 2 {
				name = args[1]
			}
			ctx, err := loadContext(cmd)
			if err != nil {
				return err
			}
			if err := ctx.Links.Ensure(execPath, name); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.LinkCreatedFmt, execPath, ctx.Links.Path(name))
			return nil
		},
	}
}
