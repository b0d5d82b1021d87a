package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devmake/devmake/internal/config"
	"github.com/devmake/devmake/internal/fsutil"
	"github.com/devmake/devmake/internal/messages"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
	}
	cmd.AddCommand(
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigPathCmd(),
	)
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigGetUse,
		Short: messages.ConfigGetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext(cmd)
			if err != nil {
				return err
			}
			value, ok := ctx.Settings.Get(args[0])
			if !ok {
				return fmt.Errorf(messages.ConfigKeyUnknownFmt, args[0])
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigSetUse,
		Short: messages.ConfigSetShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if _, ok := config.LookupKey(key); !ok {
				return fmt.Errorf(messages.ConfigKeyUnknownFmt, key)
			}
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf(messages.ConfigValueEmptyFmt, key)
			}
			paths, err := resolveBasePaths()
			if err != nil {
				return err
			}
			// The lenient load migrates a legacy file into place and
			// rejects broken TOML before any edit; unknown keys in the
			// file must not block repairing it.
			if _, err := config.LoadLenient(paths); err != nil {
				return err
			}
			data, err := os.ReadFile(paths.ConfigFile)
			if err != nil {
				if !os.IsNotExist(err) {
					return fmt.Errorf(messages.ConfigReadFmt, paths.ConfigFile, err)
				}
				data, err = config.DefaultContent()
				if err != nil {
					return err
				}
			}
			patched, err := config.Patch(data, paths.ConfigFile, key, value)
			if err != nil {
				return err
			}
			dir := filepath.Dir(paths.ConfigFile)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf(messages.ConfigMkdirFmt, dir, err)
			}
			if err := fsutil.WriteFileAtomic(paths.ConfigFile, patched, 0o644); err != nil {
				return fmt.Errorf(messages.ConfigWriteFmt, paths.ConfigFile, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.ConfigSetWroteFmt, paths.ConfigFile)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigPathUse,
		Short: messages.ConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := resolveBasePaths()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), paths.ConfigFile)
			return nil
		},
	}
}
