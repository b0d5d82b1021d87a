package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/devmake/devmake/internal/launcher"
	"github.com/devmake/devmake/internal/messages"
)

func newLauncherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.LauncherUse,
		Short: messages.LauncherShort,
	}
	cmd.AddCommand(
		newLauncherCreateCmd(),
		newLauncherStatusCmd(),
	)
	return cmd
}

func newLauncherCreateCmd() *cobra.Command {
	var name string
	var icon string
	var execLine string
	var tryExec string
	var comment string
	var categories string
	var extra []string
	var iconSource string
	var noPin bool

	cmd := &cobra.Command{
		Use:   messages.LauncherCreateUse,
		Short: messages.LauncherCreateShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kv := range extra {
				key, _, ok := strings.Cut(kv, "=")
				if !ok || strings.TrimSpace(key) == "" {
					return fmt.Errorf(messages.LauncherExtraInvalidFmt, kv)
				}
			}
			ctx, err := loadContext(cmd)
			if err != nil {
				return err
			}
			entry := launcher.Entry{
				Filename:   args[0],
				Name:       name,
				Icon:       icon,
				TryExec:    tryExec,
				Exec:       execLine,
				Comment:    launcher.StripTags(comment),
				Categories: categories,
				Extra:      extra,
			}
			if iconSource != "" {
				dest := ""
				if entry.Icon != "" {
					dest = filepath.Base(entry.Icon)
				}
				copied, err := ctx.Launchers.CopyIcon(iconSource, dest)
				if err != nil {
					return err
				}
				if copied == "" {
					warnColor := color.New(color.FgYellow)
					_, _ = warnColor.Fprintf(cmd.ErrOrStderr(), messages.LauncherIconNoMatchFmt, iconSource)
				}
			}
			if err := ctx.Launchers.Create(entry); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.LauncherCreatedFmt, ctx.Launchers.Path(entry.Filename))
			if noPin || !ctx.Settings.PinLaunchers() {
				return nil
			}
			if err := ctx.Launchers.Pin(entry.Filename); err != nil {
				if errors.Is(err, launcher.ErrPinUnavailable) {
					warnColor := color.New(color.FgYellow)
					_, _ = warnColor.Fprintf(cmd.ErrOrStderr(), messages.LauncherPinSkippedFmt, entry.Filename)
					return nil
				}
				return err
			}
			_, _ = fmt.Fprintf(out, messages.LauncherPinnedFmt, entry.Filename)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", messages.LauncherCreateFlagName)
	cmd.Flags().StringVar(&icon, "icon", "", messages.LauncherCreateFlagIcon)
	cmd.Flags().StringVar(&execLine, "exec", "", messages.LauncherCreateFlagExec)
	cmd.Flags().StringVar(&tryExec, "try-exec", "", messages.LauncherCreateFlagTryExec)
	cmd.Flags().StringVar(&comment, "comment", "", messages.LauncherCreateFlagComment)
	cmd.Flags().StringVar(&categories, "categories", "", messages.LauncherCreateFlagCategories)
	cmd.Flags().StringArrayVar(&extra, "extra", nil, messages.LauncherCreateFlagExtra)
	cmd.Flags().StringVar(&iconSource, "icon-source", "", messages.LauncherCreateFlagIconSource)
	cmd.Flags().BoolVar(&noPin, "no-pin", false, messages.LauncherCreateFlagNoPin)

	return cmd
}

func newLauncherStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.LauncherStatusUse,
		Short: messages.LauncherStatusShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			filename := args[0]
			if !ctx.Launchers.Exists(filename) {
				_, _ = fmt.Fprintf(out, messages.LauncherStatusLineFmt, messages.LauncherStatusEntryLabel, filename, messages.LauncherStatusMissing)
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintf(out, messages.LauncherStatusLineFmt, messages.LauncherStatusEntryLabel, filename, messages.LauncherStatusInstalled)
			pinned, err := ctx.Launchers.Pinned(filename)
			if err != nil {
				return err
			}
			state := messages.LauncherStatusUnpinned
			if pinned {
				state = messages.LauncherStatusPinned
			}
			_, _ = fmt.Fprintf(out, messages.LauncherStatusLineFmt, messages.LauncherStatusFavoriteLabel, filename, state)
			return nil
		},
	}
}
