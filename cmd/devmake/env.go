package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devmake/devmake/internal/app"
	"github.com/devmake/devmake/internal/messages"
	"github.com/devmake/devmake/internal/picker"
	"github.com/devmake/devmake/internal/profile"
)

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.EnvUse,
		Short: messages.EnvShort,
	}
	cmd.AddCommand(
		newEnvAddCmd(),
		newEnvRemoveCmd(),
		newEnvListCmd(),
		newEnvPathCmd(),
	)
	return cmd
}

func newEnvAddCmd() *cobra.Command {
	var noKeep bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   messages.EnvAddUse,
		Short: messages.EnvAddShort,
		Long:  messages.EnvAddLong,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := parseVars(args[1:], noKeep)
			if err != nil {
				return err
			}
			ctx, err := loadContext(cmd)
			if err != nil {
				return err
			}
			tag := args[0]
			if dryRun {
				diff, err := ctx.Profile.PreviewAdd(tag, vars)
				if err != nil {
					return err
				}
				printDiff(cmd.OutOrStdout(), diff)
				return nil
			}
			if err := ctx.Profile.Add(tag, vars); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.EnvAddedFmt, tag, ctx.Profile.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noKeep, "no-keep", false, messages.EnvAddFlagNoKeep)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.EnvAddFlagDryRun)

	return cmd
}

func newEnvRemoveCmd() *cobra.Command {
	var all bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   messages.EnvRemoveUse,
		Short: messages.EnvRemoveShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return errors.New(messages.EnvRemoveArgsWithAll)
			}
			ctx, err := loadContext(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			tags := args
			if len(tags) == 0 {
				tags, err = selectRemoveTags(ctx, all)
				if err != nil {
					if errors.Is(err, picker.ErrCancelled) {
						_, _ = fmt.Fprintln(out, messages.EnvRemoveCancelled)
						return nil
					}
					return err
				}
				if len(tags) == 0 {
					_, _ = fmt.Fprintln(out, messages.EnvRemoveNothing)
					return nil
				}
			}
			for _, tag := range tags {
				if dryRun {
					diff, err := ctx.Profile.PreviewRemove(tag)
					if err != nil {
						return err
					}
					printDiff(out, diff)
					continue
				}
				if err := ctx.Profile.Remove(tag); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, messages.EnvRemovedFmt, tag, ctx.Profile.Path())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, messages.EnvRemoveFlagAll)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.EnvRemoveFlagDryRun)

	return cmd
}

func newEnvListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.EnvListUse,
		Short: messages.EnvListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext(cmd)
			if err != nil {
				return err
			}
			tags, err := ctx.Profile.Tags()
			if err != nil {
				return err
			}
			for _, tag := range tags {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

func newEnvPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.EnvPathUse,
		Short: messages.EnvPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext(cmd)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ctx.Profile.Path())
			return nil
		},
	}
}

// parseVars converts NAME=VALUE arguments into profile variables. Repeated
// names accumulate values in argument order; comma-separated values turn
// into multi-value lists.
func parseVars(args []string, noKeep bool) ([]profile.Var, error) {
	var vars []profile.Var
	index := map[string]int{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf(messages.EnvAddVarInvalidFmt, arg)
		}
		values := strings.Split(value, ",")
		if i, seen := index[name]; seen {
			vars[i].Values = append(vars[i].Values, values...)
			continue
		}
		v := profile.Var{Name: name, Values: values}
		if noKeep {
			keep := false
			v.Keep = &keep
		}
		index[name] = len(vars)
		vars = append(vars, v)
	}
	return vars, nil
}

// selectRemoveTags decides which blocks to remove when none were named:
// every managed block with --all, otherwise an interactive pick.
func selectRemoveTags(ctx *app.Context, all bool) ([]string, error) {
	tags, err := ctx.Profile.Tags()
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, nil
	}
	if all {
		return tags, nil
	}
	if !isTerminal() {
		return nil, errors.New(messages.EnvRemoveRequiresTerminal)
	}
	var selected []string
	if err := newPickerUI().MultiSelect(messages.EnvRemovePickerTitle, tags, &selected); err != nil {
		return nil, err
	}
	return selected, nil
}

// printDiff renders a dry-run diff, or a note when nothing would change.
func printDiff(out io.Writer, diff string) {
	if diff == "" {
		_, _ = fmt.Fprintln(out, messages.ProfileDiffNoChanges)
		return
	}
	_, _ = fmt.Fprint(out, diff)
	if !strings.HasSuffix(diff, "\n") {
		_, _ = fmt.Fprintln(out)
	}
}
