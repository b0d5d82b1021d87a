package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/devmake/devmake/internal/messages"
)

func newInfoCmd() *cobra.Command {
	var distro string

	cmd := &cobra.Command{
		Use:   messages.InfoUse,
		Short: messages.InfoShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			warnColor := color.New(color.FgYellow)

			// Probe failures degrade to a warning line; info keeps
			// printing whatever else the host can answer.
			if arch, err := ctx.Host.Arch(); err != nil {
				_, _ = warnColor.Fprintf(out, messages.InfoProbeFailedFmt, messages.InfoLabelArch, err)
			} else {
				_, _ = fmt.Fprintf(out, messages.InfoArchFmt, arch)
			}

			if foreign, err := ctx.Host.ForeignArchs(); err != nil {
				_, _ = warnColor.Fprintf(out, messages.InfoProbeFailedFmt, messages.InfoLabelForeign, err)
			} else if len(foreign) == 0 {
				_, _ = fmt.Fprint(out, messages.InfoForeignNone)
			} else {
				_, _ = fmt.Fprintf(out, messages.InfoForeignFmt, strings.Join(foreign, ", "))
			}

			if ids, err := ctx.Host.DistroIDs(); err != nil {
				_, _ = warnColor.Fprintf(out, messages.InfoProbeFailedFmt, messages.InfoLabelDistros, err)
			} else {
				_, _ = fmt.Fprintf(out, messages.InfoDistroIDsFmt, strings.Join(ids, ", "))
			}

			if distro != "" {
				if version, err := ctx.Host.DistroVersion(distro); err != nil {
					label := fmt.Sprintf(messages.InfoLabelVersionFmt, distro)
					_, _ = warnColor.Fprintf(out, messages.InfoProbeFailedFmt, label, err)
				} else {
					_, _ = fmt.Fprintf(out, messages.InfoVersionFmt, distro, version)
				}
			}

			_, _ = fmt.Fprintf(out, messages.InfoProfileFmt, ctx.Profile.Path())
			_, _ = fmt.Fprintf(out, messages.InfoFrameworksFmt, ctx.Paths.FrameworksDir)
			tags, err := ctx.Profile.Tags()
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				_, _ = fmt.Fprint(out, messages.InfoBlocksNone)
			} else {
				_, _ = fmt.Fprintf(out, messages.InfoBlocksFmt, strings.Join(tags, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&distro, "distro", "", messages.InfoFlagDistro)

	return cmd
}
