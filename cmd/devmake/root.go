package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/devmake/devmake/internal/app"
	"github.com/devmake/devmake/internal/config"
	"github.com/devmake/devmake/internal/messages"
	"github.com/devmake/devmake/internal/picker"
	"github.com/devmake/devmake/internal/terminal"
)

const flagVerbose = "verbose"

var newAppContext = app.New
var isTerminal = terminal.Interactive
var newPickerUI = func() picker.UI { return picker.NewHuhUI() }

// resolveBasePaths computes the per-user locations before any settings file
// has been read. Commands that edit the settings file use it so a broken
// file never blocks its own repair.
var resolveBasePaths = func() (config.Paths, error) {
	return config.ResolvePaths(os.Getenv, nil)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Bool(flagVerbose, false, messages.RootVerboseFlag)

	cmd.AddCommand(
		newEnvCmd(),
		newLauncherCmd(),
		newLinkCmd(),
		newInfoCmd(),
		newConfigCmd(),
	)

	return cmd
}

// loadContext builds the execution context for a command invocation,
// honoring the persistent --verbose flag when it is registered.
func loadContext(cmd *cobra.Command) (*app.Context, error) {
	verbose := false
	if flag := cmd.Root().PersistentFlags().Lookup(flagVerbose); flag != nil {
		verbose = flag.Value.String() == "true"
	}
	return newAppContext(app.Options{Verbose: verbose})
}
