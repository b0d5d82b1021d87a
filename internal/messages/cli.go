package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "devmake"
	// RootShort is the short description for the root command.
	RootShort       = "Developer tool host-system manager"
	RootLong        = "devmake manages the host-system side of developer tool installs:\nenvironment blocks in the shell profile, desktop launchers, and\nexecutable shims."
	RootVerboseFlag = "Enable debug logging"

	// VersionTemplate renders the --version output.
	VersionTemplate = "{{.Version}}\n"
	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	// EnvUse is the env command group name.
	EnvUse   = "env"
	EnvShort = "Manage environment blocks in the shell profile"

	EnvAddUse           = "add <tag> <NAME=VALUE>..."
	EnvAddShort         = "Add an environment block for a framework"
	EnvAddLong          = "Add writes a tagged block of export lines to the shell profile and\napplies the same values to the current process environment. An existing\nblock with the same tag is replaced. VALUE may hold several paths\nseparated by commas; they are joined with the platform list separator."
	EnvAddFlagNoKeep    = "Overwrite current process values instead of prepending to them"
	EnvAddFlagDryRun    = "Print the profile changes as a unified diff without writing"
	EnvAddedFmt         = "Added environment block %q to %s\n"
	EnvAddVarInvalidFmt = "variable %q must be in the form NAME=VALUE"

	EnvRemoveUse              = "remove [tag]..."
	EnvRemoveShort            = "Remove environment blocks from the shell profile"
	EnvRemoveFlagAll          = "Remove every managed block"
	EnvRemoveFlagDryRun       = "Print the profile changes as a unified diff without writing"
	EnvRemovedFmt             = "Removed environment block %q from %s\n"
	EnvRemoveNothing          = "no managed blocks found"
	EnvRemovePickerTitle      = "Select blocks to remove"
	EnvRemoveRequiresTerminal = "interactive removal requires a terminal; pass tags or --all"
	EnvRemoveArgsWithAll      = "tags cannot be combined with --all"
	EnvRemoveCancelled        = "removal cancelled"

	EnvListUse   = "list"
	EnvListShort = "List managed framework tags"

	EnvPathUse   = "path"
	EnvPathShort = "Print the managed shell profile path"

	// LauncherUse is the launcher command group name.
	LauncherUse   = "launcher"
	LauncherShort = "Manage desktop launchers"

	LauncherCreateUse            = "create <file.desktop>"
	LauncherCreateShort          = "Write a desktop launcher and pin it to the app bar"
	LauncherCreateFlagName       = "Display name of the application"
	LauncherCreateFlagIcon       = "Icon name or path for the entry"
	LauncherCreateFlagExec       = "Command line the launcher runs"
	LauncherCreateFlagTryExec    = "Executable checked before showing the entry"
	LauncherCreateFlagComment    = "Tooltip comment (HTML tags are stripped)"
	LauncherCreateFlagCategories = "Desktop menu categories (semicolon separated)"
	LauncherCreateFlagExtra      = "Extra KEY=VALUE lines appended to the entry (repeatable)"
	LauncherCreateFlagIconSource = "Glob matching the icon file to copy into the icon directory"
	LauncherCreateFlagNoPin      = "Skip pinning the launcher to the app bar"
	LauncherCreatedFmt           = "Created launcher %s\n"
	LauncherPinnedFmt            = "Pinned %s to the app bar\n"
	LauncherPinSkippedFmt        = "App bar pinning is unavailable; skipped pinning %s\n"
	LauncherIconNoMatchFmt       = "No icon matched %s; the launcher is created without one\n"
	LauncherExtraInvalidFmt      = "extra entry %q must be in the form KEY=VALUE"

	LauncherStatusUse           = "status <file.desktop>"
	LauncherStatusShort         = "Report whether a launcher exists and is pinned"
	LauncherStatusInstalled     = "installed"
	LauncherStatusMissing       = "missing"
	LauncherStatusPinned        = "pinned"
	LauncherStatusUnpinned      = "not pinned"
	LauncherStatusLineFmt       = "%s %s: %s\n"
	LauncherStatusEntryLabel    = "launcher"
	LauncherStatusFavoriteLabel = "pin"

	// LinkUse is the link command name.
	LinkUse        = "link <exec-path> [name]"
	LinkShort      = "Create an executable shim on PATH"
	LinkCreatedFmt = "Linked %s as %s\n"
	LinkTargetFmt  = "link target %s: %w"

	// InfoUse is the info command name.
	InfoUse            = "info"
	InfoShort          = "Print host facts"
	InfoFlagDistro     = "Distro name to probe for a version entry"
	InfoArchFmt        = "architecture: %s\n"
	InfoForeignFmt     = "foreign architectures: %s\n"
	InfoForeignNone    = "foreign architectures: none\n"
	InfoDistroIDsFmt   = "distro ids: %s\n"
	InfoVersionFmt     = "%s version: %s\n"
	InfoProfileFmt     = "shell profile: %s\n"
	InfoFrameworksFmt  = "frameworks dir: %s\n"
	InfoBlocksFmt      = "managed blocks: %s\n"
	InfoBlocksNone     = "managed blocks: none\n"
	InfoProbeFailedFmt = "%s: unavailable (%v)\n"

	InfoLabelArch       = "architecture"
	InfoLabelForeign    = "foreign architectures"
	InfoLabelDistros    = "distro ids"
	InfoLabelVersionFmt = "%s version"

	// ConfigUse is the config command group name.
	ConfigUse   = "config"
	ConfigShort = "Inspect and edit devmake settings"

	ConfigGetUse         = "get <section.key>"
	ConfigGetShort       = "Print one settings value"
	ConfigSetUse         = "set <section.key> <value>"
	ConfigSetShort       = "Set one settings value, preserving comments"
	ConfigPathUse        = "path"
	ConfigPathShort      = "Print the settings file path"
	ConfigSetWroteFmt    = "Wrote %s\n"
	ConfigKeyUnknownFmt  = "unknown settings key %q"
	ConfigValueEmptyFmt  = "value for %q is empty"
	ConfigBoolInvalidFmt = "value for %q must be true or false"
)
