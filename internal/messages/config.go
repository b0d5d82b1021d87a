package messages

// Config messages for settings loading and validation.
const (
	// ConfigReadFmt formats settings read errors.
	ConfigReadFmt           = "read settings %s: %w"
	ConfigParseFmt          = "parse settings %s: %w"
	ConfigUnknownEntriesFmt = "settings %s: unrecognized entries: %w"
	ConfigEncodeFmt         = "encode settings: %w"
	ConfigWriteFmt          = "write settings %s: %w"
	ConfigMkdirFmt          = "create settings directory %s: %w"
	ConfigMigrateFmt        = "migrate legacy settings %s to %s: %w"
	ConfigHomeDirFmt        = "resolve home directory: %w"

	ConfigProfileFileNotAbsoluteFmt   = "%s: profile.file %q must be an absolute path"
	ConfigFrameworksDirNotAbsoluteFmt = "%s: install.frameworks_dir %q must be an absolute path"
	ConfigBinDirNotAbsoluteFmt        = "%s: install.bin_dir %q must be an absolute path"

	// ConfigPatchParseFmt formats patch validation errors.
	ConfigPatchParseFmt      = "patched settings would be invalid: %w"
	ConfigPatchKeyEscapeFmt  = "settings key %q contains unsupported characters"
	ConfigPatchValueQuoteFmt = "settings value %q cannot be quoted: %w"
)
