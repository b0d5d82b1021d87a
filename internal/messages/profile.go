package messages

// Profile messages for managed environment blocks in the shell profile.
const (
	// ProfileBlockHeaderFmt renders the comment line that opens a managed block.
	// Remove and Tags match against this exact rendering, so changing it
	// orphans blocks written by earlier releases.
	ProfileBlockHeaderFmt = "# devmake installation of %s\n"

	// ProfileSpecInvalid is the sentinel text for block validation failures.
	ProfileSpecInvalid          = "invalid environment block"
	ProfileTagRequired          = "framework tag is required"
	ProfileVarNameRequiredFmt   = "block %s: variable name is required"
	ProfileVarValuesRequiredFmt = "block %s: variable %s needs at least one value"
	ProfileVarDuplicateFmt      = "block %s: variable %s appears more than once"

	ProfileReadFmt    = "read profile %s: %w"
	ProfileWriteFmt   = "write profile %s: %w"
	ProfileAppendFmt  = "append to profile %s: %w"
	ProfileSetEnvFmt  = "set %s in process environment: %w"
	ProfileHomeDirFmt = "resolve home directory: %w"

	ProfileDiffNoChanges = "no profile changes"
)
