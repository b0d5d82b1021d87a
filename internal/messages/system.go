package messages

// System messages for internal operations.
const (
	// FsutilCreateTempFileFmt formats temp file creation errors.
	FsutilCreateTempFileFmt = "create temp file for %s: %w"
	FsutilSetPermissionsFmt = "set permissions for %s: %w"
	FsutilWriteTempFileFmt  = "write temp file for %s: %w"
	FsutilSyncTempFileFmt   = "sync temp file for %s: %w"
	FsutilCloseTempFileFmt  = "close temp file for %s: %w"
	FsutilRenameTempFileFmt = "rename temp file for %s: %w"
	FsutilOpenDirFmt        = "open dir %s: %w"
	FsutilSyncDirFmt        = "sync dir %s: %w"

	// AppLoggerFmt formats debug logger construction errors.
	AppLoggerFmt = "create debug logger: %w"

	// HostArchFmt formats architecture probe errors.
	HostArchFmt                  = "determine host architecture: %w"
	HostForeignArchesFmt         = "list foreign architectures: %w"
	HostAddForeignArchFmt        = "register foreign architecture %s: %w"
	HostOSReleaseReadFmt         = "read os-release %s: %w"
	HostDistroVersionNotFoundFmt = "no version entry for %s in %s"

	PrivilegeRaiseUIDFmt   = "raise effective uid: %w"
	PrivilegeRaiseGIDFmt   = "raise effective gid: %w"
	PrivilegeDropUIDFmt    = "drop effective uid to %d: %w"
	PrivilegeDropGIDFmt    = "drop effective gid to %d: %w"
	PrivilegeInvokerVarFmt = "parse %s value %q: %w"

	LauncherFilenameRequired  = "desktop file name is required"
	LauncherNameRequired      = "launcher name is required"
	LauncherExecRequired      = "launcher exec command is required"
	LauncherPinUnavailable    = "no favorites store is available"
	LauncherRenderFmt         = "render desktop entry %s: %w"
	LauncherWriteFmt          = "write desktop entry %s: %w"
	LauncherMkdirFmt          = "create directory %s: %w"
	LauncherIconGlobFmt       = "match icon pattern %s: %w"
	LauncherIconReadFmt       = "read icon %s: %w"
	LauncherIconWriteFmt      = "write icon %s: %w"
	LauncherFavoritesListFmt  = "read favorites list: %w"
	LauncherFavoritesSetFmt   = "update favorites list: %w"
	LauncherFavoritesParseFmt = "parse favorites list %q: %s"

	// TemplateReadFmt formats embedded template read errors.
	TemplateReadFmt = "read template %s: %w"

	// BinlinkTag names the profile block that puts the shim directory on PATH.
	BinlinkTag        = "devmake binary symlink"
	BinlinkMkdirFmt   = "create bin directory %s: %w"
	BinlinkRemoveFmt  = "remove %s: %w"
	BinlinkSymlinkFmt = "symlink %s to %s: %w"
)
