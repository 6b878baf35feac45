package constants

// 通用常量
const (
	TextAppTitle      = "Startup Manager"
	TextAppDirName    = "StartupManager"
	TextShortcutExt   = ".lnk"
	TextTrayShow      = "Show"
	TextTrayExit      = "Exit"
	TextUnknownName   = "unnamed"
	TextRunningMarker = "running"
)

// GUI 文本常量
const (
	TextDropHint          = "Drop executables or scripts here to run them at startup"
	TextEntriesHeader     = "Startup entries:"
	TextRefresh           = "Refresh"
	TextOpenStartupFolder = "Open startup folder"
	TextSettings          = "Settings"
	TextSettingsTitle     = "Settings"
	TextAbout             = "About"
	TextSave              = "Save"
	TextCancel            = "Cancel"
	TextBackendTitle      = "Shortcut backend"
	TextTimeoutTitle      = "Shortcut timeout (0 waits forever)"
	TextToastTitle        = "Announce success as a desktop notification"
	TextStartupDirTitle   = "Startup folder (empty uses the system folder)"
	TextMinimizeToTray    = "Hide to tray when minimized"
	TextChoose            = "Choose"
	TextResetDefault      = "Default"
	TextTrayOpenFolder    = "Open startup folder"
	TextVersion           = "Version: v0.1.0"
	TextAboutBody         = "Drop a file on the window to launch it at logon.\nRight-click an entry for its Explorer menu."
)

// 通知文本
const (
	TitleSuccess        = "Success"
	TitleError          = "Error"
	TitleWarning        = "Error"
	MsgShortcutAdded    = "Shortcut added to startup successfully."
	MsgFolderMissing    = "Startup folder does not exist."
	MsgShortcutTimedOut = "Shortcut creation timed out."
	MsgInvalidTimeout   = "Invalid timeout, use values like 30s or 2m."
)
